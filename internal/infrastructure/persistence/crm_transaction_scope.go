package persistence

import (
	"context"

	appcrm "github.com/estate/backend/internal/application/crm"
	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// GormCRMTransactionScope implements the crm TransactionScope using GORM
// transactions. Client records and their provisioned logins commit or roll
// back together.
type GormCRMTransactionScope struct {
	db *gorm.DB
}

// NewGormCRMTransactionScope creates a new GormCRMTransactionScope
func NewGormCRMTransactionScope(db *gorm.DB) *GormCRMTransactionScope {
	return &GormCRMTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormCRMTransactionScope) Execute(ctx context.Context, fn func(repos appcrm.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormCRMTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

type gormCRMTransactionalRepositories struct {
	tx *gorm.DB
}

// ClientRepo returns the client repository scoped to the current transaction
func (r *gormCRMTransactionalRepositories) ClientRepo() crm.ClientRepository {
	return NewGormClientRepository(r.tx)
}

// UserRepo returns the user repository scoped to the current transaction
func (r *gormCRMTransactionalRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// Ensure GormCRMTransactionScope implements TransactionScope
var _ appcrm.TransactionScope = (*GormCRMTransactionScope)(nil)

// Ensure gormCRMTransactionalRepositories implements TransactionalRepositories
var _ appcrm.TransactionalRepositories = (*gormCRMTransactionalRepositories)(nil)
