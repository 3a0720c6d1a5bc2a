package persistence

import (
	"context"

	appapproval "github.com/estate/backend/internal/application/approval"
	"github.com/estate/backend/internal/domain/approval"
	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// GormApprovalTransactionScope implements the approval TransactionScope using
// GORM transactions. The recorded decision and the invoice it materializes
// commit or roll back as one unit.
type GormApprovalTransactionScope struct {
	db *gorm.DB
}

// NewGormApprovalTransactionScope creates a new GormApprovalTransactionScope
func NewGormApprovalTransactionScope(db *gorm.DB) *GormApprovalTransactionScope {
	return &GormApprovalTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormApprovalTransactionScope) Execute(ctx context.Context, fn func(repos appapproval.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormApprovalTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

type gormApprovalTransactionalRepositories struct {
	tx *gorm.DB
}

// ApprovalRepo returns the approval repository scoped to the current transaction
func (r *gormApprovalTransactionalRepositories) ApprovalRepo() approval.ApprovalRepository {
	return NewGormApprovalRepository(r.tx)
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormApprovalTransactionalRepositories) InvoiceRepo() finance.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// ClientRepo returns the client repository scoped to the current transaction
func (r *gormApprovalTransactionalRepositories) ClientRepo() crm.ClientRepository {
	return NewGormClientRepository(r.tx)
}

// Ensure GormApprovalTransactionScope implements TransactionScope
var _ appapproval.TransactionScope = (*GormApprovalTransactionScope)(nil)

// Ensure gormApprovalTransactionalRepositories implements TransactionalRepositories
var _ appapproval.TransactionalRepositories = (*gormApprovalTransactionalRepositories)(nil)
