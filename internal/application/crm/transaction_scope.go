package crm

import (
	"context"

	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/identity"
)

// TransactionScope provides transactional access to the repositories client
// provisioning touches. Everything executed inside one scope commits or rolls
// back atomically, so a failed client insert never leaves an orphan login.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a transaction
type TransactionalRepositories interface {
	// ClientRepo returns the client repository scoped to the current transaction
	ClientRepo() crm.ClientRepository
	// UserRepo returns the user repository scoped to the current transaction
	UserRepo() identity.UserRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	clientRepo crm.ClientRepository
	userRepo   identity.UserRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(clientRepo crm.ClientRepository, userRepo identity.UserRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{clientRepo: clientRepo, userRepo: userRepo}
}

// Execute runs the function without a real transaction (for testing/compatibility)
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ClientRepo returns the client repository
func (s *NoOpTransactionScope) ClientRepo() crm.ClientRepository {
	return s.clientRepo
}

// UserRepo returns the user repository
func (s *NoOpTransactionScope) UserRepo() identity.UserRepository {
	return s.userRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
