package approval

import (
	"context"

	"github.com/estate/backend/internal/domain/approval"
	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/finance"
)

// TransactionScope provides transactional access to the repositories the
// decide path touches. The decision and whatever it materializes commit or
// roll back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a transaction
type TransactionalRepositories interface {
	// ApprovalRepo returns the approval repository scoped to the current transaction
	ApprovalRepo() approval.ApprovalRepository
	// InvoiceRepo returns the invoice repository scoped to the current transaction
	InvoiceRepo() finance.InvoiceRepository
	// ClientRepo returns the client repository scoped to the current transaction
	ClientRepo() crm.ClientRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	approvalRepo approval.ApprovalRepository
	invoiceRepo  finance.InvoiceRepository
	clientRepo   crm.ClientRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	approvalRepo approval.ApprovalRepository,
	invoiceRepo finance.InvoiceRepository,
	clientRepo crm.ClientRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		approvalRepo: approvalRepo,
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility)
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ApprovalRepo returns the approval repository
func (s *NoOpTransactionScope) ApprovalRepo() approval.ApprovalRepository {
	return s.approvalRepo
}

// InvoiceRepo returns the invoice repository
func (s *NoOpTransactionScope) InvoiceRepo() finance.InvoiceRepository {
	return s.invoiceRepo
}

// ClientRepo returns the client repository
func (s *NoOpTransactionScope) ClientRepo() crm.ClientRepository {
	return s.clientRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
