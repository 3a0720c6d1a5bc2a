package booking

import (
	"context"

	"github.com/estate/backend/internal/domain/booking"
	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/identity"
	"github.com/estate/backend/internal/domain/planning"
	"github.com/estate/backend/internal/domain/realty"
)

// TransactionScope provides transactional access to the repositories booking
// assembly touches. Client synthesis and booking persistence run in one scope:
// a failed booking insert also rolls back a synthesized client.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a transaction
type TransactionalRepositories interface {
	// BookingRepo returns the booking repository scoped to the current transaction
	BookingRepo() booking.BookingRepository
	// ClientRepo returns the client repository scoped to the current transaction
	ClientRepo() crm.ClientRepository
	// ProjectRepo returns the project repository scoped to the current transaction
	ProjectRepo() realty.ProjectRepository
	// PropertyRepo returns the property repository scoped to the current transaction
	PropertyRepo() realty.PropertyRepository
	// PlanRepo returns the payment-plan repository scoped to the current transaction
	PlanRepo() planning.PaymentPlanRepository
	// UserRepo returns the user repository scoped to the current transaction
	UserRepo() identity.UserRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	bookingRepo  booking.BookingRepository
	clientRepo   crm.ClientRepository
	projectRepo  realty.ProjectRepository
	propertyRepo realty.PropertyRepository
	planRepo     planning.PaymentPlanRepository
	userRepo     identity.UserRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	bookingRepo booking.BookingRepository,
	clientRepo crm.ClientRepository,
	projectRepo realty.ProjectRepository,
	propertyRepo realty.PropertyRepository,
	planRepo planning.PaymentPlanRepository,
	userRepo identity.UserRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		propertyRepo: propertyRepo,
		planRepo:     planRepo,
		userRepo:     userRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility)
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// BookingRepo returns the booking repository
func (s *NoOpTransactionScope) BookingRepo() booking.BookingRepository {
	return s.bookingRepo
}

// ClientRepo returns the client repository
func (s *NoOpTransactionScope) ClientRepo() crm.ClientRepository {
	return s.clientRepo
}

// ProjectRepo returns the project repository
func (s *NoOpTransactionScope) ProjectRepo() realty.ProjectRepository {
	return s.projectRepo
}

// PropertyRepo returns the property repository
func (s *NoOpTransactionScope) PropertyRepo() realty.PropertyRepository {
	return s.propertyRepo
}

// PlanRepo returns the payment-plan repository
func (s *NoOpTransactionScope) PlanRepo() planning.PaymentPlanRepository {
	return s.planRepo
}

// UserRepo returns the user repository
func (s *NoOpTransactionScope) UserRepo() identity.UserRepository {
	return s.userRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
