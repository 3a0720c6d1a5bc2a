package persistence

import (
	"context"

	appbooking "github.com/estate/backend/internal/application/booking"
	"github.com/estate/backend/internal/domain/booking"
	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/identity"
	"github.com/estate/backend/internal/domain/planning"
	"github.com/estate/backend/internal/domain/realty"
	"gorm.io/gorm"
)

// GormBookingTransactionScope implements the booking TransactionScope using
// GORM transactions. Client synthesis and booking persistence share one
// transaction, so a failed booking insert also rolls back the client.
type GormBookingTransactionScope struct {
	db *gorm.DB
}

// NewGormBookingTransactionScope creates a new GormBookingTransactionScope
func NewGormBookingTransactionScope(db *gorm.DB) *GormBookingTransactionScope {
	return &GormBookingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormBookingTransactionScope) Execute(ctx context.Context, fn func(repos appbooking.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormBookingTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

type gormBookingTransactionalRepositories struct {
	tx *gorm.DB
}

// BookingRepo returns the booking repository scoped to the current transaction
func (r *gormBookingTransactionalRepositories) BookingRepo() booking.BookingRepository {
	return NewGormBookingRepository(r.tx)
}

// ClientRepo returns the client repository scoped to the current transaction
func (r *gormBookingTransactionalRepositories) ClientRepo() crm.ClientRepository {
	return NewGormClientRepository(r.tx)
}

// ProjectRepo returns the project repository scoped to the current transaction
func (r *gormBookingTransactionalRepositories) ProjectRepo() realty.ProjectRepository {
	return NewGormProjectRepository(r.tx)
}

// PropertyRepo returns the property repository scoped to the current transaction
func (r *gormBookingTransactionalRepositories) PropertyRepo() realty.PropertyRepository {
	return NewGormPropertyRepository(r.tx)
}

// PlanRepo returns the payment-plan repository scoped to the current transaction
func (r *gormBookingTransactionalRepositories) PlanRepo() planning.PaymentPlanRepository {
	return NewGormPaymentPlanRepository(r.tx)
}

// UserRepo returns the user repository scoped to the current transaction
func (r *gormBookingTransactionalRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// Ensure GormBookingTransactionScope implements TransactionScope
var _ appbooking.TransactionScope = (*GormBookingTransactionScope)(nil)

// Ensure gormBookingTransactionalRepositories implements TransactionalRepositories
var _ appbooking.TransactionalRepositories = (*gormBookingTransactionalRepositories)(nil)
