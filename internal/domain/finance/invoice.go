package finance

import (
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the settlement state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// IsValid checks if the status is one of the allowed values
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice is a demand for payment issued to a client
// Created directly, or materialized from an approved invoice request
type Invoice struct {
	shared.BaseAggregateRoot
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	DueDate     time.Time       `gorm:"type:date;not null"`
	Status      InvoiceStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	Description string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a pending invoice
// The due date is allowed to precede the issue date: back-dated penalty
// invoices are issued that way, so no ordering is enforced between the two
func NewInvoice(clientID uuid.UUID, amount decimal.Decimal, date, dueDate time.Time, description string) (*Invoice, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be greater than zero")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Invoice date cannot be empty")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Invoice due date cannot be empty")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		Amount:            amount,
		Date:              date,
		DueDate:           dueDate,
		Status:            InvoiceStatusPending,
		Description:       description,
	}, nil
}

// MarkPaid settles the invoice
func (i *Invoice) MarkPaid() error {
	if i.Status == InvoiceStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Invoice is already paid")
	}

	i.Status = InvoiceStatusPaid
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// MarkOverdue flags the invoice past its due date
func (i *Invoice) MarkOverdue() error {
	if i.Status != InvoiceStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only a pending invoice can become overdue")
	}

	i.Status = InvoiceStatusOverdue
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// IsSettled returns true if no payment is outstanding
func (i *Invoice) IsSettled() bool {
	return i.Status == InvoiceStatusPaid
}
