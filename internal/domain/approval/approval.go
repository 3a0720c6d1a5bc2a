package approval

import (
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ApprovalStatus represents the decision state of an approval
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// IsValid checks if the status is one of the allowed values
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true if no further transition is possible
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// Approval is a pending request for a privileged change, carrying a
// type-discriminated payload and decided exactly once
type Approval struct {
	shared.BaseAggregateRoot
	Type        ApprovalType   `gorm:"type:varchar(20);not null"`
	Status      ApprovalStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	RequesterID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Payload     Payload        `gorm:"-"`
	DecidedAt   *time.Time
}

// TableName returns the table name for GORM
func (Approval) TableName() string {
	return "approvals"
}

// NewApproval creates a pending approval around a validated payload
// The payload's kind fixes the approval type
func NewApproval(requesterID uuid.UUID, payload Payload) (*Approval, error) {
	if requesterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUESTER_ID", "Requester ID cannot be empty")
	}
	if payload == nil {
		return nil, shared.NewDomainError("INVALID_PAYLOAD", "Approval payload cannot be empty")
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	approval := &Approval{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              payload.Kind(),
		Status:            ApprovalStatusPending,
		RequesterID:       requesterID,
		Payload:           payload,
	}

	approval.AddDomainEvent(NewApprovalRequestedEvent(approval))

	return approval, nil
}

// Decide moves the approval out of PENDING into a terminal state
// Deciding an already-terminal approval is a conflict, never a second apply
func (a *Approval) Decide(newStatus ApprovalStatus) error {
	if newStatus != ApprovalStatusApproved && newStatus != ApprovalStatusRejected {
		return shared.NewDomainError("INVALID_STATUS", "Decision must be APPROVED or REJECTED")
	}
	if a.Status.IsTerminal() {
		return shared.ErrAlreadyDecided
	}

	now := time.Now()
	a.Status = newStatus
	a.DecidedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	a.AddDomainEvent(NewApprovalDecidedEvent(a))

	return nil
}

// IsPending returns true if the approval still awaits a decision
func (a *Approval) IsPending() bool {
	return a.Status == ApprovalStatusPending
}

// IsApproved returns true if the approval was granted
func (a *Approval) IsApproved() bool {
	return a.Status == ApprovalStatusApproved
}
