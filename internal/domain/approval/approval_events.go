package approval

import (
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeApproval = "Approval"

// Event type constants
const (
	EventTypeApprovalRequested = "ApprovalRequested"
	EventTypeApprovalDecided   = "ApprovalDecided"
)

// ApprovalRequestedEvent is published when a new approval is filed
type ApprovalRequestedEvent struct {
	shared.BaseDomainEvent
	ApprovalID  uuid.UUID    `json:"approval_id"`
	Type        ApprovalType `json:"type"`
	RequesterID uuid.UUID    `json:"requester_id"`
}

// NewApprovalRequestedEvent creates a new ApprovalRequestedEvent
func NewApprovalRequestedEvent(a *Approval) *ApprovalRequestedEvent {
	return &ApprovalRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalRequested, AggregateTypeApproval, a.ID),
		ApprovalID:      a.ID,
		Type:            a.Type,
		RequesterID:     a.RequesterID,
	}
}

// ApprovalDecidedEvent is published on the terminal transition
type ApprovalDecidedEvent struct {
	shared.BaseDomainEvent
	ApprovalID uuid.UUID      `json:"approval_id"`
	Type       ApprovalType   `json:"type"`
	Status     ApprovalStatus `json:"status"`
}

// NewApprovalDecidedEvent creates a new ApprovalDecidedEvent
func NewApprovalDecidedEvent(a *Approval) *ApprovalDecidedEvent {
	return &ApprovalDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalDecided, AggregateTypeApproval, a.ID),
		ApprovalID:      a.ID,
		Type:            a.Type,
		Status:          a.Status,
	}
}
