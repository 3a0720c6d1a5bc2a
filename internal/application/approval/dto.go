package approval

import (
	"time"

	"github.com/estate/backend/internal/domain/approval"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoicePayloadInput is the invoice draft carried by an INVOICE approval
type InvoicePayloadInput struct {
	ClientID    uuid.UUID       `json:"client_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	DueDate     string          `json:"due_date" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// CreateApprovalRequest files a new approval
// Exactly one payload must be set; it determines the approval type
type CreateApprovalRequest struct {
	Invoice *InvoicePayloadInput `json:"invoice"`
}

// DecideRequest resolves a pending approval
type DecideRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// ApprovalResponse represents an approval in API responses
type ApprovalResponse struct {
	ID          uuid.UUID        `json:"id"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	RequesterID uuid.UUID        `json:"requester_id"`
	Payload     approval.Payload `json:"payload,omitempty"`
	DecidedAt   *time.Time       `json:"decided_at,omitempty"`
	// InvoiceID is set when deciding an INVOICE approval materialized an invoice
	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// ToApprovalResponse maps a domain approval to its API shape
func ToApprovalResponse(a *approval.Approval) *ApprovalResponse {
	return &ApprovalResponse{
		ID:          a.ID,
		Type:        string(a.Type),
		Status:      string(a.Status),
		RequesterID: a.RequesterID,
		Payload:     a.Payload,
		DecidedAt:   a.DecidedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Version:     a.Version,
	}
}

// ListApprovalsResponse is a paginated approval listing
type ListApprovalsResponse struct {
	Items      []ApprovalResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
