package finance

import (
	"time"

	"github.com/estate/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest issues an invoice directly, outside the approval flow
type CreateInvoiceRequest struct {
	ClientID    uuid.UUID       `json:"client_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	DueDate     time.Time       `json:"due_date" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"client_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	DueDate     time.Time       `json:"due_date"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ToInvoiceResponse maps a domain invoice to its API shape
func ToInvoiceResponse(i *finance.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:          i.ID,
		ClientID:    i.ClientID,
		Amount:      i.Amount,
		Date:        i.Date,
		DueDate:     i.DueDate,
		Status:      string(i.Status),
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		Version:     i.Version,
	}
}

// ListInvoicesResponse is a paginated invoice listing
type ListInvoicesResponse struct {
	Items      []InvoiceResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
