package approval

import (
	"encoding/json"
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApprovalType is the closed set of request kinds an approval can carry
type ApprovalType string

const (
	ApprovalTypeInvoice ApprovalType = "INVOICE"
)

// IsValid checks if the approval type is one of the allowed values
func (t ApprovalType) IsValid() bool {
	switch t {
	case ApprovalTypeInvoice:
		return true
	}
	return false
}

// payloadDateLayout is the wire format of the payload's date fields
const payloadDateLayout = "2006-01-02"

// Payload is the type-discriminated content of an approval
// Each kind carries its strongly-typed payload so the decide path can match
// exhaustively instead of comparing strings against an untyped blob
type Payload interface {
	Kind() ApprovalType
	Validate() error
}

// InvoicePayload is the draft of the invoice an INVOICE approval asks for
// Date fields stay strings until decide time, when they are coerced
type InvoicePayload struct {
	ClientID    uuid.UUID       `json:"client_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	DueDate     string          `json:"due_date"`
	Description string          `json:"description,omitempty"`
}

// Kind returns the approval type this payload belongs to
func (p InvoicePayload) Kind() ApprovalType {
	return ApprovalTypeInvoice
}

// Validate checks the payload's required fields
func (p InvoicePayload) Validate() error {
	if p.ClientID == uuid.Nil {
		return shared.NewDomainError("INVALID_PAYLOAD", "Invoice payload requires a client ID")
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PAYLOAD", "Invoice amount must be greater than zero")
	}
	if p.Date == "" {
		return shared.NewDomainError("INVALID_PAYLOAD", "Invoice payload requires an issue date")
	}
	if p.DueDate == "" {
		return shared.NewDomainError("INVALID_PAYLOAD", "Invoice payload requires a due date")
	}
	return nil
}

// Dates coerces the payload's date strings into date values
func (p InvoicePayload) Dates() (issueDate, dueDate time.Time, err error) {
	issueDate, err = time.Parse(payloadDateLayout, p.Date)
	if err != nil {
		return time.Time{}, time.Time{},
			shared.NewDomainError("INVALID_PAYLOAD", "Invoice date must be formatted as YYYY-MM-DD")
	}
	dueDate, err = time.Parse(payloadDateLayout, p.DueDate)
	if err != nil {
		return time.Time{}, time.Time{},
			shared.NewDomainError("INVALID_PAYLOAD", "Invoice due date must be formatted as YYYY-MM-DD")
	}
	return issueDate, dueDate, nil
}

// DecodePayload deserializes a stored payload according to its declared type
// The switch is exhaustive over the closed type set
func DecodePayload(approvalType ApprovalType, data []byte) (Payload, error) {
	switch approvalType {
	case ApprovalTypeInvoice:
		var p InvoicePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, shared.NewDomainError("INVALID_PAYLOAD", "Malformed invoice payload")
		}
		return p, nil
	}
	return nil, shared.NewDomainError("INVALID_APPROVAL_TYPE", "Unknown approval type: "+string(approvalType))
}

// EncodePayload serializes a payload for storage
func EncodePayload(payload Payload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PAYLOAD", "Payload cannot be serialized")
	}
	return data, nil
}
