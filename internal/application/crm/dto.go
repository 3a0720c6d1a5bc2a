package crm

import (
	"time"

	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// AddressInput is a structured postal address as submitted on forms
type AddressInput struct {
	Line1   string `json:"line1" binding:"required,max=500"`
	Line2   string `json:"line2" binding:"max=500"`
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"required,max=100"`
	Pincode string `json:"pincode" binding:"max=20"`
	Country string `json:"country" binding:"max=100"`
}

// ToValueObject converts the input into the domain address value
func (a *AddressInput) ToValueObject() (valueobject.PostalAddress, error) {
	if a == nil {
		return valueobject.EmptyPostalAddress(), nil
	}
	return valueobject.NewPostalAddressFull(a.Line1, a.Line2, a.City, a.State, a.Pincode, a.Country)
}

// AddressInputFromValueObject converts a domain address back into transport shape
func AddressInputFromValueObject(addr valueobject.PostalAddress) *AddressInput {
	if addr.IsEmpty() {
		return nil
	}
	return &AddressInput{
		Line1:   addr.Line1(),
		Line2:   addr.Line2(),
		City:    addr.City(),
		State:   addr.State(),
		Pincode: addr.Pincode(),
		Country: addr.Country(),
	}
}

// CreateClientRequest represents a request to create a new client
// Login credentials are optional: when supplied, a portal login account is
// provisioned in the same transaction as the client record
type CreateClientRequest struct {
	Name             string        `json:"name" binding:"required,min=1,max=200"`
	Email            string        `json:"email" binding:"omitempty,email,max=200"`
	Phone            string        `json:"phone" binding:"max=50"`
	PAN              string        `json:"pan" binding:"omitempty,pan"`
	GST              string        `json:"gst" binding:"max=15"`
	Aadhaar          string        `json:"aadhaar" binding:"max=12"`
	PresentAddress   *AddressInput `json:"present_address"`
	OfficeAddress    *AddressInput `json:"office_address"`
	PermanentAddress *AddressInput `json:"permanent_address"`
	Notes            string        `json:"notes"`
	LoginUsername    string        `json:"login_username" binding:"omitempty,min=3,max=50"`
	LoginPassword    string        `json:"login_password" binding:"omitempty,min=8,max=72"`
}

// UpdateClientRequest represents a patch of a client
type UpdateClientRequest struct {
	Name             *string       `json:"name" binding:"omitempty,min=1,max=200"`
	Email            *string       `json:"email" binding:"omitempty,email,max=200"`
	Phone            *string       `json:"phone" binding:"omitempty,max=50"`
	PAN              *string       `json:"pan" binding:"omitempty,pan"`
	GST              *string       `json:"gst" binding:"omitempty,max=15"`
	Aadhaar          *string       `json:"aadhaar" binding:"omitempty,max=12"`
	PresentAddress   *AddressInput `json:"present_address"`
	OfficeAddress    *AddressInput `json:"office_address"`
	PermanentAddress *AddressInput `json:"permanent_address"`
	Notes            *string       `json:"notes"`
}

// SetKYCStatusRequest moves a client's KYC verification state
type SetKYCStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	PAN              string        `json:"pan"`
	GST              string        `json:"gst"`
	Aadhaar          string        `json:"aadhaar"`
	PresentAddress   *AddressInput `json:"present_address,omitempty"`
	OfficeAddress    *AddressInput `json:"office_address,omitempty"`
	PermanentAddress *AddressInput `json:"permanent_address,omitempty"`
	Status           string        `json:"status"`
	KYCStatus        string        `json:"kyc_status"`
	LoginUserID      *uuid.UUID    `json:"login_user_id,omitempty"`
	Notes            string        `json:"notes"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	Version          int           `json:"version"`
}

// ToClientResponse maps a domain client to its API shape
func ToClientResponse(c *crm.Client) *ClientResponse {
	return &ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		PAN:              c.PAN,
		GST:              c.GST,
		Aadhaar:          c.Aadhaar,
		PresentAddress:   AddressInputFromValueObject(c.PresentAddress),
		OfficeAddress:    AddressInputFromValueObject(c.OfficeAddress),
		PermanentAddress: AddressInputFromValueObject(c.PermanentAddress),
		Status:           string(c.Status),
		KYCStatus:        string(c.KYCStatus),
		LoginUserID:      c.LoginUserID,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		Version:          c.Version,
	}
}

// ListClientsResponse is a paginated client listing
type ListClientsResponse struct {
	Items      []ClientResponse `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}
