package booking

import (
	"time"

	appcrm "github.com/estate/backend/internal/application/crm"
	"github.com/estate/backend/internal/domain/booking"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountInput mirrors the embedded discount value; all fields stay opaque
// strings and pass through unchanged
type DiscountInput struct {
	InauguralDiscount *string `json:"inaugural_discount,omitempty"`
	Rebate            *string `json:"rebate,omitempty"`
	PerArea           *string `json:"per_area,omitempty"`
	Percentage        *string `json:"percentage,omitempty"`
}

// ToDiscount converts the input into the embedded domain value
func (d *DiscountInput) ToDiscount() *booking.Discount {
	if d == nil {
		return nil
	}
	return &booking.Discount{
		InauguralDiscount: d.InauguralDiscount,
		Rebate:            d.Rebate,
		PerArea:           d.PerArea,
		Percentage:        d.Percentage,
	}
}

// DiscountInputFromDomain converts the embedded value back to transport shape
func DiscountInputFromDomain(d *booking.Discount) *DiscountInput {
	if d == nil {
		return nil
	}
	return &DiscountInput{
		InauguralDiscount: d.InauguralDiscount,
		Rebate:            d.Rebate,
		PerArea:           d.PerArea,
		Percentage:        d.Percentage,
	}
}

// ApplicantInput is the form-submitted applicant identity used to synthesize
// a client when no client_id is supplied
type ApplicantInput struct {
	Name             string               `json:"name" binding:"required,min=1,max=200"`
	Email            string               `json:"email" binding:"omitempty,email,max=200"`
	Phone            string               `json:"phone" binding:"max=50"`
	PAN              string               `json:"pan" binding:"max=10"`
	PresentAddress   *appcrm.AddressInput `json:"present_address"`
	OfficeAddress    *appcrm.AddressInput `json:"office_address"`
	PermanentAddress *appcrm.AddressInput `json:"permanent_address"`
}

// CreateBookingRequest represents a booking form submission
type CreateBookingRequest struct {
	ClientID           *uuid.UUID      `json:"client_id"`
	ProjectID          uuid.UUID       `json:"project_id" binding:"required"`
	PropertyID         uuid.UUID       `json:"property_id" binding:"required"`
	PaymentPlanID      uuid.UUID       `json:"payment_plan_id" binding:"required"`
	SalesEmployeeID    uuid.UUID       `json:"sales_employee_id" binding:"required"`
	BrokerID           *uuid.UUID      `json:"broker_id"`
	Applicant          *ApplicantInput `json:"applicant"`
	BasicPrice         decimal.Decimal `json:"basic_price" binding:"required"`
	UnitHolderType     string          `json:"unit_holder_type" binding:"max=50"`
	UnitType           string          `json:"unit_type" binding:"max=50"`
	CustomerKind       string          `json:"customer_kind" binding:"max=50"`
	BookingType        string          `json:"booking_type" binding:"max=50"`
	ApplicationDate    *time.Time      `json:"application_date"`
	FormNumber         string          `json:"form_number" binding:"max=50"`
	RegistrationNumber string          `json:"registration_number" binding:"max=50"`
	CompanyDiscount    *DiscountInput  `json:"company_discount"`
	BrokerDiscount     *DiscountInput  `json:"broker_discount"`
	Status             string          `json:"status" binding:"omitempty,oneof=pending approved hold cancelled"`
}

// UpdateBookingRequest patches a booking; only supplied relation ids are
// rewritten, omitted ones are left untouched
type UpdateBookingRequest struct {
	ProjectID          *uuid.UUID       `json:"project_id"`
	PropertyID         *uuid.UUID       `json:"property_id"`
	PaymentPlanID      *uuid.UUID       `json:"payment_plan_id"`
	SalesEmployeeID    *uuid.UUID       `json:"sales_employee_id"`
	BrokerID           *uuid.UUID       `json:"broker_id"`
	BasicPrice         *decimal.Decimal `json:"basic_price"`
	UnitHolderType     *string          `json:"unit_holder_type" binding:"omitempty,max=50"`
	UnitType           *string          `json:"unit_type" binding:"omitempty,max=50"`
	CustomerKind       *string          `json:"customer_kind" binding:"omitempty,max=50"`
	BookingType        *string          `json:"booking_type" binding:"omitempty,max=50"`
	ApplicationDate    *time.Time       `json:"application_date"`
	FormNumber         *string          `json:"form_number" binding:"omitempty,max=50"`
	RegistrationNumber *string          `json:"registration_number" binding:"omitempty,max=50"`
	CompanyDiscount    *DiscountInput   `json:"company_discount"`
	BrokerDiscount     *DiscountInput   `json:"broker_discount"`
	Status             *string          `json:"status" binding:"omitempty,oneof=pending approved hold cancelled"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ClientID           uuid.UUID       `json:"client_id"`
	ProjectID          uuid.UUID       `json:"project_id"`
	PropertyID         uuid.UUID       `json:"property_id"`
	PaymentPlanID      uuid.UUID       `json:"payment_plan_id"`
	SalesEmployeeID    uuid.UUID       `json:"sales_employee_id"`
	BrokerID           *uuid.UUID      `json:"broker_id,omitempty"`
	BasicPrice         decimal.Decimal `json:"basic_price"`
	UnitHolderType     string          `json:"unit_holder_type"`
	UnitType           string          `json:"unit_type"`
	CustomerKind       string          `json:"customer_kind"`
	BookingType        string          `json:"booking_type"`
	ApplicationDate    *time.Time      `json:"application_date,omitempty"`
	FormNumber         string          `json:"form_number"`
	RegistrationNumber string          `json:"registration_number"`
	ApplicantName      string          `json:"applicant_name"`
	CompanyDiscount    *DiscountInput  `json:"company_discount,omitempty"`
	BrokerDiscount     *DiscountInput  `json:"broker_discount,omitempty"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	Version            int             `json:"version"`
}

// ToBookingResponse maps a domain booking to its API shape
func ToBookingResponse(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		ProjectID:          b.ProjectID,
		PropertyID:         b.PropertyID,
		PaymentPlanID:      b.PaymentPlanID,
		SalesEmployeeID:    b.SalesEmployeeID,
		BrokerID:           b.BrokerID,
		BasicPrice:         b.BasicPrice,
		UnitHolderType:     b.UnitHolderType,
		UnitType:           b.UnitType,
		CustomerKind:       b.CustomerKind,
		BookingType:        b.BookingType,
		ApplicationDate:    b.ApplicationDate,
		FormNumber:         b.FormNumber,
		RegistrationNumber: b.RegistrationNumber,
		ApplicantName:      b.Applicant.Name,
		CompanyDiscount:    DiscountInputFromDomain(b.CompanyDiscount),
		BrokerDiscount:     DiscountInputFromDomain(b.BrokerDiscount),
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		Version:            b.Version,
	}
}

// ListBookingsResponse is a paginated booking listing
type ListBookingsResponse struct {
	Items      []BookingResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
