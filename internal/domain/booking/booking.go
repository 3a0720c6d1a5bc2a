package booking

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/estate/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the operational state of a booking
// There is no default: an omitted status stays empty until the issuing
// process sets the initial state explicitly
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusHold      BookingStatus = "hold"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the status is one of the allowed values
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusHold, BookingStatusCancelled:
		return true
	}
	return false
}

// Applicant is the form-submitted identity of the person booking the unit
// It is kept alongside the resolved client so the original submission survives
type Applicant struct {
	Name             string                    `json:"name"`
	Email            string                    `json:"email,omitempty"`
	Phone            string                    `json:"phone,omitempty"`
	PAN              string                    `json:"pan,omitempty"`
	PresentAddress   valueobject.PostalAddress `json:"present_address,omitempty"`
	OfficeAddress    valueobject.PostalAddress `json:"office_address,omitempty"`
	PermanentAddress valueobject.PostalAddress `json:"permanent_address,omitempty"`
}

// Value implements driver.Valuer for database storage
func (a Applicant) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *Applicant) Scan(value any) error {
	if value == nil {
		*a = Applicant{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into Applicant", value)
	}

	if len(data) == 0 || string(data) == "null" {
		*a = Applicant{}
		return nil
	}

	return json.Unmarshal(data, a)
}

// Booking is the central transactional record of a unit sale attempt
type Booking struct {
	shared.BaseAggregateRoot
	ClientID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProjectID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentPlanID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SalesEmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	BrokerID           *uuid.UUID      `gorm:"type:uuid;index"`
	UnitHolderType     string          `gorm:"type:varchar(50)"` // self, joint, company
	UnitType           string          `gorm:"type:varchar(50)"`
	CustomerKind       string          `gorm:"type:varchar(50)"` // investor, end user
	BookingType        string          `gorm:"type:varchar(50)"`
	ApplicationDate    *time.Time      `gorm:"type:date"`
	BasicPrice         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FormNumber         string          `gorm:"type:varchar(50)"`
	RegistrationNumber string          `gorm:"type:varchar(50)"`
	Applicant          Applicant       `gorm:"type:jsonb"`
	CompanyDiscount    *Discount       `gorm:"type:jsonb"`
	BrokerDiscount     *Discount       `gorm:"type:jsonb"`
	Status             BookingStatus   `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// NewBooking creates a booking against already-resolved relation IDs
// Price and link validation happens here, before any persistence attempt
func NewBooking(clientID, projectID, propertyID, paymentPlanID, salesEmployeeID uuid.UUID,
	basicPrice decimal.Decimal) (*Booking, error) {

	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID cannot be empty")
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY_ID", "Property ID cannot be empty")
	}
	if paymentPlanID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAYMENT_PLAN_ID", "Payment plan ID cannot be empty")
	}
	if salesEmployeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SALES_EMPLOYEE_ID", "Sales employee ID cannot be empty")
	}
	if basicPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BASIC_PRICE", "Basic price cannot be negative")
	}

	return &Booking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		ProjectID:         projectID,
		PropertyID:        propertyID,
		PaymentPlanID:     paymentPlanID,
		SalesEmployeeID:   salesEmployeeID,
		BasicPrice:        basicPrice,
	}, nil
}

// SetBroker attaches the brokering user
func (b *Booking) SetBroker(brokerID uuid.UUID) error {
	if brokerID == uuid.Nil {
		return shared.NewDomainError("INVALID_BROKER_ID", "Broker ID cannot be empty")
	}

	b.BrokerID = &brokerID
	b.touch()
	return nil
}

// SetDiscounts attaches the company and broker granted discounts
// A nil discount stays nil and persists as NULL
func (b *Booking) SetDiscounts(company, broker *Discount) {
	b.CompanyDiscount = company
	b.BrokerDiscount = broker
	b.touch()
}

// SetApplicant records the form-submitted applicant details
func (b *Booking) SetApplicant(applicant Applicant) error {
	if strings.TrimSpace(applicant.Name) == "" {
		return shared.NewDomainError("INVALID_APPLICANT", "Applicant name cannot be empty")
	}

	b.Applicant = applicant
	b.touch()
	return nil
}

// SetClassification records the form's categorical fields
func (b *Booking) SetClassification(unitHolderType, unitType, customerKind, bookingType string) {
	b.UnitHolderType = unitHolderType
	b.UnitType = unitType
	b.CustomerKind = customerKind
	b.BookingType = bookingType
	b.touch()
}

// SetFormNumbers records the paper-trail identifiers
func (b *Booking) SetFormNumbers(formNumber, registrationNumber string) {
	b.FormNumber = formNumber
	b.RegistrationNumber = registrationNumber
	b.touch()
}

// SetApplicationDate records when the application form was filed
func (b *Booking) SetApplicationDate(date time.Time) {
	b.ApplicationDate = &date
	b.touch()
}

// SetBasicPrice replaces the unit's base price
func (b *Booking) SetBasicPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_BASIC_PRICE", "Basic price cannot be negative")
	}

	b.BasicPrice = price
	b.touch()
	return nil
}

// SetStatus moves the booking's operational state
// The empty status is allowed only at creation, never through this setter
func (b *Booking) SetStatus(status BookingStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid booking status: "+string(status))
	}

	b.Status = status
	b.touch()
	return nil
}

// Relink rewrites the supplied relation IDs, leaving nil ones untouched
func (b *Booking) Relink(projectID, propertyID, paymentPlanID, salesEmployeeID, brokerID *uuid.UUID) error {
	for name, id := range map[string]*uuid.UUID{
		"project":        projectID,
		"property":       propertyID,
		"payment plan":   paymentPlanID,
		"sales employee": salesEmployeeID,
		"broker":         brokerID,
	} {
		if id != nil && *id == uuid.Nil {
			return shared.NewDomainError("INVALID_LINK", "Supplied "+name+" ID cannot be empty")
		}
	}

	if projectID != nil {
		b.ProjectID = *projectID
	}
	if propertyID != nil {
		b.PropertyID = *propertyID
	}
	if paymentPlanID != nil {
		b.PaymentPlanID = *paymentPlanID
	}
	if salesEmployeeID != nil {
		b.SalesEmployeeID = *salesEmployeeID
	}
	if brokerID != nil {
		b.BrokerID = brokerID
	}

	b.touch()
	return nil
}

// HasBroker returns true if a broker is attached
func (b *Booking) HasBroker() bool {
	return b.BrokerID != nil
}

func (b *Booking) touch() {
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}
