package crm

import (
	"regexp"
	"strings"
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/estate/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ClientStatus represents the status of a client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// KYCStatus represents the verification state of a client's identity documents
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusVerified KYCStatus = "verified"
	KYCStatusRejected KYCStatus = "rejected"
)

// IsValid checks if the KYC status is one of the allowed values
func (s KYCStatus) IsValid() bool {
	switch s {
	case KYCStatusPending, KYCStatusVerified, KYCStatusRejected:
		return true
	}
	return false
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\-\s]{5,19}$`)
	panRegex   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// Client represents a buyer or prospect in the crm context
// It is the aggregate root for client-related operations
type Client struct {
	shared.BaseAggregateRoot
	Name             string                      `gorm:"type:varchar(200);not null"`
	Email            string                      `gorm:"type:varchar(200);index"`
	Phone            string                      `gorm:"type:varchar(50);index"`
	PAN              string                      `gorm:"type:varchar(10);index"`
	GST              string                      `gorm:"type:varchar(15)"`
	Aadhaar          string                      `gorm:"type:varchar(12)"`
	PresentAddress   valueobject.PostalAddress   `gorm:"type:jsonb"`
	OfficeAddress    valueobject.PostalAddress   `gorm:"type:jsonb"`
	PermanentAddress valueobject.PostalAddress   `gorm:"type:jsonb"`
	Status           ClientStatus                `gorm:"type:varchar(20);not null;default:'active'"`
	KYCStatus        KYCStatus                   `gorm:"type:varchar(20);not null;default:'pending'"`
	LoginUserID      *uuid.UUID                  `gorm:"type:uuid;index"`
	Notes            string                      `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(name string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}

	client := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Status:            ClientStatusActive,
		KYCStatus:         KYCStatusPending,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update updates the client's name
func (c *Client) Update(name string) error {
	if err := validateClientName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// SetContact sets the client's contact information
func (c *Client) SetContact(phone, email string) error {
	if phone != "" && !phoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	if email != "" && !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetTaxIdentity sets the client's statutory identifiers
// PAN is validated against the issued format; GST and Aadhaar only by length
func (c *Client) SetTaxIdentity(pan, gst, aadhaar string) error {
	pan = strings.ToUpper(strings.TrimSpace(pan))
	if pan != "" && !panRegex.MatchString(pan) {
		return shared.NewDomainError("INVALID_PAN", "Invalid PAN format")
	}
	if gst != "" && len(gst) != 15 {
		return shared.NewDomainError("INVALID_GST", "GST number must be 15 characters")
	}
	if aadhaar != "" && len(aadhaar) != 12 {
		return shared.NewDomainError("INVALID_AADHAAR", "Aadhaar number must be 12 digits")
	}

	c.PAN = pan
	c.GST = gst
	c.Aadhaar = aadhaar
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddresses sets the client's present, office and permanent addresses
// Any of the three may be empty
func (c *Client) SetAddresses(present, office, permanent valueobject.PostalAddress) {
	c.PresentAddress = present
	c.OfficeAddress = office
	c.PermanentAddress = permanent
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// LinkLoginUser attaches the identity user that backs this client's portal login
func (c *Client) LinkLoginUser(userID uuid.UUID) {
	c.LoginUserID = &userID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetKYCStatus moves the client's KYC verification state
func (c *Client) SetKYCStatus(status KYCStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_KYC_STATUS", "Invalid KYC status: "+string(status))
	}

	oldStatus := c.KYCStatus
	c.KYCStatus = status
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientKYCStatusChangedEvent(c, oldStatus, status))

	return nil
}

// SetNotes sets the client's notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate activates the client
func (c *Client) Activate() error {
	if c.Status == ClientStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Client is already active")
	}

	c.Status = ClientStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate deactivates the client
func (c *Client) Deactivate() error {
	if c.Status == ClientStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Client is already inactive")
	}

	c.Status = ClientStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive returns true if the client is active
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

// IsKYCVerified returns true if the client's documents passed verification
func (c *Client) IsKYCVerified() bool {
	return c.KYCStatus == KYCStatusVerified
}

func validateClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}
