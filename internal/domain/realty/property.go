package realty

import (
	"strings"
	"time"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyType represents the usage class of a property unit
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeIndustrial  PropertyType = "industrial"
	PropertyTypeLand        PropertyType = "land"
)

// IsValid checks if the property type is one of the allowed values
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeIndustrial, PropertyTypeLand:
		return true
	}
	return false
}

// PropertyStatus represents the sale state of a property unit
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusSold      PropertyStatus = "sold"
)

// IsValid checks if the property status is one of the allowed values
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusReserved, PropertyStatusSold:
		return true
	}
	return false
}

// Property represents a sellable unit (plot, flat or shop) inside a project
type Property struct {
	shared.BaseAggregateRoot
	ProjectID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlotNumber    string          `gorm:"type:varchar(50);not null"`
	Type          PropertyType    `gorm:"type:varchar(20);not null"`
	Status        PropertyStatus  `gorm:"type:varchar(20);not null;default:'available'"`
	Area          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AreaUnit      string          `gorm:"type:varchar(20)"` // sqft, sqm, acre
	Location      string          `gorm:"type:varchar(500)"`
	OwnerClientID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Property) TableName() string {
	return "properties"
}

// NewProperty creates a new property unit within a project
func NewProperty(projectID uuid.UUID, plotNumber string, propertyType PropertyType) (*Property, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID cannot be empty")
	}
	plotNumber = strings.TrimSpace(plotNumber)
	if plotNumber == "" {
		return nil, shared.NewDomainError("INVALID_PLOT_NUMBER", "Plot number cannot be empty")
	}
	if len(plotNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_PLOT_NUMBER", "Plot number cannot exceed 50 characters")
	}
	if !propertyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid property type: "+string(propertyType))
	}

	return &Property{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProjectID:         projectID,
		PlotNumber:        plotNumber,
		Type:              propertyType,
		Status:            PropertyStatusAvailable,
		Area:              decimal.Zero,
	}, nil
}

// SetDimensions sets the unit's measured area and its unit label
func (p *Property) SetDimensions(area decimal.Decimal, unit string) error {
	if area.IsNegative() {
		return shared.NewDomainError("INVALID_AREA", "Area cannot be negative")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_AREA_UNIT", "Area unit cannot exceed 20 characters")
	}

	p.Area = area
	p.AreaUnit = strings.TrimSpace(unit)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetLocation sets the unit's location description
func (p *Property) SetLocation(location string) error {
	if len(location) > 500 {
		return shared.NewDomainError("INVALID_LOCATION", "Location cannot exceed 500 characters")
	}

	p.Location = strings.TrimSpace(location)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStatus moves the unit's sale state
func (p *Property) SetStatus(status PropertyStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid property status: "+string(status))
	}

	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AssignOwner records the client that holds this unit
func (p *Property) AssignOwner(clientID uuid.UUID) error {
	if clientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT_ID", "Client ID cannot be empty")
	}

	p.OwnerClientID = &clientID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ClearOwner removes the owner-of-record
func (p *Property) ClearOwner() {
	p.OwnerClientID = nil
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsAvailable returns true if the unit can be booked
func (p *Property) IsAvailable() bool {
	return p.Status == PropertyStatusAvailable
}
