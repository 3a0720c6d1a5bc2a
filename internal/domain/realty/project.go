package realty

import (
	"strings"
	"time"

	"github.com/estate/backend/internal/domain/shared"
)

// ProjectStatus represents the lifecycle state of a development project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusUnderway  ProjectStatus = "underway"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

// IsValid checks if the project status is one of the allowed values
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusUnderway, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

// Project represents a development project (a township, society or scheme)
// It is the aggregate root that owns property units
type Project struct {
	shared.BaseAggregateRoot
	Name        string        `gorm:"type:varchar(200);not null"`
	Location    string        `gorm:"type:varchar(500)"`
	Description string        `gorm:"type:text"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'planning'"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project with required fields
func NewProject(name, location string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}
	if len(location) > 500 {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location cannot exceed 500 characters")
	}

	return &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Location:          strings.TrimSpace(location),
		Status:            ProjectStatusPlanning,
	}, nil
}

// Update updates the project's basic information
func (p *Project) Update(name, location, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}
	if len(location) > 500 {
		return shared.NewDomainError("INVALID_LOCATION", "Location cannot exceed 500 characters")
	}

	p.Name = name
	p.Location = strings.TrimSpace(location)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStatus moves the project's lifecycle state
func (p *Project) SetStatus(status ProjectStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid project status: "+string(status))
	}

	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
