package realty

import (
	"time"

	"github.com/estate/backend/internal/domain/realty"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Location    string `json:"location" binding:"max=500"`
	Description string `json:"description"`
}

// UpdateProjectRequest patches a project; only supplied fields are applied
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Location    *string `json:"location" binding:"omitempty,max=500"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=planning underway completed on_hold"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ToProjectResponse maps a domain project to its API shape
func ToProjectResponse(p *realty.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ListProjectsResponse is a paginated project listing
type ListProjectsResponse struct {
	Items      []ProjectResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// CreatePropertyRequest represents a request to create a property unit
type CreatePropertyRequest struct {
	PlotNumber string           `json:"plot_number" binding:"required,min=1,max=50"`
	Type       string           `json:"type" binding:"required,oneof=residential commercial industrial land"`
	Area       *decimal.Decimal `json:"area"`
	AreaUnit   string           `json:"area_unit" binding:"max=20"`
	Location   string           `json:"location" binding:"max=500"`
}

// UpdatePropertyRequest patches a property; only supplied fields are applied
type UpdatePropertyRequest struct {
	Area          *decimal.Decimal `json:"area"`
	AreaUnit      *string          `json:"area_unit" binding:"omitempty,max=20"`
	Location      *string          `json:"location" binding:"omitempty,max=500"`
	Status        *string          `json:"status" binding:"omitempty,oneof=available reserved sold"`
	OwnerClientID *uuid.UUID       `json:"owner_client_id"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProjectID     uuid.UUID       `json:"project_id"`
	PlotNumber    string          `json:"plot_number"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Area          decimal.Decimal `json:"area"`
	AreaUnit      string          `json:"area_unit,omitempty"`
	Location      string          `json:"location,omitempty"`
	OwnerClientID *uuid.UUID      `json:"owner_client_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// ToPropertyResponse maps a domain property to its API shape
func ToPropertyResponse(p *realty.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:            p.ID,
		ProjectID:     p.ProjectID,
		PlotNumber:    p.PlotNumber,
		Type:          string(p.Type),
		Status:        string(p.Status),
		Area:          p.Area,
		AreaUnit:      p.AreaUnit,
		Location:      p.Location,
		OwnerClientID: p.OwnerClientID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ListPropertiesResponse is a paginated property listing
type ListPropertiesResponse struct {
	Items      []PropertyResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
