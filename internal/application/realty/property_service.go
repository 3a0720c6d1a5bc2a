package realty

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/realty"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PropertyService manages sellable units inside projects
type PropertyService struct {
	propertyRepo realty.PropertyRepository
	projectRepo  realty.ProjectRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo realty.PropertyRepository, projectRepo realty.ProjectRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		projectRepo:  projectRepo,
	}
}

// Create creates a new property unit under an existing project
func (s *PropertyService) Create(ctx context.Context, projectID uuid.UUID, req CreatePropertyRequest) (*PropertyResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewLinkedEntityNotFoundError("project", projectID.String())
		}
		return nil, err
	}

	property, err := realty.NewProperty(projectID, req.PlotNumber, realty.PropertyType(req.Type))
	if err != nil {
		return nil, err
	}
	if req.Area != nil {
		if err := property.SetDimensions(*req.Area, req.AreaUnit); err != nil {
			return nil, err
		}
	}
	if req.Location != "" {
		if err := property.SetLocation(req.Location); err != nil {
			return nil, err
		}
	}

	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}

	return ToPropertyResponse(property), nil
}

// Get returns a single property
func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponse(property), nil
}

// ListByProject returns a page of properties under one project
func (s *PropertyService) ListByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) (*ListPropertiesResponse, error) {
	properties, err := s.propertyRepo.FindByProject(ctx, projectID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.propertyRepo.Count(ctx, filter.WithFilter("project_id", projectID))
	if err != nil {
		return nil, err
	}
	return listResponse(properties, total, filter), nil
}

// List returns a page of properties
func (s *PropertyService) List(ctx context.Context, filter shared.Filter) (*ListPropertiesResponse, error) {
	properties, err := s.propertyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.propertyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return listResponse(properties, total, filter), nil
}

func listResponse(properties []realty.Property, total int64, filter shared.Filter) *ListPropertiesResponse {
	items := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, *ToPropertyResponse(&properties[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListPropertiesResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}
}

// Update patches a property; only supplied fields are applied
func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req UpdatePropertyRequest) (*PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Area != nil || req.AreaUnit != nil {
		area := property.Area
		unit := property.AreaUnit
		if req.Area != nil {
			area = *req.Area
		}
		if req.AreaUnit != nil {
			unit = *req.AreaUnit
		}
		if err := property.SetDimensions(area, unit); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		if err := property.SetLocation(*req.Location); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := property.SetStatus(realty.PropertyStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.OwnerClientID != nil {
		if err := property.AssignOwner(*req.OwnerClientID); err != nil {
			return nil, err
		}
	}

	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}

	return ToPropertyResponse(property), nil
}

// Delete removes a property
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.propertyRepo.Delete(ctx, id)
}
