package realty

import (
	"context"

	"github.com/estate/backend/internal/domain/realty"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectService manages development projects
type ProjectService struct {
	projectRepo realty.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo realty.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	project, err := realty.NewProject(req.Name, req.Location)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := project.Update(project.Name, project.Location, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	return ToProjectResponse(project), nil
}

// Get returns a single project
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(project), nil
}

// List returns a page of projects
func (s *ProjectService) List(ctx context.Context, filter shared.Filter) (*ListProjectsResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.projectRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, *ToProjectResponse(&projects[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListProjectsResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// Update patches a project; only supplied fields are applied
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Location != nil || req.Description != nil {
		name := project.Name
		location := project.Location
		description := project.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Location != nil {
			location = *req.Location
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := project.Update(name, location, description); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := project.SetStatus(realty.ProjectStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	return ToProjectResponse(project), nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.projectRepo.Delete(ctx, id)
}
