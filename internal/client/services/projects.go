package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, p models.NewProject) (models.Project, error)
	Update(ctx context.Context, id string, p models.NewProject) (models.Project, error)
	Delete(ctx context.Context, id string) error
	// AssignUsers attaches users to a project and returns the updated project.
	AssignUsers(ctx context.Context, id string, userIDs []string) (models.Project, error)
}

type projectService struct {
	client client.Client
}

func NewProjectService(c client.Client) ProjectService {
	return &projectService{client: c}
}

func projectPath(id string) string {
	return "/projects/" + url.PathEscape(id)
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: "/projects"}, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id string) (models.Project, error) {
	var p models.Project
	err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: projectPath(id)}, &p)
	return p, err
}

func (s *projectService) Create(ctx context.Context, p models.NewProject) (models.Project, error) {
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}
	if p.AssignedUsers == nil {
		p.AssignedUsers = []string{}
	}

	var created models.Project
	err := s.client.Do(ctx, client.Request{Method: http.MethodPost, Path: "/projects", Body: p}, &created)
	return created, err
}

func (s *projectService) Update(ctx context.Context, id string, p models.NewProject) (models.Project, error) {
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}
	if p.AssignedUsers == nil {
		p.AssignedUsers = []string{}
	}

	var updated models.Project
	err := s.client.Do(ctx, client.Request{Method: http.MethodPut, Path: projectPath(id), Body: p}, &updated)
	return updated, err
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, client.Request{Method: http.MethodDelete, Path: projectPath(id)}, nil)
}

func (s *projectService) AssignUsers(ctx context.Context, id string, userIDs []string) (models.Project, error) {
	var p models.Project
	err := s.client.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   projectPath(id) + "/users",
		Body:   models.AssignUsersRequest{UserIDs: userIDs},
	}, &p)
	return p, err
}
