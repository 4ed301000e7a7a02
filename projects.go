package gofolio

import (
	"context"
	"net/url"

	"github.com/nethrys/gofolio/dto"
)

// ListProjects returns a page of portfolio projects plus pagination meta.
// Zero page or limit leaves the backend defaults in effect.
func (s *PortfolioSvc) ListProjects(ctx context.Context, page, limit int) ([]dto.Project, *dto.Meta, error) {
	var projects []dto.Project
	env, err := s.Get(ctx, "/projects", pageParams(page, limit), &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, env.Meta, nil
}

func (s *PortfolioSvc) GetProject(ctx context.Context, id string) (*dto.Project, error) {
	var project dto.Project
	if _, err := s.Get(ctx, "/projects/"+url.PathEscape(id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *PortfolioSvc) CreateProject(ctx context.Context, project dto.Project) (*dto.Project, error) {
	body, err := toBodyMap(project)
	if err != nil {
		return nil, err
	}
	var created dto.Project
	if _, err := s.Post(ctx, "/projects", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PortfolioSvc) UpdateProject(ctx context.Context, id string, project dto.Project) (*dto.Project, error) {
	body, err := toBodyMap(project)
	if err != nil {
		return nil, err
	}
	var updated dto.Project
	if _, err := s.Put(ctx, "/projects/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PortfolioSvc) DeleteProject(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, "/projects/"+url.PathEscape(id))
	return err
}

// pageParams builds query params for paged listings, omitting unset values
// so CleanParams drops nothing meaningful.
func pageParams(page, limit int) map[string]any {
	params := map[string]any{}
	if page > 0 {
		params["page"] = page
	}
	if limit > 0 {
		params["limit"] = limit
	}
	if len(params) == 0 {
		return nil
	}
	return params
}
