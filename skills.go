package gofolio

import (
	"context"
	"net/url"

	"github.com/nethrys/gofolio/dto"
)

// ListSkills returns a page of skills plus pagination meta, optionally
// filtered by category. Zero page or limit leaves the backend defaults in
// effect.
func (s *PortfolioSvc) ListSkills(ctx context.Context, category string, page, limit int) ([]dto.Skill, *dto.Meta, error) {
	params := pageParams(page, limit)
	if category != "" {
		if params == nil {
			params = map[string]any{}
		}
		params["category"] = category
	}
	var skills []dto.Skill
	env, err := s.Get(ctx, "/skills", params, &skills)
	if err != nil {
		return nil, nil, err
	}
	return skills, env.Meta, nil
}

func (s *PortfolioSvc) GetSkill(ctx context.Context, id string) (*dto.Skill, error) {
	var skill dto.Skill
	if _, err := s.Get(ctx, "/skills/"+url.PathEscape(id), nil, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *PortfolioSvc) CreateSkill(ctx context.Context, skill dto.Skill) (*dto.Skill, error) {
	body, err := toBodyMap(skill)
	if err != nil {
		return nil, err
	}
	var created dto.Skill
	if _, err := s.Post(ctx, "/skills", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PortfolioSvc) UpdateSkill(ctx context.Context, id string, skill dto.Skill) (*dto.Skill, error) {
	body, err := toBodyMap(skill)
	if err != nil {
		return nil, err
	}
	var updated dto.Skill
	if _, err := s.Put(ctx, "/skills/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PortfolioSvc) DeleteSkill(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, "/skills/"+url.PathEscape(id))
	return err
}
