package gofolio

import (
	"context"
	"net/url"

	"github.com/nethrys/gofolio/dto"
)

// ListAboutProfiles returns every stored profile; at most one is active at
// a time on the backend.
func (s *PortfolioSvc) ListAboutProfiles(ctx context.Context) ([]dto.AboutProfile, error) {
	var profiles []dto.AboutProfile
	if _, err := s.Get(ctx, "/about", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *PortfolioSvc) CreateAboutProfile(ctx context.Context, profile dto.AboutProfile) (*dto.AboutProfile, error) {
	body, err := toBodyMap(profile)
	if err != nil {
		return nil, err
	}
	var created dto.AboutProfile
	if _, err := s.Post(ctx, "/about", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PortfolioSvc) UpdateAboutProfile(ctx context.Context, id string, profile dto.AboutProfile) (*dto.AboutProfile, error) {
	body, err := toBodyMap(profile)
	if err != nil {
		return nil, err
	}
	var updated dto.AboutProfile
	if _, err := s.Put(ctx, "/about/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ActivateAboutProfile makes the given profile the one served publicly.
func (s *PortfolioSvc) ActivateAboutProfile(ctx context.Context, id string) (*dto.AboutProfile, error) {
	var activated dto.AboutProfile
	if _, err := s.Put(ctx, "/about/"+url.PathEscape(id)+"/activate", nil, &activated); err != nil {
		return nil, err
	}
	return &activated, nil
}

func (s *PortfolioSvc) DeleteAboutProfile(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, "/about/"+url.PathEscape(id))
	return err
}
