package gofolio

import (
	"context"
	"net/url"

	"github.com/nethrys/gofolio/dto"
)

func (s *PortfolioSvc) ListTimeline(ctx context.Context, page, limit int) ([]dto.TimelineEntry, *dto.Meta, error) {
	var entries []dto.TimelineEntry
	env, err := s.Get(ctx, "/timeline", pageParams(page, limit), &entries)
	if err != nil {
		return nil, nil, err
	}
	return entries, env.Meta, nil
}

func (s *PortfolioSvc) GetTimelineEntry(ctx context.Context, id string) (*dto.TimelineEntry, error) {
	var entry dto.TimelineEntry
	if _, err := s.Get(ctx, "/timeline/"+url.PathEscape(id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *PortfolioSvc) CreateTimelineEntry(ctx context.Context, entry dto.TimelineEntry) (*dto.TimelineEntry, error) {
	body, err := toBodyMap(entry)
	if err != nil {
		return nil, err
	}
	var created dto.TimelineEntry
	if _, err := s.Post(ctx, "/timeline", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PortfolioSvc) UpdateTimelineEntry(ctx context.Context, id string, entry dto.TimelineEntry) (*dto.TimelineEntry, error) {
	body, err := toBodyMap(entry)
	if err != nil {
		return nil, err
	}
	var updated dto.TimelineEntry
	if _, err := s.Put(ctx, "/timeline/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PortfolioSvc) DeleteTimelineEntry(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, "/timeline/"+url.PathEscape(id))
	return err
}
