package gofolio

import (
	"context"
	"net/url"

	"github.com/nethrys/gofolio/dto"
)

// ListContactMessages returns a page of inbound contact messages.
func (s *PortfolioSvc) ListContactMessages(ctx context.Context, page, limit int) ([]dto.ContactMessage, *dto.Meta, error) {
	var messages []dto.ContactMessage
	env, err := s.Get(ctx, "/contact", pageParams(page, limit), &messages)
	if err != nil {
		return nil, nil, err
	}
	return messages, env.Meta, nil
}

func (s *PortfolioSvc) GetContactMessage(ctx context.Context, id string) (*dto.ContactMessage, error) {
	var msg dto.ContactMessage
	if _, err := s.Get(ctx, "/contact/"+url.PathEscape(id), nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SubmitContact posts a visitor message. This is the one public write
// endpoint; it works without a credential.
func (s *PortfolioSvc) SubmitContact(ctx context.Context, msg dto.ContactMessage) (*dto.ContactMessage, error) {
	body, err := toBodyMap(msg)
	if err != nil {
		return nil, err
	}
	var created dto.ContactMessage
	if _, err := s.Post(ctx, "/contact", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// MarkContactRead flags a message as handled.
func (s *PortfolioSvc) MarkContactRead(ctx context.Context, id string) (*dto.ContactMessage, error) {
	var updated dto.ContactMessage
	if _, err := s.Put(ctx, "/contact/"+url.PathEscape(id)+"/read", nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PortfolioSvc) DeleteContactMessage(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, "/contact/"+url.PathEscape(id))
	return err
}
