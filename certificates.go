package gofolio

import (
	"context"
	"net/url"

	"github.com/nethrys/gofolio/dto"
)

func (s *PortfolioSvc) ListCertificates(ctx context.Context, page, limit int) ([]dto.Certificate, *dto.Meta, error) {
	var certs []dto.Certificate
	env, err := s.Get(ctx, "/certificates", pageParams(page, limit), &certs)
	if err != nil {
		return nil, nil, err
	}
	return certs, env.Meta, nil
}

func (s *PortfolioSvc) GetCertificate(ctx context.Context, id string) (*dto.Certificate, error) {
	var cert dto.Certificate
	if _, err := s.Get(ctx, "/certificates/"+url.PathEscape(id), nil, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *PortfolioSvc) CreateCertificate(ctx context.Context, cert dto.Certificate) (*dto.Certificate, error) {
	body, err := toBodyMap(cert)
	if err != nil {
		return nil, err
	}
	var created dto.Certificate
	if _, err := s.Post(ctx, "/certificates", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PortfolioSvc) UpdateCertificate(ctx context.Context, id string, cert dto.Certificate) (*dto.Certificate, error) {
	body, err := toBodyMap(cert)
	if err != nil {
		return nil, err
	}
	var updated dto.Certificate
	if _, err := s.Put(ctx, "/certificates/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PortfolioSvc) DeleteCertificate(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, "/certificates/"+url.PathEscape(id))
	return err
}
