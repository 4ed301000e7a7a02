package gofolio

import (
	"github.com/nethrys/gofolio/dto"
)

// State snapshots the effective configuration and any in-flight transfers.
func (s *PortfolioSvc) State() *dto.SvcState {

	return &dto.SvcState{
		BaseURL:          s.cfg.BaseURL,
		RequestTimeout:   s.cfg.RequestTimeout,
		UserAgent:        s.cfg.UserAgent,
		ExtraHeaders:     s.cfg.ExtraHeaders,
		ProgressInterval: s.cfg.ProgressInterval,
		TransfersStatus:  s.transferState.GetAll(),
	}
}
