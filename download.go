package gofolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/nethrys/gofolio/dto"
	"github.com/nethrys/gofolio/utils"
)

// DownloadAsset streams a remote media asset to disk with progress
// notifications, e.g. for backing up uploaded portfolio media. When
// OutputFileName is empty the name is derived from the URL and written
// into DestinationFolder.
func (s *PortfolioSvc) DownloadAsset(ctx context.Context, cfg *dto.DownloadAssetConfig) error {

	if cfg.OutputFileName == "" {
		filename, err := utils.FilenameFromUrl(cfg.URL)
		if err != nil {
			return err
		}
		cfg.OutputFileName = filename
	}

	destination := filepath.Join(cfg.DestinationFolder, cfg.OutputFileName)

	s.log.WithFields(map[string]any{
		"source":      cfg.URL,
		"destination": destination,
	}).Info("starting download")

	return s.downloadAssetWithHTTP(ctx, cfg, destination)
}

// downloadAssetWithHTTP streams via net/http with progress
func (s *PortfolioSvc) downloadAssetWithHTTP(
	ctx context.Context,
	cfg *dto.DownloadAssetConfig,
	destination string,
) error {
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      cfg.URL,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return fmt.Errorf("could not create destination folder %q: %w", destination, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      cfg.URL,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return fmt.Errorf("failed to build request: %w", err)
	}
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		// If ctx was canceled, prefer STOPPED (so listeners close consistently)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.publishTransferUpdate(dto.TransferNotification{
				Source:      cfg.URL,
				Destination: destination,
				Status:      dto.STOPPED,
				Message:     err.Error(),
			})
			return err
		}

		s.publishTransferUpdate(dto.TransferNotification{
			Source:      cfg.URL,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return fmt.Errorf("failed to start download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      cfg.URL,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     fmt.Sprintf("bad HTTP status: %s", resp.Status),
		})
		return fmt.Errorf("bad HTTP status: %s", resp.Status)
	}

	out, err := os.Create(destination)
	if err != nil {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      cfg.URL,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return fmt.Errorf("could not create output file %q: %w", destination, err)
	}
	defer out.Close()

	total := resp.ContentLength
	if total <= 0 {
		s.log.WithField("source", cfg.URL).Warn("unknown file size")
	}

	interval := s.cfg.ProgressInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	report := func(transferred, total int64, percent float64, speed float64, eta time.Duration) {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      cfg.URL,
			Destination: destination,
			Status:      dto.IN_PROGRESS,
			Transferred: transferred,
			TotalSize:   total,
			Percentage:  percent,
		})
	}

	pr := &progressReader{
		ctx:        ctx,
		reader:     resp.Body,
		total:      total,
		interval:   interval,
		lastReport: time.Now(),
		startTime:  time.Now(),
		onProgress: report,
	}

	buf := make([]byte, 64*1024)
	_, err = io.CopyBuffer(out, pr, buf)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.publishTransferUpdate(dto.TransferNotification{
				Source:      cfg.URL,
				Destination: destination,
				Status:      dto.STOPPED,
			})
			return ctx.Err()
		}

		s.publishTransferUpdate(dto.TransferNotification{
			Source:      cfg.URL,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return fmt.Errorf("file transfer failed for %s: %w", cfg.URL, err)
	}

	if cfg.Checksum != "" {
		checkErr := utils.Sha256SumVerify(destination, cfg.Checksum)
		if checkErr != nil {
			s.publishTransferUpdate(dto.TransferNotification{
				Source:      cfg.URL,
				Destination: destination,
				Status:      dto.ERROR,
				Percentage:  100,
				Message:     "failed to verify checksum",
			})
			return fmt.Errorf("checksum verification failed: %w", checkErr)
		}
	}

	s.publishTransferUpdate(dto.TransferNotification{
		Source:      cfg.URL,
		Destination: destination,
		Status:      dto.COMPLETE,
		Transferred: total,
		TotalSize:   total,
		Percentage:  100,
		Message:     "download complete",
	})
	return nil
}
