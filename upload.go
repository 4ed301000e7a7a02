package gofolio

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/nethrys/gofolio/client/httpclient"
	"github.com/nethrys/gofolio/client/mediaclient"
	"github.com/nethrys/gofolio/dto"
	"github.com/nethrys/gofolio/utils"
)

// UploadFile sends one file through the backend's upload endpoint as a
// multipart form with a folder field. The multipart body is finalized once
// up front, so auth refresh and rate-limit replays reuse the same bytes.
func (s *PortfolioSvc) UploadFile(ctx context.Context, filePath, folder string) (*dto.UploadedAsset, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read upload file %q: %w", filePath, err)
	}

	destination := path.Join(folder, filepath.Base(filePath))
	s.publishTransferUpdate(dto.TransferNotification{
		Source:      filePath,
		Destination: destination,
		Status:      dto.IN_PROGRESS,
		TotalSize:   int64(len(content)),
	})

	var asset dto.UploadedAsset
	err = s.doUpload(ctx, "/upload/single", folder, &asset, httpclient.FilePart{
		FieldName: "file",
		FileName:  filepath.Base(filePath),
		Content:   content,
	})
	if err != nil {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      filePath,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return nil, err
	}

	s.publishTransferUpdate(dto.TransferNotification{
		Source:      filePath,
		Destination: asset.URL,
		Status:      dto.COMPLETE,
		Percentage:  100,
		TotalSize:   int64(len(content)),
		Transferred: int64(len(content)),
		Message:     "upload complete",
	})
	return &asset, nil
}

// UploadFiles sends multiple files in one multipart request.
func (s *PortfolioSvc) UploadFiles(ctx context.Context, filePaths []string, folder string) ([]dto.UploadedAsset, error) {
	parts := make([]httpclient.FilePart, 0, len(filePaths))
	var total int64
	for _, p := range filePaths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read upload file %q: %w", p, err)
		}
		total += int64(len(content))
		parts = append(parts, httpclient.FilePart{
			FieldName: "files",
			FileName:  filepath.Base(p),
			Content:   content,
		})
	}

	source := fmt.Sprintf("%d files", len(filePaths))
	s.publishTransferUpdate(dto.TransferNotification{
		Source:      source,
		Destination: folder,
		Status:      dto.IN_PROGRESS,
		TotalSize:   total,
	})

	var assets []dto.UploadedAsset
	if err := s.doUpload(ctx, "/upload/multiple", folder, &assets, parts...); err != nil {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      source,
			Destination: folder,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return nil, err
	}

	s.publishTransferUpdate(dto.TransferNotification{
		Source:      source,
		Destination: folder,
		Status:      dto.COMPLETE,
		Percentage:  100,
		TotalSize:   total,
		Transferred: total,
		Message:     "upload complete",
	})
	return assets, nil
}

func (s *PortfolioSvc) doUpload(ctx context.Context, uploadPath, folder string, out any, parts ...httpclient.FilePart) error {
	reqCfg := httpclient.DefaultHTTPRequestConfig()
	reqCfg.WithURL(s.cfg.ResolveURL(uploadPath)).
		WithMethod("POST").
		WithFiles(parts...).
		WithFormField("folder", folder)

	cfg := dto.DefaultRequestConfig()
	cfg.WithReqConfig(&reqCfg).
		WithTimeout(s.cfg.RequestTimeout).
		WithTaskName("upload " + uploadPath)

	resp, err := s.RequestOnce(ctx, &cfg)
	if err != nil {
		return err
	}

	env := httpclient.Classify(resp).Envelope
	if out != nil {
		if err := env.DecodeData(out); err != nil {
			return err
		}
	}
	return nil
}

// DeleteFile removes a stored asset by its public ID.
func (s *PortfolioSvc) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.Delete(ctx, "/upload/"+url.PathEscape(publicID))
	return err
}

// AssetURL composes a delivery URL for a stored asset, passing absolute
// URLs through unchanged.
func (s *PortfolioSvc) AssetURL(publicID, transform string) string {
	return utils.BuildAssetURL(s.cfg.Media.DeliveryBase, publicID, transform)
}

// UploadFileDirect writes a file straight to the configured media bucket,
// bypassing the backend. Requires a hydrated media client.
func (s *PortfolioSvc) UploadFileDirect(ctx context.Context, filePath, folder, contentType string) (*dto.UploadedAsset, error) {
	_, ok := s.clients[mediaClientRef]
	if !ok {
		return nil, fmt.Errorf("client not found: %s", mediaClientRef)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read upload file %q: %w", filePath, err)
	}
	filename := filepath.Base(filePath)
	destination := path.Join(folder, filename)

	s.publishTransferUpdate(dto.TransferNotification{
		Source:      filePath,
		Destination: destination,
		Status:      dto.IN_PROGRESS,
		TotalSize:   int64(len(content)),
	})

	mediaReq := mediaclient.MediaRequestConfig{
		Operation:   "put",
		Folder:      folder,
		Filename:    filename,
		Body:        content,
		ContentType: contentType,
		Checksum:    utils.Sha256SumBytes(content),
	}

	cfg := dto.DefaultRequestConfig()
	cfg.WithClientRef(mediaClientRef).
		WithReqConfig(&mediaReq).
		WithTimeout(s.cfg.RequestTimeout).
		WithTaskName("media put " + destination)

	if _, err := s.RequestOnce(ctx, &cfg); err != nil {
		s.publishTransferUpdate(dto.TransferNotification{
			Source:      filePath,
			Destination: destination,
			Status:      dto.ERROR,
			Message:     err.Error(),
		})
		return nil, err
	}

	s.publishTransferUpdate(dto.TransferNotification{
		Source:      filePath,
		Destination: destination,
		Status:      dto.COMPLETE,
		Percentage:  100,
		TotalSize:   int64(len(content)),
		Transferred: int64(len(content)),
		Message:     "upload complete",
	})

	return &dto.UploadedAsset{
		PublicID: destination,
		URL:      s.AssetURL(destination, ""),
		Bytes:    int64(len(content)),
		Folder:   folder,
	}, nil
}

// DeleteFileDirect removes an object from the media bucket by key.
func (s *PortfolioSvc) DeleteFileDirect(ctx context.Context, folder, filename string) error {
	if _, ok := s.clients[mediaClientRef]; !ok {
		return fmt.Errorf("client not found: %s", mediaClientRef)
	}

	mediaReq := mediaclient.MediaRequestConfig{
		Operation: "delete",
		Folder:    folder,
		Filename:  filename,
	}

	cfg := dto.DefaultRequestConfig()
	cfg.WithClientRef(mediaClientRef).
		WithReqConfig(&mediaReq).
		WithTimeout(s.cfg.RequestTimeout).
		WithTaskName("media delete " + path.Join(folder, filename))

	_, err := s.RequestOnce(ctx, &cfg)
	return err
}
