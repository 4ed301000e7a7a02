package httpclient

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/nethrys/gofolio/utils"
)

// FinalizeBody prepares BodyBytes and ContentType exactly once per call.
// Rules:
//   - If BodyBytes is already set, we respect it and only keep ContentType.
//   - Files present: build a multipart payload; ContentType carries the
//     boundary chosen by the writer.
//   - Otherwise build BodyBytes from Body+BodyType.
func (r *HTTPRequest) FinalizeBody() error {
	if r.BodyBytes != nil {
		return nil
	}

	if len(r.Files) > 0 {
		return r.finalizeMultipart()
	}

	bodyBuf, ct, err := utils.PrepareBody(r.Body, r.BodyType)
	if err != nil {
		return fmt.Errorf("prepare body: %w", err)
	}

	r.BodyBytes = bodyBuf
	// Prefer explicit ContentType if some middleware set it.
	if r.ContentType == "" && bodyBuf != nil {
		r.ContentType = ct
	}
	return nil
}

func (r *HTTPRequest) finalizeMultipart() error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range r.FormFields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field %q: %w", k, err)
		}
	}

	for _, f := range r.Files {
		field := f.FieldName
		if field == "" {
			field = "file"
		}
		part, err := w.CreateFormFile(field, f.FileName)
		if err != nil {
			return fmt.Errorf("create form file %q: %w", f.FileName, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("write form file %q: %w", f.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	r.BodyBytes = buf.Bytes()
	r.ContentType = w.FormDataContentType()
	return nil
}
