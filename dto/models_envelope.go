package dto

import (
	"encoding/json"
	"fmt"
)

// Meta carries pagination details on list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Envelope is the standard JSON wrapper returned by every backend endpoint.
// Data is kept raw so callers decide the concrete type to decode into.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// DecodeData unmarshals the envelope payload into dst. It is a no-op when
// the envelope carries no data.
func (e *Envelope) DecodeData(dst any) error {
	if len(e.Data) == 0 || dst == nil {
		return nil
	}
	if err := json.Unmarshal(e.Data, dst); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}

// DerivedMessage resolves the most specific human-readable message the
// envelope carries. Never empty when fallback is non-empty.
func (e *Envelope) DerivedMessage(fallback string) string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Message != "":
		return e.Message
	case len(e.Errors) > 0:
		return e.Errors[0]
	default:
		return fallback
	}
}
