// Package services holds one adapter per image capability. Each adapter
// validates a typed request, maps it onto the Bria request contract with the
// fixed vendor defaults, performs exactly one call and hands the vendor JSON
// back untouched.
package services

import (
	"context"
	"encoding/json"
	"strings"

	"adsnap/internal/domain"
	"adsnap/internal/providers/bria"
)

// Caller performs a single vendor call. *bria.Client implements it.
type Caller interface {
	Call(ctx context.Context, req bria.Request) (json.RawMessage, error)
}

// Result is the normalized outcome of one adapter call.
type Result[T any] struct {
	Data    T
	Message string
}

// Image is an uploaded payload. Bytes are forwarded as-is.
type Image struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Empty reports whether there is nothing to forward.
func (i Image) Empty() bool {
	return len(i.Data) == 0
}

func (i Image) part(field string) bria.File {
	return bria.File{Field: field, Filename: i.Filename, ContentType: i.ContentType, Data: i.Data}
}

// Service exposes the capability adapters.
type Service struct {
	caller Caller
}

// NewService wires the adapters to a vendor caller.
func NewService(caller Caller) *Service {
	return &Service{caller: caller}
}

// dispatch performs the credential check and the single vendor call shared by every adapter.
func (s *Service) dispatch(ctx context.Context, op operation, apiKey string, fields map[string]any, files ...bria.File) (json.RawMessage, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, domain.ErrMissingCredential
	}
	return s.caller.Call(ctx, bria.Request{
		Operation: op.name,
		Endpoint:  op.endpoint,
		APIKey:    apiKey,
		Fields:    fields,
		Files:     files,
	})
}

func success(raw json.RawMessage, op operation) Result[json.RawMessage] {
	return Result[json.RawMessage]{Data: raw, Message: op.message}
}
