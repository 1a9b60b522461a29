package services

import (
	"context"
	"encoding/json"
	"strings"
)

// GenerativeFillRequest regenerates the masked area of an image.
type GenerativeFillRequest struct {
	APIKey         string
	Image          Image
	Mask           Image
	Prompt         string
	NegativePrompt string
	NumResults     int
	Sync           bool
}

// GenerativeFill fills the white area of Mask with content matching Prompt.
func (s *Service) GenerativeFill(ctx context.Context, req GenerativeFillRequest) (Result[json.RawMessage], error) {
	if err := requireImage("image", req.Image); err != nil {
		return Result[json.RawMessage]{}, err
	}
	if err := requireImage("mask", req.Mask); err != nil {
		return Result[json.RawMessage]{}, err
	}
	prompt, err := requireText("prompt", req.Prompt)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	if err := intRange("num_results", req.NumResults, MinFillResults, MaxFillResults); err != nil {
		return Result[json.RawMessage]{}, err
	}
	fields := map[string]any{
		"prompt":             prompt,
		"num_results":        req.NumResults,
		"sync":               req.Sync,
		"mask_type":          defaultMaskType,
		"content_moderation": true,
	}
	if neg := strings.TrimSpace(req.NegativePrompt); neg != "" {
		fields["negative_prompt"] = neg
	}

	raw, err := s.dispatch(ctx, opGenerativeFill, req.APIKey, fields,
		req.Image.part("file"),
		req.Mask.part("mask_file"),
	)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opGenerativeFill), nil
}

// EraseForegroundRequest removes the main subject and reconstructs the background.
type EraseForegroundRequest struct {
	APIKey            string
	Image             Image
	ContentModeration bool
}

// EraseForeground erases the foreground of an image.
func (s *Service) EraseForeground(ctx context.Context, req EraseForegroundRequest) (Result[json.RawMessage], error) {
	if err := requireImage("image", req.Image); err != nil {
		return Result[json.RawMessage]{}, err
	}
	fields := map[string]any{"content_moderation": req.ContentModeration}
	raw, err := s.dispatch(ctx, opEraseForeground, req.APIKey, fields, req.Image.part("file"))
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opEraseForeground), nil
}

// RemoveBackgroundRequest cuts the subject out of its background.
type RemoveBackgroundRequest struct {
	APIKey            string
	Image             Image
	ContentModeration bool
}

// RemoveBackground removes the background of an image. content_moderation is
// only sent when enabled.
func (s *Service) RemoveBackground(ctx context.Context, req RemoveBackgroundRequest) (Result[json.RawMessage], error) {
	if err := requireImage("image", req.Image); err != nil {
		return Result[json.RawMessage]{}, err
	}
	fields := map[string]any{}
	if req.ContentModeration {
		fields["content_moderation"] = true
	}
	raw, err := s.dispatch(ctx, opRemoveBackground, req.APIKey, fields, req.Image.part("file"))
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opRemoveBackground), nil
}
