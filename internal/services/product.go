package services

import (
	"context"
	"encoding/json"
)

// AddShadowRequest adds a natural or drop shadow under a product.
type AddShadowRequest struct {
	APIKey          string
	Image           Image
	ShadowType      string
	BackgroundColor string
	ShadowIntensity int
}

// AddShadow renders a shadow for a product image.
func (s *Service) AddShadow(ctx context.Context, req AddShadowRequest) (Result[json.RawMessage], error) {
	if err := requireImage("image", req.Image); err != nil {
		return Result[json.RawMessage]{}, err
	}
	shadowType, err := oneOf("shadow_type", req.ShadowType, DefaultShadowType, ShadowTypes)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	if err := intRange("shadow_intensity", req.ShadowIntensity, MinShadowIntensity, MaxShadowIntensity); err != nil {
		return Result[json.RawMessage]{}, err
	}
	background, err := color("background_color", req.BackgroundColor, "")
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	fields := map[string]any{
		"type":               shadowType,
		"shadow_color":       defaultShadowColor,
		"shadow_offset":      defaultShadowOffset,
		"shadow_intensity":   req.ShadowIntensity,
		"shadow_blur":        defaultShadowBlur,
		"shadow_height":      defaultShadowHeight,
		"force_rmbg":         false,
		"content_moderation": true,
	}
	if background != "" {
		fields["background_color"] = background
	}

	raw, err := s.dispatch(ctx, opAddShadow, req.APIKey, fields, req.Image.part("file"))
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opAddShadow), nil
}

// PackshotRequest produces a clean studio packshot.
type PackshotRequest struct {
	APIKey          string
	Image           Image
	BackgroundColor string
	ForceRMBG       bool
}

// CreatePackshot places the product on a plain background.
func (s *Service) CreatePackshot(ctx context.Context, req PackshotRequest) (Result[json.RawMessage], error) {
	if err := requireImage("image", req.Image); err != nil {
		return Result[json.RawMessage]{}, err
	}
	background, err := color("background_color", req.BackgroundColor, DefaultPackshotColor)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	fields := map[string]any{
		"background_color":   background,
		"force_rmbg":         req.ForceRMBG,
		"content_moderation": true,
	}

	raw, err := s.dispatch(ctx, opCreatePackshot, req.APIKey, fields, req.Image.part("file"))
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opCreatePackshot), nil
}
