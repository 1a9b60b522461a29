package services

import (
	"context"
	"encoding/json"
)

// LifestyleTextRequest places a product into a scene described in text.
type LifestyleTextRequest struct {
	APIKey           string
	Image            Image
	SceneDescription string
	PlacementType    string
	NumResults       int
	Sync             bool
	Fast             bool
}

// LifestyleImageRequest places a product into a scene modelled on a reference image.
type LifestyleImageRequest struct {
	APIKey         string
	Image          Image
	ReferenceImage Image
	PlacementType  string
	NumResults     int
	Sync           bool
}

// placementFields adds the parameters the vendor expects for a placement mode.
func placementFields(fields map[string]any, placement string) {
	switch placement {
	case "original":
		fields["original_quality"] = false
	case "manual_placement":
		fields["shot_size"] = defaultShotSize
		fields["manual_placement_selection"] = defaultManualPlacement
		fields["padding_values"] = defaultPadding
	default:
		fields["shot_size"] = defaultShotSize
	}
}

func lifestyleCommon(placementType string, numResults int) (string, error) {
	placement, err := oneOf("placement_type", placementType, DefaultPlacementType, PlacementTypes)
	if err != nil {
		return "", err
	}
	if err := intRange("num_results", numResults, MinLifestyleResults, MaxLifestyleResults); err != nil {
		return "", err
	}
	return placement, nil
}

// LifestyleShotByText composes a lifestyle product shot from a scene description.
func (s *Service) LifestyleShotByText(ctx context.Context, req LifestyleTextRequest) (Result[json.RawMessage], error) {
	if err := requireImage("file", req.Image); err != nil {
		return Result[json.RawMessage]{}, err
	}
	scene, err := requireText("scene_description", req.SceneDescription)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	placement, err := lifestyleCommon(req.PlacementType, req.NumResults)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	fields := map[string]any{
		"scene_description":    scene,
		"placement_type":       placement,
		"num_results":          req.NumResults,
		"sync":                 req.Sync,
		"fast":                 req.Fast,
		"optimize_description": true,
		"force_rmbg":           false,
		"content_moderation":   true,
	}
	placementFields(fields, placement)

	raw, err := s.dispatch(ctx, opLifestyleText, req.APIKey, fields, req.Image.part("file"))
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opLifestyleText), nil
}

// LifestyleShotByImage composes a lifestyle product shot guided by a reference image.
func (s *Service) LifestyleShotByImage(ctx context.Context, req LifestyleImageRequest) (Result[json.RawMessage], error) {
	if err := requireImage("file", req.Image); err != nil {
		return Result[json.RawMessage]{}, err
	}
	if err := requireImage("reference_image", req.ReferenceImage); err != nil {
		return Result[json.RawMessage]{}, err
	}
	placement, err := lifestyleCommon(req.PlacementType, req.NumResults)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	fields := map[string]any{
		"placement_type":      placement,
		"num_results":         req.NumResults,
		"sync":                req.Sync,
		"enhance_ref_image":   true,
		"ref_image_influence": defaultRefImageInfluence,
		"force_rmbg":          false,
		"content_moderation":  true,
	}
	placementFields(fields, placement)

	raw, err := s.dispatch(ctx, opLifestyleImage, req.APIKey, fields,
		req.Image.part("file"),
		req.ReferenceImage.part("ref_image"),
	)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opLifestyleImage), nil
}
