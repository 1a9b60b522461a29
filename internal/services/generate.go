package services

import (
	"context"
	"encoding/json"
	"strings"
)

// GenerateImageRequest drives text-to-image generation.
type GenerateImageRequest struct {
	APIKey       string
	Prompt       string
	NumResults   int
	AspectRatio  string
	EnhanceImage bool
	Medium       string
}

func (r GenerateImageRequest) fields() (map[string]any, error) {
	prompt, err := requireText("prompt", r.Prompt)
	if err != nil {
		return nil, err
	}
	if err := intRange("num_results", r.NumResults, MinGenerateResults, MaxGenerateResults); err != nil {
		return nil, err
	}
	aspect, err := oneOf("aspect_ratio", r.AspectRatio, DefaultAspectRatio, AspectRatios)
	if err != nil {
		return nil, err
	}
	medium, err := oneOf("medium", r.Medium, DefaultMedium, Mediums)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"prompt":             prompt,
		"num_results":        r.NumResults,
		"aspect_ratio":       aspect,
		"sync":               true,
		"enhance_image":      r.EnhanceImage,
		"medium":             medium,
		"prompt_enhancement": false,
		"content_moderation": true,
	}, nil
}

// GenerateImage creates images from a text prompt.
func (s *Service) GenerateImage(ctx context.Context, req GenerateImageRequest) (Result[json.RawMessage], error) {
	fields, err := req.fields()
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	raw, err := s.dispatch(ctx, opGenerateImage, req.APIKey, fields)
	if err != nil {
		return Result[json.RawMessage]{}, err
	}
	return success(raw, opGenerateImage), nil
}

// EnhancePromptRequest asks the vendor for a richer version of a prompt.
type EnhancePromptRequest struct {
	APIKey string
	Prompt string
}

// EnhancedPrompt carries the extracted text next to the untouched vendor body.
type EnhancedPrompt struct {
	Original string
	Enhanced string
	Raw      json.RawMessage
}

// EnhancePrompt rewrites a prompt for better generation results.
func (s *Service) EnhancePrompt(ctx context.Context, req EnhancePromptRequest) (Result[EnhancedPrompt], error) {
	prompt, err := requireText("prompt", req.Prompt)
	if err != nil {
		return Result[EnhancedPrompt]{}, err
	}
	raw, err := s.dispatch(ctx, opEnhancePrompt, req.APIKey, map[string]any{"prompt": prompt})
	if err != nil {
		return Result[EnhancedPrompt]{}, err
	}
	return Result[EnhancedPrompt]{
		Data: EnhancedPrompt{
			Original: req.Prompt,
			Enhanced: enhancedText(raw),
			Raw:      raw,
		},
		Message: opEnhancePrompt.message,
	}, nil
}

// enhancedText pulls the rewritten prompt out of the vendor answer. The
// vendor has used several keys over time and sometimes returns a list.
func enhancedText(raw json.RawMessage) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	for _, key := range []string{"prompt variations", "enhanced_prompt", "prompt"} {
		v, ok := body[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			for _, item := range list {
				if item = strings.TrimSpace(item); item != "" {
					return item
				}
			}
		}
	}
	return ""
}
