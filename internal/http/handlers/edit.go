package handlers

import (
	"net/http"

	"adsnap/internal/services"
)

// GenerativeFill handles POST /api/generative-fill.
func (a *App) GenerativeFill(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.GenerativeFillRequest{
		Image:          b.image("image"),
		Mask:           b.image("mask"),
		Prompt:         b.required("prompt"),
		NegativePrompt: b.text("negative_prompt"),
		NumResults:     b.integer("num_results", 1, services.MinFillResults, services.MaxFillResults),
		Sync:           b.boolean("sync", false),
	}
	if err := b.Err(); err != nil {
		a.fail(w, r, err)
		return
	}
	key, err := a.apiKey(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	req.APIKey = key
	res, err := a.Services.GenerativeFill(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}

// EraseForeground handles POST /api/erase-foreground.
func (a *App) EraseForeground(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.EraseForegroundRequest{
		Image:             b.image("image"),
		ContentModeration: b.boolean("content_moderation", false),
	}
	if err := b.Err(); err != nil {
		a.fail(w, r, err)
		return
	}
	key, err := a.apiKey(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	req.APIKey = key
	res, err := a.Services.EraseForeground(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}

// RemoveBackground handles POST /api/remove-background.
func (a *App) RemoveBackground(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.RemoveBackgroundRequest{
		Image:             b.image("image"),
		ContentModeration: b.boolean("content_moderation", false),
	}
	if err := b.Err(); err != nil {
		a.fail(w, r, err)
		return
	}
	key, err := a.apiKey(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	req.APIKey = key
	res, err := a.Services.RemoveBackground(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}
