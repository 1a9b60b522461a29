package handlers

import (
	"net/http"

	"adsnap/internal/services"
)

// AddShadow handles POST /api/add-shadow.
func (a *App) AddShadow(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.AddShadowRequest{
		Image:           b.image("image"),
		ShadowType:      b.text("shadow_type"),
		BackgroundColor: b.text("background_color"),
		ShadowIntensity: b.integer("shadow_intensity", services.DefaultShadowIntensity, services.MinShadowIntensity, services.MaxShadowIntensity),
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
	res, err := a.Services.AddShadow(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}

// CreatePackshot handles POST /api/create-packshot.
func (a *App) CreatePackshot(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.PackshotRequest{
		Image:           b.image("image"),
		BackgroundColor: b.text("background_color"),
		ForceRMBG:       b.boolean("force_rmbg", false),
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
	res, err := a.Services.CreatePackshot(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}
