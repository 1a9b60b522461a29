package handlers

import (
	"net/http"

	"adsnap/internal/services"
)

// LifestyleShotByText handles POST /api/lifestyle-shot/text.
func (a *App) LifestyleShotByText(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.LifestyleTextRequest{
		Image:            b.image("file"),
		SceneDescription: b.required("scene_description"),
		PlacementType:    b.text("placement_type"),
		NumResults:       b.integer("num_results", services.DefaultLifestyleCount, services.MinLifestyleResults, services.MaxLifestyleResults),
		Sync:             b.boolean("sync", false),
		Fast:             b.boolean("fast", true),
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
	res, err := a.Services.LifestyleShotByText(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}

// LifestyleShotByImage handles POST /api/lifestyle-shot/image.
func (a *App) LifestyleShotByImage(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.LifestyleImageRequest{
		Image:          b.image("file"),
		ReferenceImage: b.image("reference_image"),
		PlacementType:  b.text("placement_type"),
		NumResults:     b.integer("num_results", services.DefaultLifestyleCount, services.MinLifestyleResults, services.MaxLifestyleResults),
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
	res, err := a.Services.LifestyleShotByImage(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}
