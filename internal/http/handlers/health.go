package handlers

import (
	"net/http"
)

var endpointIndex = map[string]string{
	"generate_image":       "/api/generate-image",
	"enhance_prompt":       "/api/enhance-prompt",
	"lifestyle_shot_text":  "/api/lifestyle-shot/text",
	"lifestyle_shot_image": "/api/lifestyle-shot/image",
	"generative_fill":      "/api/generative-fill",
	"erase_foreground":     "/api/erase-foreground",
	"add_shadow":           "/api/add-shadow",
	"create_packshot":      "/api/create-packshot",
	"remove_background":    "/api/remove-background",
}

// Root returns service metadata and the endpoint index.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"message":       "Welcome to AdSnap Studio API",
		"version":       Version,
		"documentation": "/docs",
		"redoc":         "/redoc",
		"openapi":       "/openapi.json",
		"endpoints":     endpointIndex,
	})
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"api_key_configured": a.DefaultAPIKey != "",
	})
}
