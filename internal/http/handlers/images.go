package handlers

import (
	"net/http"

	"adsnap/internal/services"
)

type enhanceEnvelope struct {
	Status   string `json:"status"`
	Data     any    `json:"data"`
	Original string `json:"original"`
	Enhanced string `json:"enhanced"`
	Message  string `json:"message"`
}

// GenerateImage handles POST /api/generate-image.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	req := services.GenerateImageRequest{
		Prompt:       b.required("prompt"),
		NumResults:   b.integer("num_results", 1, services.MinGenerateResults, services.MaxGenerateResults),
		AspectRatio:  b.text("aspect_ratio"),
		EnhanceImage: b.boolean("enhance_image", true),
		Medium:       b.text("medium"),
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
	res, err := a.Services.GenerateImage(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.success(w, res.Data, res.Message)
}

// EnhancePrompt handles POST /api/enhance-prompt.
func (a *App) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	b := a.bind(w, r)
	prompt := b.required("prompt")
	if err := b.Err(); err != nil {
		a.fail(w, r, err)
		return
	}
	key, err := a.apiKey(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Services.EnhancePrompt(r.Context(), services.EnhancePromptRequest{APIKey: key, Prompt: prompt})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, enhanceEnvelope{
		Status:   statusSuccess,
		Data:     res.Data.Raw,
		Original: res.Data.Original,
		Enhanced: res.Data.Enhanced,
		Message:  res.Message,
	})
}
