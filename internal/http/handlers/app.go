package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"adsnap/internal/domain"
	"adsnap/internal/infra"
	"adsnap/internal/services"
)

const (
	Version = "1.0.0"

	statusSuccess = "success"
	statusError   = "error"
)

// App carries the dependencies shared by every handler.
type App struct {
	Services       *services.Service
	DefaultAPIKey  string
	MaxUploadBytes int64
	Logger         *infra.Logger
}

// NewApp builds the handler container. defaultAPIKey is the process-wide
// credential read once at startup; it may be empty.
func NewApp(svc *services.Service, cfg *infra.Config, logger *infra.Logger) *App {
	app := &App{Services: svc, Logger: logger}
	if cfg != nil {
		app.DefaultAPIKey = strings.TrimSpace(cfg.BriaAPIKey)
		app.MaxUploadBytes = cfg.MaxUploadBytes
	}
	if app.MaxUploadBytes <= 0 {
		app.MaxUploadBytes = 25 << 20
	}
	if app.Logger == nil {
		l := infra.Logger(zerolog.New(io.Discard))
		app.Logger = &l
	}
	return app
}

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) success(w http.ResponseWriter, data any, message string) {
	a.json(w, http.StatusOK, envelope{Status: statusSuccess, Data: data, Message: message})
}

// fail maps an adapter or binding error onto the error envelope.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	logger := zerolog.Ctx(r.Context())
	if logger.GetLevel() == zerolog.Disabled {
		logger = a.Logger
	}
	event := logger.Warn()
	if code >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", code).Str("path", r.URL.Path).Msg("request failed")
	a.json(w, code, envelope{Status: statusError, Detail: err.Error(), Message: http.StatusText(code)})
}

func statusFor(err error) int {
	var verr *domain.ValidationError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMissingCredential):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// apiKey resolves the credential: request field first, then the process default.
func (a *App) apiKey(r *http.Request) (string, error) {
	if key := strings.TrimSpace(r.FormValue("api_key")); key != "" {
		return key, nil
	}
	if a.DefaultAPIKey != "" {
		return a.DefaultAPIKey, nil
	}
	return "", domain.ErrMissingCredential
}
