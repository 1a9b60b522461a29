package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"adsnap/internal/http/handlers"
	"adsnap/internal/infra"
	"adsnap/internal/middleware"
)

// Deps carries the cross-cutting pieces the router wires around the handlers.
type Deps struct {
	Logger          infra.Logger
	Metrics         *infra.Metrics
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(deps.Logger),
		middleware.Recoverer,
	)
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.Get("/", app.Root)
	r.Get("/health", app.Health)
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)
	r.Get("/redoc", app.Redoc)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(deps.RateLimitPerMin, time.Minute))

		r.Post("/generate-image", app.GenerateImage)
		r.Post("/enhance-prompt", app.EnhancePrompt)
		r.Route("/lifestyle-shot", func(r chi.Router) {
			r.Post("/text", app.LifestyleShotByText)
			r.Post("/image", app.LifestyleShotByImage)
		})
		r.Post("/generative-fill", app.GenerativeFill)
		r.Post("/erase-foreground", app.EraseForeground)
		r.Post("/add-shadow", app.AddShadow)
		r.Post("/create-packshot", app.CreatePackshot)
		r.Post("/remove-background", app.RemoveBackground)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","detail":"Not Found","message":"Not Found"}` + "\n"))
	})

	return r
}
