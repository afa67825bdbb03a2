package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	apptriage "github.com/bryanwahyu/skin-triage/internal/application/triage"
	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
	"github.com/bryanwahyu/skin-triage/internal/middleware"
)

// errBadRequest marks handler errors caused by the request itself.
var errBadRequest = errors.New("bad request")

type Router struct {
	svc *apptriage.Service
}

// NewRouter wires the triage API. apiKeys is optional; an empty map
// disables auth. checkers feed the /health report. rlCapacity/rlRefill are
// the token-bucket parameters from config.
func NewRouter(svc *apptriage.Service, apiKeys map[string]string, checkers map[string]middleware.HealthChecker, rlCapacity, rlRefill int) http.Handler {
	r := &Router{svc: svc}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	if len(apiKeys) > 0 {
		mux.Use(middleware.APIKeyAuth(apiKeys))
	}
	mux.Use(middleware.RateLimitMiddleware(rlCapacity, rlRefill))

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/health/ready", middleware.ReadinessHandler)
	mux.Get("/health/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, errBadRequest) || errors.Is(err, apptriage.ErrNoImage) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			// Upstream model problems are a bad gateway from the client's
			// point of view: the service itself is fine.
			if errors.Is(err, domain.ErrModelCall) || errors.Is(err, domain.ErrMalformedPayload) {
				http.Error(w, err.Error(), http.StatusBadGateway)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /v1/analyze
// multipart form: "image" file (jpg/jpeg/png), optional "location" text field.
// Classification failure aborts the request; enrichment failures are carried
// inside the result as per-stage messages.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseMultipartForm(middleware.MaxImageBytes); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	file, header, err := req.FormFile("image")
	if err != nil {
		return fmt.Errorf("%w: image file is required", errBadRequest)
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, middleware.MaxImageBytes+1))
	if err != nil {
		return err
	}
	if err := middleware.ValidateImage(header.Filename, image); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	location := req.FormValue("location")
	if err := middleware.ValidateLocation(location); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	middleware.IncrementAnalyses()
	result, err := r.svc.Analyze(req.Context(), image, location)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}

	if result.SummaryError != "" {
		middleware.IncrementSummaryFailures()
	}
	if result.SpecialistsError != "" {
		middleware.IncrementSpecialistFailures()
	}
	if result.VideosError != "" {
		middleware.IncrementVideoFailures()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Headers are already committed at this point; an http.Error would
		// clobber a partially written body. Log and give up on the response.
		log.Printf("analysis=%s response encode error: %v", result.ID, err)
	}
	return nil
}
