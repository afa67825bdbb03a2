package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bryanwahyu/skin-triage/internal/application"
	apptriage "github.com/bryanwahyu/skin-triage/internal/application/triage"
	"github.com/bryanwahyu/skin-triage/internal/config"
	groqclient "github.com/bryanwahyu/skin-triage/internal/infra/ai/groq"
	visionclient "github.com/bryanwahyu/skin-triage/internal/infra/ai/openai"
	"github.com/bryanwahyu/skin-triage/internal/infra/httpserver"
	"github.com/bryanwahyu/skin-triage/internal/infra/search/linkup"
	"github.com/bryanwahyu/skin-triage/internal/middleware"
)

func main() {
	// .env kalau ada, env asli tetap menang
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// Clients are built once here and reused across requests. The vision
	// model is mandatory; Groq and Linkup stay nil without their keys.
	vision := visionclient.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	svc := &apptriage.Service{
		Classifier: vision,
		Clock:      application.SystemClock{},
	}
	if cfg.Groq.APIKey != "" {
		svc.Summarizer = groqclient.NewClient(cfg.Groq.APIKey, cfg.Groq.Model)
	} else {
		log.Println("GROQ_API_KEY not set: educational summaries fall back or report absence")
	}
	if cfg.Linkup.APIKey != "" {
		search := linkup.NewClient(cfg.Linkup.APIKey)
		svc.Specialists = search
		svc.Videos = search
	} else {
		log.Println("LINKUP_API_KEY not set: specialist and video search disabled")
	}

	checkers := map[string]middleware.HealthChecker{
		"groq":   middleware.AdapterChecker{Configured: svc.Summarizer != nil},
		"linkup": middleware.AdapterChecker{Configured: svc.Specialists != nil},
	}

	mux := httpserver.NewRouter(svc, cfg.Auth.APIKeys, checkers, cfg.Server.RateLimitCapacity, cfg.Server.RateLimitRefill)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s (vision model %s at %s)", addr, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
