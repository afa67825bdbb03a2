package triage

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bryanwahyu/skin-triage/internal/application"
	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
	"github.com/bryanwahyu/skin-triage/internal/infra/ai/prompt"
)

// ErrNoImage is returned when an analyze request carries no image bytes.
var ErrNoImage = errors.New("image is required")

// Service implements the triage use-case: classify one image, then enrich.
// Classification is the hard prerequisite; the enrichment stages are
// independent of each other and each degrades on its own.
//
// The optional ports stay nil when the matching credential is absent;
// nil is a valid, fully supported configuration.
type Service struct {
	Classifier  domain.Classifier
	Summarizer  domain.Summarizer
	Specialists domain.SpecialistFinder
	Videos      domain.VideoFinder
	Clock       application.Clock
}

//
// ==== USE CASES ====
//

// Analyze runs one full triage pass over an uploaded image.
// A classification error is fatal; every enrichment failure is carried as a
// per-stage message in the result instead.
func (s *Service) Analyze(ctx context.Context, image []byte, location string) (*domain.AnalysisResult, error) {
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	start := s.Clock.Now()
	id := domain.AnalysisID(uuid.New().String())

	cls, err := s.Classifier.Classify(ctx, image)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		ID:             id,
		AnalyzedAt:     start,
		Classification: cls,
		Healthy:        domain.IsHealthy(cls.Label),
	}

	// Enrichment stages write to disjoint fields, so they can run together
	// without a lock. Specialist search is skipped on the healthy branch.
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Summary, result.SummaryError = s.summarize(ctx, cls.Label)
		if result.SummaryError != "" {
			log.Printf("analysis=%s stage=summary degraded: %s", id, result.SummaryError)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Videos, result.VideosError = s.findVideos(ctx, cls.Label)
		if result.VideosError != "" {
			log.Printf("analysis=%s stage=videos degraded: %s", id, result.VideosError)
		}
	}()

	if !result.Healthy {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Specialists, result.SpecialistsError = s.findSpecialists(ctx, cls.Label, location)
			if result.SpecialistsError != "" {
				log.Printf("analysis=%s stage=specialists degraded: %s", id, result.SpecialistsError)
			}
		}()
	}

	wg.Wait()
	result.DurationMS = s.Clock.Now().Sub(start).Milliseconds()
	return result, nil
}

// summarize applies the fallback ladder: missing client or failed call both
// resolve to the canned text when the condition is acne, and to an absence
// reason for every other label.
func (s *Service) summarize(ctx context.Context, label string) (text, reason string) {
	acne := strings.EqualFold(strings.TrimSpace(label), string(domain.LabelAcne))

	if s.Summarizer == nil {
		if acne {
			return prompt.CannedAcneSummary, ""
		}
		return "", "text model not configured: set GROQ_API_KEY to enable educational snippets"
	}

	out, err := s.Summarizer.Summarize(ctx, label)
	if err != nil {
		if acne {
			return prompt.CannedAcneSummary, ""
		}
		return "", err.Error()
	}
	return out, ""
}

func (s *Service) findSpecialists(ctx context.Context, label, location string) (any, string) {
	if s.Specialists == nil {
		return nil, "search client not configured: set LINKUP_API_KEY to enable specialist search"
	}
	out, err := s.Specialists.FindSpecialists(ctx, label, location)
	if err != nil {
		return nil, err.Error()
	}
	return out, ""
}

func (s *Service) findVideos(ctx context.Context, label string) ([]domain.VideoEntry, string) {
	if s.Videos == nil {
		return nil, "search client not configured: set LINKUP_API_KEY to enable video discovery"
	}
	out, err := s.Videos.FindVideos(ctx, label)
	if err != nil {
		return nil, err.Error()
	}
	return out, ""
}
