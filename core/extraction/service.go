// ABOUTME: Service layer implementation of the ordered extraction chain
// ABOUTME: Tries each strategy in turn and degrades to partial text, stripped markup or a sentinel

package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"webtext/core/domain"
	coreerrors "webtext/core/errors"
	"webtext/core/identity"
	"webtext/core/interfaces"
	"webtext/pkg/config"
	htmlutil "webtext/pkg/utils/html"
)

const (
	// SentinelMessage is returned when every strategy and fallback is exhausted
	SentinelMessage = "Failed to extract meaningful content from this URL. The site may use anti-scraping measures."

	// LimitedContentPrefix marks text recovered by stripping tags from a raw body
	LimitedContentPrefix = "Limited content extracted: "
)

var errEmptyDownload = errors.New("fetcher returned no body")

// Sleeper blocks for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration)

// ContextSleep is the default Sleeper
func ContextSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Service runs the extraction chain for one URL at a time
type Service struct {
	deps       interfaces.Dependencies
	identity   *identity.Builder
	thresholds config.ExtractionConfig
	sleep      Sleeper
}

// NewService creates the chain. A nil sleep uses ContextSleep and a nil logger discards diagnostics.
func NewService(deps interfaces.Dependencies, identityBuilder *identity.Builder, thresholds config.ExtractionConfig, sleep Sleeper) *Service {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	if sleep == nil {
		sleep = ContextSleep
	}
	return &Service{
		deps:       deps,
		identity:   identityBuilder,
		thresholds: thresholds,
		sleep:      sleep,
	}
}

// run is the state of a single Extract call
type run struct {
	reqCtx domain.RequestContext

	// bodies holds every successful download in fetch order
	bodies []*domain.RawDownload

	// partial is the most recent non-empty generic extraction below its threshold
	partial string
}

// step is one strategy of the chain
type step struct {
	name       string
	provenance domain.Provenance
	threshold  int
	// keepsPartial records sub-threshold output for the partial text fallback
	keepsPartial bool
	applies      func(r *run) bool
	attempt      func(ctx context.Context, r *run) (string, error)
}

// Extract returns the best text the chain can produce for url. It never fails.
func (s *Service) Extract(ctx context.Context, url string) string {
	return s.ExtractResult(ctx, url).Text
}

// ExtractResult is Extract plus the provenance of the returned text
func (s *Service) ExtractResult(ctx context.Context, url string) domain.ExtractedText {
	r := &run{reqCtx: s.identity.Build(url)}

	s.deps.Logger.Info("Starting extraction", map[string]interface{}{
		"url":   url,
		"delay": r.reqCtx.Delay.String(),
	})
	s.sleep(ctx, r.reqCtx.Delay)

	for _, st := range s.steps() {
		if st.applies != nil && !st.applies(r) {
			s.deps.Logger.Debug("Skipping strategy", map[string]interface{}{
				"url":      url,
				"strategy": st.name,
			})
			continue
		}

		s.deps.Logger.Info("Attempting strategy", map[string]interface{}{
			"url":      url,
			"strategy": st.name,
		})

		text, err := s.runStep(ctx, st, r)
		if err != nil {
			s.deps.Logger.Error("Strategy failed", map[string]interface{}{
				"url":      url,
				"strategy": st.name,
				"error":    err.Error(),
				"kind":     failureKind(err),
			})
			continue
		}

		if domain.IsMeaningful(text, st.threshold) {
			s.deps.Logger.Info("Strategy succeeded", map[string]interface{}{
				"url":      url,
				"strategy": st.name,
				"chars":    utf8.RuneCountInString(text),
			})
			return domain.ExtractedText{Text: text, Provenance: st.provenance}
		}

		if st.keepsPartial && strings.TrimSpace(text) != "" {
			r.partial = text
		}
		s.deps.Logger.Warn("Strategy produced insufficient content", map[string]interface{}{
			"url":       url,
			"strategy":  st.name,
			"chars":     utf8.RuneCountInString(strings.TrimSpace(text)),
			"threshold": st.threshold,
		})
	}

	return s.degrade(r)
}

// steps lists the strategies in priority order
func (s *Service) steps() []step {
	return []step{
		{
			name:         "session",
			provenance:   domain.ProvenanceSession,
			threshold:    s.thresholds.GeneralMinChars,
			keepsPartial: true,
			applies:      func(*run) bool { return s.deps.PrimaryFetcher != nil },
			attempt: func(ctx context.Context, r *run) (string, error) {
				return s.fetchAndExtract(ctx, s.deps.PrimaryFetcher, r)
			},
		},
		{
			name:         "alternate",
			provenance:   domain.ProvenanceAlternate,
			threshold:    s.thresholds.GeneralMinChars,
			keepsPartial: true,
			applies:      func(*run) bool { return s.deps.AlternateFetcher != nil },
			attempt: func(ctx context.Context, r *run) (string, error) {
				return s.fetchAndExtract(ctx, s.deps.AlternateFetcher, r)
			},
		},
		{
			name:       "marketplace",
			provenance: domain.ProvenanceMarketplace,
			// the description length check happens inside the attempt
			threshold: 0,
			applies: func(r *run) bool {
				return len(r.bodies) > 0 && IsMarketplaceHost(r.reqCtx.URL)
			},
			attempt: func(_ context.Context, r *run) (string, error) {
				return s.extractProduct(r)
			},
		},
	}
}

func (s *Service) fetchAndExtract(ctx context.Context, fetcher interfaces.Fetcher, r *run) (string, error) {
	raw, err := fetcher.Fetch(ctx, r.reqCtx)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", errEmptyDownload
	}
	r.bodies = append(r.bodies, raw)

	if s.deps.Extractor == nil {
		return "", nil
	}
	return s.deps.Extractor.Extract(raw)
}

// extractProduct tries each download in fetch order and returns the first product found
func (s *Service) extractProduct(r *run) (string, error) {
	var lastErr error
	for _, raw := range r.bodies {
		text, err := ExtractProduct(raw.Body, s.thresholds.MarketplaceMinChars)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// runStep turns a panic inside a strategy into an ordinary failure
func (s *Service) runStep(ctx context.Context, st step, r *run) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = fmt.Errorf("%s strategy panicked: %v", st.name, p)
		}
	}()
	return st.attempt(ctx, r)
}

// degrade picks the best non-ideal output once every strategy has failed
func (s *Service) degrade(r *run) domain.ExtractedText {
	if r.partial != "" {
		s.deps.Logger.Warn("Returning partial content", map[string]interface{}{
			"url": r.reqCtx.URL,
		})
		return domain.ExtractedText{Text: r.partial, Provenance: domain.ProvenancePartial}
	}

	for _, raw := range r.bodies {
		cleaned := htmlutil.StripHTML(raw.Body)
		if !domain.IsMeaningful(cleaned, s.thresholds.RawMinChars) {
			continue
		}
		s.deps.Logger.Warn("Returning tag-stripped content", map[string]interface{}{
			"url":    r.reqCtx.URL,
			"source": raw.Source,
			"chars":  utf8.RuneCountInString(cleaned),
		})
		return domain.ExtractedText{
			Text:       LimitedContentPrefix + htmlutil.Truncate(cleaned, s.thresholds.RawMaxChars),
			Provenance: domain.ProvenanceRawMarkup,
		}
	}

	s.deps.Logger.Error("All extraction strategies failed", map[string]interface{}{
		"url": r.reqCtx.URL,
	})
	return domain.ExtractedText{Text: SentinelMessage, Provenance: domain.ProvenanceSentinel}
}

// failureKind classifies a strategy error for the logs
func failureKind(err error) string {
	switch {
	case coreerrors.IsFetch(err):
		return "fetch"
	case coreerrors.IsExtraction(err):
		return "extraction"
	}
	return "other"
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
