// api/store/draw_store.go
package store

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"drawboard/api/dataset"
	"drawboard/api/models"
	"drawboard/api/parse"
	"drawboard/api/stats"
)

// LoadStatus is the three-state-plus-loading flag surfaced to clients.
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading" // before the first result arrives
	StatusReady   LoadStatus = "ready"   // non-empty parsed sequence
	StatusEmpty   LoadStatus = "empty"   // fetch succeeded, zero records parsed
	StatusError   LoadStatus = "error"   // transport failure or non-2xx status
)

// StatusReport is the status payload for one dataset.
type StatusReport struct {
	Status  LoadStatus `json:"status"`
	Records int        `json:"records"`
	Error   string     `json:"error,omitempty"`
}

// DrawStore owns the Powerball draw sequence and its derived values. Each
// load attempt is tagged with a UUID; a finished attempt applies its result
// only while its tag is still current, so a superseded load's late result
// is discarded rather than overwriting newer state. The in-flight request
// itself is never aborted.
type DrawStore struct {
	source *dataset.CSVSource

	mu        sync.Mutex
	attempt   string
	status    LoadStatus
	loadErr   error
	draws     []models.Draw
	summary   *models.DrawSummary            // memoized per attempt
	pickCache map[string]models.PickAnalysis // memoized per attempt, keyed on pick values
}

// NewDrawStore creates a DrawStore in the loading state.
func NewDrawStore(source *dataset.CSVSource) *DrawStore {
	return &DrawStore{
		source:    source,
		status:    StatusLoading,
		pickCache: make(map[string]models.PickAnalysis),
	}
}

// Load runs one fetch-and-parse cycle. Safe to call from a goroutine; a
// call that finishes after a newer Load began is a no-op.
func (s *DrawStore) Load(ctx context.Context) {
	attempt := s.begin()
	text, err := s.source.Fetch(ctx)
	var draws []models.Draw
	if err == nil {
		draws = parse.Draws(text)
	}
	s.apply(attempt, draws, err)
}

// begin tags a new load attempt and resets the status to loading.
func (s *DrawStore) begin() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt = uuid.New().String()
	s.status = StatusLoading
	return s.attempt
}

// apply installs the result of a load attempt, unless a newer attempt has
// started since.
func (s *DrawStore) apply(attempt string, draws []models.Draw, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		log.Printf("Discarding stale draw load result (attempt %s superseded)", attempt)
		return
	}

	s.loadErr = err
	s.draws = draws
	s.summary = nil
	s.pickCache = make(map[string]models.PickAnalysis)

	switch {
	case err != nil:
		s.status = StatusError
		log.Printf("Draw dataset load failed: %v", err)
	case len(draws) == 0:
		s.status = StatusEmpty
		log.Println("Draw dataset loaded but contained no usable rows.")
	default:
		s.status = StatusReady
		log.Printf("Draw dataset loaded: %d draws.", len(draws))
	}
}

// Status reports the current load state and record count.
func (s *DrawStore) Status() StatusReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	report := StatusReport{Status: s.status, Records: len(s.draws)}
	if s.loadErr != nil {
		report.Error = s.loadErr.Error()
	}
	return report
}

// Draws returns the parsed draw sequence. Callers must treat it as
// read-only.
func (s *DrawStore) Draws() []models.Draw {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}

// Summary returns the aggregated draw statistics, computed at most once per
// load attempt.
func (s *DrawStore) Summary() models.DrawSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		summary := stats.SummarizeDraws(s.draws)
		s.summary = &summary
	}
	return *s.summary
}

// CheckPick evaluates a pick against the current draw sequence, memoizing
// per (attempt, pick values) since the same pick re-submitted against the
// same dataset always yields the same analysis.
func (s *DrawStore) CheckPick(mains []string, powerball string) models.PickAnalysis {
	key := strings.Join(mains, ",") + "|" + powerball

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.pickCache[key]; ok {
		return cached
	}
	analysis := stats.EvaluatePick(s.draws, mains, powerball)
	s.pickCache[key] = analysis
	return analysis
}
