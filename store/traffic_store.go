// api/store/traffic_store.go
package store

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"drawboard/api/dataset"
	"drawboard/api/models"
	"drawboard/api/parse"
	"drawboard/api/stats"
)

// TrafficStore owns the daily portal-traffic sequence and its derived
// values, with the same load-attempt guard as DrawStore.
type TrafficStore struct {
	source *dataset.CSVSource

	mu      sync.Mutex
	attempt string
	status  LoadStatus
	loadErr error
	days    []models.TrafficDay
	summary *models.TrafficSummary // memoized per attempt
}

// NewTrafficStore creates a TrafficStore in the loading state.
func NewTrafficStore(source *dataset.CSVSource) *TrafficStore {
	return &TrafficStore{
		source: source,
		status: StatusLoading,
	}
}

// Load runs one fetch-and-parse cycle. A call that finishes after a newer
// Load began is a no-op.
func (s *TrafficStore) Load(ctx context.Context) {
	attempt := s.begin()
	text, err := s.source.Fetch(ctx)
	var days []models.TrafficDay
	if err == nil {
		days = parse.Traffic(text)
	}
	s.apply(attempt, days, err)
}

func (s *TrafficStore) begin() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt = uuid.New().String()
	s.status = StatusLoading
	return s.attempt
}

func (s *TrafficStore) apply(attempt string, days []models.TrafficDay, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		log.Printf("Discarding stale traffic load result (attempt %s superseded)", attempt)
		return
	}

	s.loadErr = err
	s.days = days
	s.summary = nil

	switch {
	case err != nil:
		s.status = StatusError
		log.Printf("Traffic dataset load failed: %v", err)
	case len(days) == 0:
		s.status = StatusEmpty
		log.Println("Traffic dataset loaded but contained no usable rows.")
	default:
		s.status = StatusReady
		log.Printf("Traffic dataset loaded: %d days.", len(days))
	}
}

// Status reports the current load state and record count.
func (s *TrafficStore) Status() StatusReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	report := StatusReport{Status: s.status, Records: len(s.days)}
	if s.loadErr != nil {
		report.Error = s.loadErr.Error()
	}
	return report
}

// Days returns the parsed traffic sequence. Callers must treat it as
// read-only.
func (s *TrafficStore) Days() []models.TrafficDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.days
}

// Summary returns the aggregated traffic statistics, computed at most once
// per load attempt.
func (s *TrafficStore) Summary() models.TrafficSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		summary := stats.SummarizeTraffic(s.days)
		s.summary = &summary
	}
	return *s.summary
}
