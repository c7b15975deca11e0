// api/dataset/source.go
package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// CSVSource locates one bundled CSV dataset, either behind an HTTP(S) URL
// or on the local filesystem. The location is fixed at startup; Fetch makes
// exactly one attempt per call with no retry and no client-side timeout —
// failure surfaces only through the transport error or a non-2xx status.
type CSVSource struct {
	Name string
	URL  string
	Path string

	httpClient *http.Client
}

// NewCSVSource builds a source from an explicit URL and/or path. When both
// are set the URL wins, matching how the deployed dashboard fetches the
// bundled asset.
func NewCSVSource(name, url, path string) *CSVSource {
	return &CSVSource{
		Name:       name,
		URL:        url,
		Path:       path,
		httpClient: &http.Client{},
	}
}

// NewDrawSource builds the Powerball history source from DRAWS_CSV_URL /
// DRAWS_CSV_PATH, defaulting to the bundled file for local development.
func NewDrawSource() *CSVSource {
	url := os.Getenv("DRAWS_CSV_URL")
	path := os.Getenv("DRAWS_CSV_PATH")
	if url == "" && path == "" {
		log.Println("DRAWS_CSV_URL/DRAWS_CSV_PATH not set. Using bundled data/powerball.csv.")
		path = "data/powerball.csv"
	}
	return NewCSVSource("draws", url, path)
}

// NewTrafficSource builds the portal-traffic source from TRAFFIC_CSV_URL /
// TRAFFIC_CSV_PATH, defaulting to the bundled file for local development.
func NewTrafficSource() *CSVSource {
	url := os.Getenv("TRAFFIC_CSV_URL")
	path := os.Getenv("TRAFFIC_CSV_PATH")
	if url == "" && path == "" {
		log.Println("TRAFFIC_CSV_URL/TRAFFIC_CSV_PATH not set. Using bundled data/portal_traffic.csv.")
		path = "data/portal_traffic.csv"
	}
	return NewCSVSource("traffic", url, path)
}

// Fetch retrieves the raw CSV text.
func (s *CSVSource) Fetch(ctx context.Context) (string, error) {
	if s.URL != "" {
		return s.fetchHTTP(ctx)
	}
	if s.Path != "" {
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s CSV from %s: %w", s.Name, s.Path, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no CSV source configured for %s", s.Name)
}

func (s *CSVSource) fetchHTTP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build %s CSV request: %w", s.Name, err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s CSV: %w", s.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d fetching %s CSV", resp.StatusCode, s.Name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s CSV response: %w", s.Name, err)
	}
	return string(body), nil
}
