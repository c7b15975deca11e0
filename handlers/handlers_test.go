package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawboard/api/dataset"
	"drawboard/api/middleware"
	"drawboard/api/models"
	"drawboard/api/store"
)

const drawsCSV = `"Draw Date","Winning Numbers","Multiplier"
"2025-02-01","07 11 19 27 53 10","2"
"2025-01-29","05 08 19 34 39 26","3"
`

const trafficCSV = `Date,Socrata Users,Socrata Sessions,Socrata Pageviews,GeoHub Users,GeoHub Sessions,GeoHub Pageviews,Combined Users
01/02/2025,1204,1680,4105,560,702,1511,1764
`

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full route table against stores loaded from the
// given CSV fixtures. Empty fixture text leaves that store unloaded.
func newTestRouter(t *testing.T, drawsText, trafficText string) (*gin.Engine, *store.DrawStore, *store.TrafficStore) {
	t.Helper()

	dir := t.TempDir()
	writeSource := func(name, text string) *dataset.CSVSource {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
		return dataset.NewCSVSource(name, "", path)
	}

	drawStore := store.NewDrawStore(writeSource("draws.csv", drawsText))
	trafficStore := store.NewTrafficStore(writeSource("traffic.csv", trafficText))
	if drawsText != "" {
		drawStore.Load(context.Background())
	}
	if trafficText != "" {
		trafficStore.Load(context.Background())
	}

	h := NewDatasetHandlers(drawStore, trafficStore)

	r := gin.New()
	r.GET("/", h.Dashboard)
	api := r.Group("/api")
	api.GET("/status", h.GetStatus)
	api.GET("/draws", h.GetDraws)
	api.GET("/draws/summary", h.GetDrawSummary)
	api.POST("/draws/pick", h.CheckPick)
	api.GET("/draws/pick/clamp", h.ClampBall)
	api.GET("/traffic", h.GetTraffic)
	api.GET("/traffic/summary", h.GetTrafficSummary)
	admin := api.Group("/admin")
	admin.Use(middleware.APIKeyRequired())
	admin.POST("/reload", h.ReloadDatasets)

	return r, drawStore, trafficStore
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetStatus(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodGet, "/api/status", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]store.StatusReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, store.StatusReady, body["draws"].Status)
	assert.Equal(t, 2, body["draws"].Records)
	assert.Equal(t, store.StatusReady, body["traffic"].Status)
}

func TestGetDrawSummary_WhileLoading(t *testing.T) {
	r, _, _ := newTestRouter(t, "", trafficCSV)

	w := doRequest(r, http.MethodGet, "/api/draws/summary", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "loading")
}

func TestGetDrawSummary_Ready(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodGet, "/api/draws/summary", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status  store.LoadStatus   `json:"status"`
		Summary models.DrawSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, store.StatusReady, body.Status)
	assert.Equal(t, 2, body.Summary.TotalDraws)
	require.NotNil(t, body.Summary.YearRange)
	assert.Equal(t, "2025–2025", *body.Summary.YearRange)
}

func TestGetTrafficSummary_Ready(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodGet, "/api/traffic/summary", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Summary models.TrafficSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Summary.TotalDays)
	require.NotNil(t, body.Summary.PeakDay)
	assert.Equal(t, 1764, body.Summary.PeakDay.CombinedUsers)
	assert.Equal(t, 1204, body.Summary.TotalSocrata)
	assert.Equal(t, 560, body.Summary.TotalGeohub)
	assert.Equal(t, 1764, body.Summary.TotalCombined)
}

func TestCheckPick_Jackpot(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodPost, "/api/draws/pick",
		`{"mainNumbers":["07","11","19","27","53"],"powerball":"10"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.PickAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.True(t, analysis.Ready)
	assert.NotEmpty(t, analysis.JackpotHits)
}

func TestCheckPick_InvalidPickIsNotAnHTTPError(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodPost, "/api/draws/pick",
		`{"mainNumbers":["07","07","19","27","53"],"powerball":"10"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.PickAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.False(t, analysis.Ready)
	assert.True(t, analysis.HasDuplicates)
	assert.NotEmpty(t, analysis.Reason)
}

func TestCheckPick_BadRequests(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodPost, "/api/draws/pick", `{"powerball":"10"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/draws/pick",
		`{"mainNumbers":["07","11"],"powerball":"10"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckPick_UnavailableWhileLoading(t *testing.T) {
	r, _, _ := newTestRouter(t, "", trafficCSV)

	w := doRequest(r, http.MethodPost, "/api/draws/pick",
		`{"mainNumbers":["07","11","19","27","53"],"powerball":"10"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestClampBall(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodGet, "/api/draws/pick/clamp?value=70", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"value":"69"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/draws/pick/clamp?value=30&max=26", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"value":"26"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/draws/pick/clamp?value=30&max=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReload_RequiresAPIKey(t *testing.T) {
	t.Setenv("AUTH_DEFAULT", "secret-key")
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodPost, "/api/admin/reload", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/admin/reload", "",
		map[string]string{"X-API-KEY": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/admin/reload", "",
		map[string]string{"X-API-KEY": "secret-key"})
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestReload_ClosedWithoutConfiguredKey(t *testing.T) {
	t.Setenv("AUTH_DEFAULT", "")
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodPost, "/api/admin/reload", "",
		map[string]string{"X-API-KEY": ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboard(t *testing.T) {
	r, _, _ := newTestRouter(t, drawsCSV, trafficCSV)

	w := doRequest(r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Drawboard")
	assert.Contains(t, w.Body.String(), "/api/draws/pick")
}
