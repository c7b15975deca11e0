// api/handlers/dataset_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"drawboard/api/models"
	"drawboard/api/stats"
	"drawboard/api/store"
)

type DatasetHandlers struct {
	Draws   *store.DrawStore
	Traffic *store.TrafficStore
}

func NewDatasetHandlers(draws *store.DrawStore, traffic *store.TrafficStore) *DatasetHandlers {
	return &DatasetHandlers{
		Draws:   draws,
		Traffic: traffic,
	}
}

// GetStatus reports the load state of both datasets.
func (h *DatasetHandlers) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"draws":   h.Draws.Status(),
		"traffic": h.Traffic.Status(),
	})
}

// statusCode maps a dataset load state onto an HTTP status for endpoints
// that serve derived data. "empty" is a successful load, so it stays 200.
func statusCode(status store.LoadStatus) int {
	switch status {
	case store.StatusLoading:
		return http.StatusServiceUnavailable
	case store.StatusError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// GetDraws returns the parsed draw sequence.
func (h *DatasetHandlers) GetDraws(c *gin.Context) {
	report := h.Draws.Status()
	if code := statusCode(report.Status); code != http.StatusOK {
		c.JSON(code, gin.H{"status": report.Status, "error": report.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": report.Status, "draws": h.Draws.Draws()})
}

// GetDrawSummary returns the aggregated draw statistics.
func (h *DatasetHandlers) GetDrawSummary(c *gin.Context) {
	report := h.Draws.Status()
	if code := statusCode(report.Status); code != http.StatusOK {
		c.JSON(code, gin.H{"status": report.Status, "error": report.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": report.Status, "summary": h.Draws.Summary()})
}

// GetTraffic returns the parsed traffic sequence.
func (h *DatasetHandlers) GetTraffic(c *gin.Context) {
	report := h.Traffic.Status()
	if code := statusCode(report.Status); code != http.StatusOK {
		c.JSON(code, gin.H{"status": report.Status, "error": report.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": report.Status, "days": h.Traffic.Days()})
}

// GetTrafficSummary returns the aggregated traffic statistics.
func (h *DatasetHandlers) GetTrafficSummary(c *gin.Context) {
	report := h.Traffic.Status()
	if code := statusCode(report.Status); code != http.StatusOK {
		c.JSON(code, gin.H{"status": report.Status, "error": report.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": report.Status, "summary": h.Traffic.Summary()})
}

// CheckPick evaluates a user pick against the draw history. Validation
// failures are informational, never an HTTP error: the analysis carries a
// single human-readable reason.
func (h *DatasetHandlers) CheckPick(c *gin.Context) {
	var req models.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding pick request JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.MainNumbers) != 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mainNumbers must contain exactly 5 entries"})
		return
	}

	report := h.Draws.Status()
	if report.Status == store.StatusLoading || report.Status == store.StatusError {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": report.Status, "error": "draw history is not available"})
		return
	}

	c.JSON(http.StatusOK, h.Draws.CheckPick(req.MainNumbers, req.Powerball))
}

// ClampBall sanitizes one ball input field, mirroring the per-keystroke
// clamping the dashboard applies client-side.
func (h *DatasetHandlers) ClampBall(c *gin.Context) {
	value := c.Query("value")

	max := stats.MaxMainBall
	if maxParam := c.Query("max"); maxParam != "" {
		parsed, err := strconv.Atoi(maxParam)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'max' parameter. Must be a positive integer."})
			return
		}
		max = parsed
	}

	c.JSON(http.StatusOK, gin.H{"value": stats.ClampBall(value, max)})
}

// ReloadDatasets kicks off a fresh load of both datasets. The loads run in
// the background; a late result from a superseded attempt is discarded by
// the stores.
func (h *DatasetHandlers) ReloadDatasets(c *gin.Context) {
	log.Println("Admin reload requested; starting dataset loads.")
	go h.Draws.Load(context.Background())
	go h.Traffic.Load(context.Background())
	c.JSON(http.StatusAccepted, gin.H{"message": "Reload started"})
}
