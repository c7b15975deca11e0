// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"drawboard/api/dataset"
	"drawboard/api/handlers"
	"drawboard/api/middleware"
	"drawboard/api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize Stores ---
	drawStore := store.NewDrawStore(dataset.NewDrawSource())
	trafficStore := store.NewTrafficStore(dataset.NewTrafficSource())

	// One-shot initial load per dataset. Results apply asynchronously; the
	// API serves "loading" until they land.
	go drawStore.Load(context.Background())
	go trafficStore.Load(context.Background())

	// --- Initialize Handlers ---
	datasetHandlers := handlers.NewDatasetHandlers(drawStore, trafficStore)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/", datasetHandlers.Dashboard)

	api := r.Group("/api")
	{
		api.GET("/status", datasetHandlers.GetStatus)

		draws := api.Group("/draws")
		{
			draws.GET("", datasetHandlers.GetDraws)
			draws.GET("/summary", datasetHandlers.GetDrawSummary)
			draws.POST("/pick", datasetHandlers.CheckPick)
			draws.GET("/pick/clamp", datasetHandlers.ClampBall)
		}

		traffic := api.Group("/traffic")
		{
			traffic.GET("", datasetHandlers.GetTraffic)
			traffic.GET("/summary", datasetHandlers.GetTrafficSummary)
		}

		// Admin endpoints require a valid API key.
		admin := api.Group("/admin")
		admin.Use(middleware.APIKeyRequired())
		{
			admin.POST("/reload", datasetHandlers.ReloadDatasets)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Drawboard API server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Drawboard API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
