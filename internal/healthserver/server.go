// Package healthserver exposes the orchestrator's liveness/readiness
// endpoint. It is deliberately tiny: the core's real surface is the CLI
// and the database; HTTP exists only so a supervisor can probe the
// process.
package healthserver

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sirmick/alfrd/internal/config"
	"github.com/sirmick/alfrd/internal/database"
)

// New builds the gin router with the /health endpoint.
func New(db *sql.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	stats := cfg.Stats()
	router.GET("/health", func(c *gin.Context) {
		reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(reqCtx, db)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": dbHealth,
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": dbHealth,
			"workers": gin.H{
				"textract": stats.TextractWorkers,
				"bedrock":  stats.BedrockWorkers,
				"file":     stats.FileWorkers,
			},
		})
	})
	return router
}

// Serve runs the router on addr until ctx is cancelled, then shuts the
// listener down gracefully.
func Serve(ctx context.Context, router *gin.Engine, addr string) error {
	srv := &http.Server{Addr: addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("health server shutdown failed", "error", err)
		}
		return nil
	}
}
