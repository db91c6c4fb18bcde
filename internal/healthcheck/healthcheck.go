package healthcheck

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MyelinBots/tagbot-go/config"
)

// StartHealthcheck serves the liveness endpoint and shuts the server down
// when ctx is cancelled.
func StartHealthcheck(ctx context.Context, cfg config.AppConfig) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: HealthCheckHandler(cfg),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("healthcheck server error: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()
}

func HealthCheckHandler(cfg config.AppConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "%s %s OK", cfg.APPName, cfg.Version)
	}
}
