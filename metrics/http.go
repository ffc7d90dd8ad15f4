package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kilianp07/crewsched/infra/logger"
)

const promShutdownTimeout = 5 * time.Second

// NewPromMux returns a mux serving the scrape endpoint for the analysis
// counters on /metrics. It is separate from the schedule API mux so the
// scrape port can stay internal.
func NewPromMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// StartPromServer serves the scrape endpoint on addr until ctx is canceled,
// then drains in-flight scrapes before returning.
func StartPromServer(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: NewPromMux()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), promShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.New("prom-server").Errorf("shutdown: %v", err)
		}
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
