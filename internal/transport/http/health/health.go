package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/fieldservice/platform/logger"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency. A nil error means it is serving.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type handler struct {
	checks []Check
}

func NewHandler(checks ...Check) *handler {
	return &handler{checks: checks}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for _, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			logger.Warn(ctx, "health check failed", logger.String("dependency", c.Name), logger.ErrorF(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			write(r.Context(), w, "NOT_SERVING: "+c.Name)
			return
		}
	}

	write(r.Context(), w, "SERVING")
}

func write(ctx context.Context, w http.ResponseWriter, body string) {
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error(ctx, "health check", logger.ErrorF(err))
	}
}
