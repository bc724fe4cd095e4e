package httpapi

import (
	"net/http"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	// Metrics serves /metrics when set.
	Metrics  http.Handler
	Observer RequestObserver
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.Metrics)
	registerPhysicalRoutes(mux, handler)
	registerMicrocycleRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)

	return RequestTracing(RequestID(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, RequestMetrics(cfg.Observer, recoverPanic(logger, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
