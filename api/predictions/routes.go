package predictions

import (
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/kilianp07/hostelmeal/core/metrics"
	"github.com/kilianp07/hostelmeal/core/monitoring"
	"github.com/kilianp07/hostelmeal/core/prediction"
	"github.com/kilianp07/hostelmeal/infra/logger"
)

// Options configures the API router.
type Options struct {
	AllowedOrigins []string
	Sink           metrics.MetricsSink
	Monitor        monitoring.Monitor
	Log            logger.Logger
}

// NewRouter mounts every prediction endpoint and wraps them with panic
// recovery, latency recording and CORS handling.
func NewRouter(svc *prediction.Service, o Options) http.Handler {
	if o.Monitor == nil {
		o.Monitor = monitoring.NopMonitor{}
	}
	if o.Log == nil {
		o.Log = logger.New("api")
	}
	mux := http.NewServeMux()
	mux.Handle("POST /api/predictions", NewPredictHandler(svc, o.Log))
	mux.Handle("GET /api/predictions/chart", NewChartHandler(svc))
	mux.Handle("GET /api/meal-types", NewMealTypesHandler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	var h http.Handler = mux
	h = withRecovery(h, o.Monitor, o.Log)
	h = withLatency(h, mux, o.Sink, o.Log)
	h = withCORS(h, o.AllowedOrigins)
	return h
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withLatency(next http.Handler, mux *http.ServeMux, sink metrics.MetricsSink, log logger.Logger) http.Handler {
	rec, ok := sink.(metrics.LatencyRecorder)
	if !ok {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		_, route := mux.Handler(r)
		if route == "" {
			route = "unmatched"
		}
		l := metrics.RequestLatency{Route: route, Status: sr.status, Duration: time.Since(start)}
		if err := rec.RecordRequestLatency(l); err != nil {
			log.Warnf("record latency: %v", err)
		}
	})
}

func withRecovery(next http.Handler, mon monitoring.Monitor, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				log.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, v)
				mon.CapturePanic(v, map[string]string{"method": r.Method, "path": r.URL.Path})
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func withCORS(next http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return next
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(next)
}
