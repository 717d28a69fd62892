package foodserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "foodadmin/foodserver"

// NewRouter wires the /foods routes with request ids, logging, panic
// recovery and permissive CORS for browser front ends.
func NewRouter(store *Store, logger log.FieldLogger) http.Handler {
	h := NewFoodHandler(store, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "traceparent", "tracestate"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Route("/foods", func(r chi.Router) {
		r.Get("/", h.ListFoods)
		r.Post("/", h.CreateFood)
		r.Get("/{id}", h.GetFood)
		r.Put("/{id}", h.UpdateFood)
		r.Delete("/{id}", h.DeleteFood)
	})
	return r
}

// requestLogger logs one line per request. The caller's trace context is
// extracted from the request headers and a server span wraps the handler, so
// log lines carry the client's trace_id.
func requestLogger(logger log.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
				oteltrace.WithSpanKind(oteltrace.SpanKindServer))
			defer span.End()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				span.SetName(r.Method + " " + rc.RoutePattern())
			}
			span.SetAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.Int("http.response.status_code", ww.Status()),
			)

			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  middleware.GetReqID(r.Context()),
			}
			if sc := span.SpanContext(); sc.HasTraceID() {
				fields["trace_id"] = sc.TraceID().String()
			}
			logger.WithFields(fields).Info("http request")
		})
	}
}
