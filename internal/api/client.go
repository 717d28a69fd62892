// Package api is the HTTP client for the remote /foods resource.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodadmin/internal/food"
	"foodadmin/internal/jsonutil"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// RequestIDHeader is sent with every request so server logs can be matched
// to client logs.
const RequestIDHeader = "X-Request-ID"

// Service is the remote food collection the dashboard talks to.
type Service interface {
	List(ctx context.Context) ([]food.Food, error)
	Create(ctx context.Context, d food.Draft) (food.Food, error)
	Update(ctx context.Context, id int, f food.Food) (food.Food, error)
	Delete(ctx context.Context, id int) error
}

// Client implements Service over HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  oteltrace.Tracer
	log     log.FieldLogger

	timeout *time.Duration // applied to a copy of http once all options ran
}

// Ensure Client implements Service.
var _ Service = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a per-request timeout. Zero means no timeout. The
// http.Client passed to WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = &d }
}

// WithTracer sets the tracer used for client spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l log.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the API rooted at baseURL (e.g. http://localhost:3333).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tracer:  otel.Tracer("foodadmin/api"),
		log:     log.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout != nil {
		hc := *c.http
		hc.Timeout = *c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the whole collection (GET /foods).
func (c *Client) List(ctx context.Context) ([]food.Food, error) {
	var foods []food.Food
	if err := c.do(ctx, http.MethodGet, "/foods", "/foods", nil, &foods); err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []food.Food{}
	}
	return foods, nil
}

// Create posts a new record (POST /foods) and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, d food.Draft) (food.Food, error) {
	var created food.Food
	if err := c.do(ctx, http.MethodPost, "/foods", "/foods", d, &created); err != nil {
		return food.Food{}, err
	}
	return created, nil
}

// Update replaces the record at id (PUT /foods/{id}) and returns the server's copy.
func (c *Client) Update(ctx context.Context, id int, f food.Food) (food.Food, error) {
	var updated food.Food
	if err := c.do(ctx, http.MethodPut, foodPath(id), "/foods/{id}", f, &updated); err != nil {
		return food.Food{}, err
	}
	return updated, nil
}

// Delete removes the record at id (DELETE /foods/{id}).
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, foodPath(id), "/foods/{id}", nil, nil)
}

func foodPath(id int) string {
	return "/foods/" + strconv.Itoa(id)
}

// do sends one JSON request. route is the templated path used as span name.
// A non-2xx status becomes a *StatusError; out is decoded only on success.
func (c *Client) do(ctx context.Context, method, path, route string, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, method+" "+route,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", c.baseURL+path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reqBody io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	entry := c.log.WithFields(log.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Debug("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	entry.WithFields(log.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return jsonutil.DecodeWithContext(resp.Body, out, fmt.Sprintf("%s %s: decode response", method, path))
}
