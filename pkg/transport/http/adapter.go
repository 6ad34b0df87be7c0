// Package http serves the solve endpoint and the health endpoints over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"slices"
	"strings"

	"github.com/rhuss/mathsolver/pkg/api"
	"github.com/rhuss/mathsolver/pkg/debug"
	"github.com/rhuss/mathsolver/pkg/observability"
	"github.com/rhuss/mathsolver/pkg/transport"
)

// ReachableMessage is the body of GET /test.
const ReachableMessage = "Backend is reachable!"

// Adapter serves the mathsolver API over HTTP.
// It routes requests to the solver and serializes responses.
type Adapter struct {
	solver transport.QuestionSolver
	mux    *http.ServeMux
	config Config

	// methods lists the methods registered per path, for 405 answers.
	methods map[string][]string
}

// Config holds configuration for the HTTP adapter.
type Config struct {
	MaxBodySize int64
	CORSOrigins []string
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		MaxBodySize: 1 << 20, // 1 MiB
		CORSOrigins: []string{"*"},
	}
}

// NewAdapter creates an HTTP adapter for solver. Middleware is applied to
// the solver in the given order.
func NewAdapter(solver transport.QuestionSolver, cfg Config, middlewares ...transport.Middleware) *Adapter {
	if len(middlewares) > 0 {
		solver = transport.Chain(middlewares...)(solver)
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultConfig().MaxBodySize
	}

	a := &Adapter{
		solver:  solver,
		mux:     http.NewServeMux(),
		config:  cfg,
		methods: make(map[string][]string),
	}

	a.Handle("POST /api/solve", http.HandlerFunc(a.handleSolve))
	a.Handle("GET /test", http.HandlerFunc(handleReachable))
	a.Handle("GET /healthz", http.HandlerFunc(handleHealthz))
	a.mux.HandleFunc("/", a.handleUnmatched)

	return a
}

// Handle registers an additional handler, e.g. /metrics or /mcp.
func (a *Adapter) Handle(pattern string, h http.Handler) {
	if method, path, ok := strings.Cut(pattern, " "); ok {
		a.methods[path] = append(a.methods[path], method)
	}
	a.mux.Handle(pattern, h)
}

// handleUnmatched answers requests no route matched: 405 for a known path
// with another method, a JSON 404 otherwise.
func (a *Adapter) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	if methods, ok := a.methods[r.URL.Path]; ok {
		allowed := slices.Clone(methods)
		if slices.Contains(allowed, http.MethodGet) {
			allowed = append(allowed, http.MethodHead)
		}
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	transport.WriteError(w, api.NewNotFoundError("Unknown path "+r.URL.Path))
}

// Handler returns the http.Handler for this adapter, including CORS and
// request ID propagation.
func (a *Adapter) Handler() http.Handler {
	return CORS(a.config.CORSOrigins)(httpRequestIDMiddleware(a.mux))
}

// httpRequestIDMiddleware takes the request ID from the X-Request-ID header
// or generates one, stores it in the request context and echoes it in the
// response header.
func httpRequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(transport.RequestIDHeader)
		if id == "" {
			id = transport.NewRequestID()
		}
		w.Header().Set(transport.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(transport.ContextWithRequestID(r.Context(), id)))
	})
}

// handleSolve handles POST /api/solve.
func (a *Adapter) handleSolve(w http.ResponseWriter, r *http.Request) {
	// A body that is not declared as JSON is never parsed.
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			debug.Log("transport", "non-JSON solve body",
				"request_id", transport.RequestIDFromContext(r.Context()), "content_type", ct)
			reject(w, api.NewNoQuestionError())
			return
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxBodySize)

	var req api.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			reject(w, api.NewPayloadTooLargeError(a.config.MaxBodySize))
			return
		}
		// Missing body (io.EOF) and malformed JSON look the same to clients.
		if !errors.Is(err, io.EOF) {
			debug.Log("transport", "invalid solve body",
				"request_id", transport.RequestIDFromContext(r.Context()), "error", err)
		}
		reject(w, api.NewNoQuestionError())
		return
	}

	if apiErr := api.ValidateSolveRequest(&req); apiErr != nil {
		reject(w, apiErr)
		return
	}

	resp, err := a.solver.SolveQuestion(r.Context(), &req)
	if err != nil {
		transport.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// reject writes a client error for a request that never reached the solver.
func reject(w http.ResponseWriter, apiErr *api.APIError) {
	observability.SolveOutcomesTotal.WithLabelValues(observability.OutcomeRejected).Inc()
	transport.WriteError(w, apiErr)
}

// handleReachable handles GET /test.
func handleReachable(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, ReachableMessage)
}

// handleHealthz handles GET /healthz.
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}
