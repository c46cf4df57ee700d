// Package api exposes the optimization pipeline over HTTP.
//
// The server is a thin JSON layer: POST /v1/optimize accepts pipeline
// options, runs the full pipeline, and returns the result document.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rhosak/tomo-tsp/pkg/buildinfo"
	"github.com/rhosak/tomo-tsp/pkg/errors"
	"github.com/rhosak/tomo-tsp/pkg/pipeline"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

// Server handles HTTP requests for the optimization pipeline.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   pipeline.Options
}

// NewServer creates a Server around the given runner. The opts act as a
// template: request fields override them, but solver configuration always
// comes from the server side.
func NewServer(runner *pipeline.Runner, opts pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{runner: runner, logger: logger, opts: opts}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/v1/version", s.handleVersion)
	r.Post("/v1/optimize", s.handleOptimize)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// optimizeRequest is the JSON body for POST /v1/optimize. All fields are
// optional; missing ones fall back to the server's template options.
type optimizeRequest struct {
	Scheme  string `json:"scheme,omitempty"`
	Qubits  int    `json:"qubits,omitempty"`
	Scale   int    `json:"scale,omitempty"`
	Name    string `json:"name,omitempty"`
	Comment string `json:"comment,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	opts := s.opts
	if req.Scheme != "" {
		opts.Scheme = tomo.Scheme(req.Scheme)
	}
	if req.Qubits != 0 {
		opts.Qubits = req.Qubits
	}
	if req.Scale != 0 {
		opts.Scale = req.Scale
	}
	if req.Name != "" {
		opts.Name = req.Name
	}
	if req.Comment != "" {
		opts.Comment = req.Comment
	}
	opts.Refresh = req.Refresh
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		code := errors.GetCode(err)
		s.logger.Error("optimize request failed", "code", code, "error", err)
		s.writeError(w, statusForCode(code), errors.UserMessage(err))
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// statusForCode maps pipeline error codes to HTTP statuses.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidScheme, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeExternalTool:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
