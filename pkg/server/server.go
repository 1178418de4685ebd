// Package server exposes the converter over HTTP: POST a Venmo statement,
// get the Quicken CSV back as an attachment.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/venmoq/venmoq/pkg/config"
	"github.com/venmoq/venmoq/pkg/parser"
	"github.com/venmoq/venmoq/pkg/quicken"
)

// Server handles HTTP requests for statement conversion.
type Server struct {
	config *config.Config
	logger *log.Logger
	mux    *http.ServeMux
	parser *parser.Parser
	routed bool
}

// New creates a new HTTP server.
func New(cfg *config.Config, logger *log.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		mux:    http.NewServeMux(),
		parser: parser.New(logger, cfg.Account, cfg.DateFormat),
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

// Handler returns the configured mux, for tests.
func (s *Server) Handler() http.Handler {
	s.setupRoutes()
	return s.mux
}

func (s *Server) setupRoutes() {
	if s.routed {
		return
	}
	s.routed = true
	s.mux.HandleFunc("/healthz", s.withLogging(s.handleHealth))
	s.mux.HandleFunc("/api/convert", s.withLogging(s.handleConvert))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "statement file required", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	result, err := s.parser.Parse(data)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to convert statement", err)
		return
	}

	var buf bytes.Buffer
	if err := quicken.Write(&buf, result.Transactions); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to encode csv", err)
		return
	}

	filename := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)) + "_for_Quicken.csv"
	s.logger.Info("converted statement", "file", header.Filename,
		"transactions", result.Written(), "balance_lines_skipped", result.BalancesSkipped)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Venmoq-Transactions", strconv.Itoa(result.Written()))
	w.Header().Set("X-Venmoq-Balances-Skipped", strconv.Itoa(result.BalancesSkipped))
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("failed to write csv response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log requests and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
