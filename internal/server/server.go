// Package server exposes the evaluation pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zchutly/rights-finder/internal/filtering"
	"github.com/zchutly/rights-finder/internal/matching"
	"github.com/zchutly/rights-finder/internal/questionnaire"
	"github.com/zchutly/rights-finder/internal/rights"
	"github.com/zchutly/rights-finder/internal/validation"
)

// Server evaluates profiles against a fixed catalog snapshot. The catalog is
// loaded once at startup; swapping it means restarting the process.
type Server struct {
	catalog   *rights.Rights
	cfg       *matching.Config
	validator *validation.Validator
	logger    *zap.Logger

	http *http.Server
}

// New assembles a server around the given catalog snapshot.
func New(addr string, catalog *rights.Rights, cfg *matching.Config, rules validation.Rules, logger *zap.Logger) *Server {
	s := &Server{
		catalog:   catalog,
		cfg:       cfg,
		validator: validation.New(rules),
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/evaluate", s.handleEvaluate)
	r.Post("/api/questions", s.handleQuestions)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the context is canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	s.logger.Info("http server started", zap.String("addr", s.http.Addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"catalog_count": s.catalog.Len(),
	})
}

type evaluateRequest struct {
	Profile rights.Profile `json:"profile"`
}

type evaluateResponse struct {
	Matches []*rights.Match    `json:"matches"`
	Report  *validation.Report `json:"report"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Profile) == 0 {
		writeError(w, http.StatusBadRequest, "profile is required")
		return
	}

	profile := questionnaire.Normalize(req.Profile)

	deps := filtering.Deps{
		Logger:  s.logger,
		Profile: profile,
	}

	matches, err := filtering.Run(r.Context(), s.cfg, deps, filtering.DefaultSteps(), rights.NewMatches(s.catalog))
	if err != nil {
		s.logger.Error("evaluation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	report := s.validator.BuildReport(matches, profile)

	writeJSON(w, http.StatusOK, evaluateResponse{
		Matches: matches.Items,
		Report:  report,
	})
}

type questionsRequest struct {
	Profile rights.Profile `json:"profile"`
}

type questionsResponse struct {
	Questions  []questionnaire.Question `json:"questions"`
	Completion float64                  `json:"completion"`
	Done       bool                     `json:"done"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Profile == nil {
		req.Profile = rights.Profile{}
	}

	profile := questionnaire.Normalize(req.Profile)
	questions := questionnaire.NextQuestions(profile)

	writeJSON(w, http.StatusOK, questionsResponse{
		Questions:  questions,
		Completion: questionnaire.Completion(profile),
		Done:       len(questions) == 0,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
