// Package server exposes the resolver over a JSON HTTP API. The core
// never sees a request or response object; this package owns all
// transport concerns.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/emails"
	"github.com/mikey/referral-contacts/internal/utils"
)

type lookupRequest struct {
	Company  string `json:"company"`
	JobTitle string `json:"jobTitle"`
	Limit    int    `json:"limit"`
}

type lookupResponse struct {
	Success bool             `json:"success"`
	Results *core.ContactSet `json:"results"`
	Source  core.Source      `json:"source"`
}

type guessRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

type guessResponse struct {
	Success bool     `json:"success"`
	Emails  []string `json:"emails"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HTTPServer serves the contact-resolution API
type HTTPServer struct {
	resolver *core.ResolverService
	finder   *emails.Finder
	names    *utils.NameProcessor
	logger   *zap.Logger
	server   *http.Server
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(
	resolver *core.ResolverService,
	finder *emails.Finder,
	names *utils.NameProcessor,
	logger *zap.Logger,
	listenAddr string,
	readTimeout, writeTimeout time.Duration,
) *HTTPServer {
	s := &HTTPServer{
		resolver: resolver,
		finder:   finder,
		names:    names,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/contacts/lookup", s.handleLookup)
	mux.HandleFunc("POST /api/emails/guess", s.handleGuess)

	s.server = &http.Server{
		Addr:         listenAddr,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	return s
}

// Start starts serving requests
func (s *HTTPServer) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop shuts the server down gracefully and drains pending cache writes
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.resolver.WaitForPersist()
	return nil
}

func (s *HTTPServer) handleLookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	resolution, err := s.resolver.ResolveContacts(r.Context(), req.Company, req.JobTitle, req.Limit)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCompany) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Invalid request data",
				Details: err.Error(),
			})
			return
		}
		s.logger.Error("Unhandled error in contact lookup", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Success: true,
		Results: resolution.Results,
		Source:  resolution.Source,
	})
}

func (s *HTTPServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}
	if req.Name == "" || req.Company == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request data",
			Details: "name and company are required",
		})
		return
	}

	first, last := s.names.Split(req.Name)
	candidates := s.finder.PossibleEmails(r.Context(), first, last, req.Company)

	writeJSON(w, http.StatusOK, guessResponse{
		Success: true,
		Emails:  candidates,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
