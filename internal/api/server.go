// Package api exposes the command pipeline over a loopback HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pbaille/addressjournal/internal/domain"
	"github.com/pbaille/addressjournal/internal/logic"
)

// Server handles HTTP requests against one pipeline
type Server struct {
	logic  *logic.Logic
	addr   string
	logger *zap.Logger
}

// New creates a new API server
func New(l *logic.Logic, addr string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{logic: l, addr: addr, logger: logger}
}

// Handler builds the router. Run serves it; tests call it directly.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/commands", s.runCommand)
	r.Get("/contacts", s.listContacts)
	r.Get("/journal", s.listJournal)

	// Health check
	r.Get("/health", s.health)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.logger.Info("starting server", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return eg.Wait()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CommandRequest is the request body for running a command line
type CommandRequest struct {
	Line string `json:"line"`
}

// CommandResponse reports a successful command
type CommandResponse struct {
	Feedback string `json:"feedback"`
	ShowHelp bool   `json:"show_help,omitempty"`
	Exit     bool   `json:"exit,omitempty"`
}

func (s *Server) runCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "request")
		return
	}

	if strings.TrimSpace(req.Line) == "" {
		writeError(w, http.StatusBadRequest, "line is required", "request")
		return
	}

	res, err := s.logic.Execute(req.Line)
	if err != nil {
		kind := logic.ErrorKind(err)
		status := http.StatusBadRequest
		if kind == "internal" {
			status = http.StatusInternalServerError
		}
		writeError(w, status, err.Error(), kind)
		return
	}

	writeJSON(w, http.StatusOK, CommandResponse{Feedback: res.Feedback, ShowHelp: res.ShowHelp, Exit: res.Exit})
}

// Contact is the JSON view of a person
type Contact struct {
	Index   int      `json:"index"`
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Address string   `json:"address,omitempty"`
	Tags    []string `json:"tags"`
}

// Entry is the JSON view of a journal entry
type Entry struct {
	Index       int      `json:"index"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description *string  `json:"description"`
	Contacts    []string `json:"contacts"`
	Tags        []string `json:"tags"`
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	persons := s.logic.Model().VisibleContacts()
	contacts := make([]Contact, len(persons))
	for i, p := range persons {
		contacts[i] = Contact{
			Index:   i + 1,
			ID:      p.ID.String(),
			Name:    p.Name.String(),
			Phone:   p.Phone.String(),
			Email:   p.Email.String(),
			Address: p.Address.String(),
			Tags:    p.Tags.Names(),
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contacts": contacts,
	})
}

func (s *Server) listJournal(w http.ResponseWriter, r *http.Request) {
	visible := s.logic.Model().VisibleEntries()
	entries := make([]Entry, len(visible))
	for i, e := range visible {
		entries[i] = entryView(i+1, e)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}

func entryView(index int, e domain.JournalEntry) Entry {
	view := Entry{
		Index:    index,
		ID:       e.ID.String(),
		Title:    e.Title.String(),
		Date:     e.Date.String(),
		Contacts: e.ContactNames(),
		Tags:     e.Tags.Names(),
	}
	if d, ok := e.Description.Value(); ok {
		view.Description = &d
	}
	return view
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, kind string) {
	writeJSON(w, status, map[string]string{"error": message, "kind": kind})
}
