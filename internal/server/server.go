// Package server exposes the coaching core over a JSON API: the dashboard
// creates a session, triggers pipeline runs, and renders the returned state
// and activity feed.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"SmartSaver/internal/agent"
	"SmartSaver/internal/model"
	"SmartSaver/internal/pipeline"
	"SmartSaver/internal/session"
	"SmartSaver/internal/store"
)

// Server wires the session manager, agent registry and transaction store
// behind HTTP handlers.
type Server struct {
	Sessions *session.Manager
	Registry *agent.Registry
	Store    store.Store
	SeedDays int
}

// New creates a Server.
func New(sm *session.Manager, reg *agent.Registry, st store.Store, seedDays int) *Server {
	if seedDays <= 0 {
		seedDays = 90
	}
	return &Server{Sessions: sm, Registry: reg, Store: st, SeedDays: seedDays}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/agents", s.handleAgents)
	r.Post("/api/sessions", s.handleCreateSession)
	r.Get("/api/sessions/{id}", s.handleGetState)
	r.Post("/api/sessions/{id}/run", s.handleRun)
	r.Post("/api/sessions/{id}/reset", s.handleReset)
	r.Get("/api/transactions", s.handleTransactions)
	r.Post("/api/seed", s.handleSeed)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"agents":        s.Registry.Names(),
		"default_order": agent.DefaultOrder,
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := s.Sessions.Create()
	snap, err := s.Sessions.Snapshot(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "state": snap})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.Sessions.Snapshot(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "state": snap})
}

type runRequest struct {
	Agents []string `json:"agents"`
}

type runResponse struct {
	Messages []model.Message `json:"messages"`
	Warnings []string        `json:"warnings"`
	State    map[string]any  `json:"state"`
}

// handleRun executes the pipeline once for the session. An absent or empty
// agent list means the full default order.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req runRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}
	names := req.Agents
	if len(names) == 0 {
		names = agent.DefaultOrder
	}

	resp := runResponse{Warnings: []string{}}
	err := s.Sessions.WithState(id, func(state *model.UserState) *model.UserState {
		next, messages, warnings := pipeline.RunNames(s.Registry, names, state)
		resp.Messages = messages
		resp.Warnings = append(resp.Warnings, warnings...)
		resp.State = next.Snapshot()
		return next
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.Sessions.Reset(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "state": snap})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		userID = "demo"
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	txns, err := s.Store.RecentTransactions(userID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if txns == nil {
		txns = []model.Transaction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txns})
}

type seedRequest struct {
	UserID string `json:"user_id"`
	Days   int    `json:"days"`
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	req := seedRequest{UserID: "demo", Days: s.SeedDays}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}
	if req.UserID == "" {
		req.UserID = "demo"
	}
	if req.Days <= 0 {
		req.Days = s.SeedDays
	}

	inserted, err := store.Seed(s.Store, req.UserID, req.Days, 42)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"inserted": inserted})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
