// Package chi exposes the card search API over HTTP. Responses use a
// tagged-union envelope ("type" discriminates CardList / Card / Error)
// so frontends can switch on one field.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/veilbound/cardex/internal/domain"
	"github.com/veilbound/cardex/internal/domain/card"
	"github.com/veilbound/cardex/internal/metrics"
	healthuc "github.com/veilbound/cardex/internal/usecase/health"
	searchuc "github.com/veilbound/cardex/internal/usecase/search"
)

// CardSource provides the point-in-time collection view a request is
// served against.
type CardSource interface {
	Snapshot() *card.Collection
}

// Server holds the HTTP handlers.
type Server struct {
	search *searchuc.Service
	cards  CardSource
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, cards CardSource, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, cards: cards, health: health, logger: logger}
}

// Mount registers the API routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Get("/api/search", s.SearchCards)
	r.Get("/api/card", s.ViewCard)
	r.Get("/health", s.HealthCheck)
}

// Response envelope variants.
type cardListResponse struct {
	Type    string       `json:"type"`
	Query   string       `json:"query"`
	Content []*card.Card `json:"content"`
}

type cardResponse struct {
	Type    string     `json:"type"`
	Content *card.Card `json:"content"`
}

type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SearchCards handles GET /api/search?query=…
//
// A query that fails to parse is answered with the Error variant and
// status 200: for the frontend a bad query is a normal outcome, not a
// transport failure, and there is no fallback to whole-text fuzzy
// search. The echoed "query" field is the canonical rendering of the
// parsed query, not the raw input.
func (s *Server) SearchCards(w http.ResponseWriter, r *http.Request) {
	queryText := r.URL.Query().Get("query")

	results, err := s.search.Search(r.Context(), queryText, s.cards.Snapshot())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("parse_error").Inc()
		writeJSON(w, http.StatusOK, errorResponse{
			Type:    "Error",
			Message: "query could not be parsed: " + err.Error(),
		})
		return
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchResults.Observe(float64(len(results.Cards)))

	content := results.Cards
	if content == nil {
		content = []*card.Card{}
	}
	writeJSON(w, http.StatusOK, cardListResponse{
		Type:    "CardList",
		Query:   results.Query,
		Content: content,
	})
}

// ViewCard handles GET /api/card?id=…
// A missing id is a 404 with the Error variant, never a fault.
func (s *Server) ViewCard(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Type:    "Error",
			Message: "id parameter is required",
		})
		return
	}

	found, ok := s.search.Lookup(id, s.cards.Snapshot())
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Type:    "Error",
			Message: domain.ErrCardNotFound.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, cardResponse{Type: "Card", Content: found})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check()

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"cards":  report.Cards,
		"checks": report.Checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
