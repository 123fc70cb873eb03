package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/veilbound/cardex/internal/domain/card"
	"github.com/veilbound/cardex/internal/logger"
)

// Service exposes the two search-path operations to the transport
// layer. It is stateless; every call runs against the snapshot the
// caller passes in.
type Service struct{}

// New creates a search service.
func New() *Service {
	return &Service{}
}

// Results is one search outcome: matching cards in final order plus
// the canonical rendering of the parsed query.
type Results struct {
	Query string
	Cards []*card.Card
}

// Search parses the query, filters the snapshot, and ranks matches.
//
// Policy: a query that cannot be parsed is returned as an error — the
// caller surfaces it, there is no silent fallback to whole-text fuzzy
// search. Ranking applies only when the query carries a free-text
// term; purely structural queries come back in collection scan order.
func (s *Service) Search(ctx context.Context, queryText string, snap *card.Collection) (Results, error) {
	list, err := Parse(queryText)
	if err != nil {
		logger.FromContext(ctx).Debug("query rejected",
			zap.String("query", queryText),
			zap.Error(err),
		)
		return Results{}, err
	}

	var matched []*card.Card
	for _, c := range snap.Cards() {
		if Matches(c, list, snap) {
			matched = append(matched, c)
		}
	}

	if list.HasFuzzy() {
		matched = Rank(matched, queryText)
	}

	return Results{Query: list.Render(), Cards: matched}, nil
}

// Lookup fetches a card by id. A miss is not an error; the second
// return is false and the caller renders "not found".
func (s *Service) Lookup(id string, snap *card.Collection) (*card.Card, bool) {
	return snap.ByID(id)
}
