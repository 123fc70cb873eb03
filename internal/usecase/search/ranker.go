package search

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/veilbound/cardex/internal/domain/card"
)

// Relevance weights per scored field. Fixed constants, not configuration.
const (
	weightName        = 2.0
	weightType        = 1.8
	weightDescription = 1.6
	weightKin         = 1.5
	weightKeyword     = 1.2
)

// Jaro-Winkler parameters: standard prefix boost and prefix length.
const (
	jwBoost     = 0.7
	jwPrefixLen = 4
)

// Score computes the fuzzy relevance of a card against the raw query
// text: a weighted sum of per-field similarities. Multi-valued fields
// contribute their best element; empty fields contribute 0.
func Score(c *card.Card, queryText string) float64 {
	q := strings.ToLower(queryText)
	s := weightName * similarity(q, c.Name)
	s += weightType * similarity(q, c.Type)
	s += weightDescription * similarity(q, c.Description)
	s += weightKin * bestSimilarity(q, c.Kins)
	s += weightKeyword * bestSimilarity(q, keywordNames(c))
	return s
}

// Rank orders cards by descending score. Sorting is stable, so tied
// cards keep their input (collection scan) order.
func Rank(cards []*card.Card, queryText string) []*card.Card {
	ranked := make([]*card.Card, len(cards))
	copy(ranked, cards)

	scores := make(map[*card.Card]float64, len(ranked))
	for _, c := range ranked {
		scores[c] = Score(c, queryText)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

func similarity(q, field string) float64 {
	if field == "" {
		return 0
	}
	return smetrics.JaroWinkler(q, strings.ToLower(field), jwBoost, jwPrefixLen)
}

func bestSimilarity(q string, values []string) float64 {
	best := 0.0
	for _, v := range values {
		if s := similarity(q, v); s > best {
			best = s
		}
	}
	return best
}

func keywordNames(c *card.Card) []string {
	if len(c.Keywords) == 0 {
		return nil
	}
	names := make([]string, len(c.Keywords))
	for i, kw := range c.Keywords {
		names[i] = kw.Name
	}
	return names
}
