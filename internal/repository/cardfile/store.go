// Package cardfile loads the card set from a JSON file and holds it as
// an immutable in-memory snapshot, replaced wholesale on reload.
package cardfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/veilbound/cardex/internal/domain/card"
	"github.com/veilbound/cardex/internal/metrics"
)

// Store is the current-snapshot handle. Readers take the snapshot
// pointer once per query and keep it across concurrent swaps; there is
// no per-card locking because cards are never mutated in place.
type Store struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	snap     atomic.Pointer[card.Collection]
}

// New creates a store for the given card file. Call Load before
// serving; until then Snapshot returns an empty collection.
func New(path string, debounce time.Duration, logger *zap.Logger) *Store {
	s := &Store{path: path, debounce: debounce, logger: logger}
	s.snap.Store(card.EmptyCollection())
	return s
}

// Snapshot returns the current point-in-time collection view.
func (s *Store) Snapshot() *card.Collection {
	return s.snap.Load()
}

// CardCount reports the size of the active collection.
func (s *Store) CardCount() int {
	return s.snap.Load().Len()
}

// Load reads and decodes the card file and atomically swaps the active
// snapshot. On failure the previous snapshot stays active.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("read card file: %w", err)
	}

	var cards []*card.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		metrics.ReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("decode card file %s: %w", s.path, err)
	}

	coll, err := card.NewCollection(cards)
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("build collection: %w", err)
	}

	s.snap.Store(coll)
	metrics.ReloadsTotal.WithLabelValues("ok").Inc()
	metrics.CardCount.Set(float64(coll.Len()))
	s.logger.Info("card collection loaded",
		zap.String("path", s.path),
		zap.Int("cards", coll.Len()),
	)
	return nil
}
