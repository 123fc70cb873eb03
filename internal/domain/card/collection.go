package card

import "fmt"

// Collection is an immutable point-in-time snapshot of the full card
// set. It is built once per load and replaced as a whole; readers keep
// using whichever snapshot they already hold across a swap.
type Collection struct {
	cards []*Card
	byID  map[string]*Card
}

// NewCollection validates card ids for uniqueness and builds a snapshot.
// Card order is preserved: it is the scan order of every query and the
// tie-break order of ranking.
func NewCollection(cards []*Card) (*Collection, error) {
	byID := make(map[string]*Card, len(cards))
	for _, c := range cards {
		if c.ID == "" {
			return nil, fmt.Errorf("card %q has empty id", c.Name)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %q", c.ID)
		}
		byID[c.ID] = c
	}
	return &Collection{cards: cards, byID: byID}, nil
}

// EmptyCollection returns a snapshot with no cards.
func EmptyCollection() *Collection {
	return &Collection{byID: map[string]*Card{}}
}

// Cards returns the cards in load order. The caller must not mutate
// the returned slice.
func (c *Collection) Cards() []*Card { return c.cards }

// ByID looks up a card by its unique id.
func (c *Collection) ByID(id string) (*Card, bool) {
	found, ok := c.byID[id]
	return found, ok
}

// Len returns the number of cards in the snapshot.
func (c *Collection) Len() int { return len(c.cards) }
