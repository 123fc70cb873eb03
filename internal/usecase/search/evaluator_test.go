package search

import (
	"testing"

	"github.com/veilbound/cardex/internal/domain/card"
	"github.com/veilbound/cardex/internal/domain/query"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func mustParse(t *testing.T, q string) query.List {
	t.Helper()
	list, err := Parse(q)
	if err != nil {
		t.Fatalf("parse %q: %v", q, err)
	}
	return list
}

func mustCollection(t *testing.T, cards ...*card.Card) *card.Collection {
	t.Helper()
	coll, err := card.NewCollection(cards)
	if err != nil {
		t.Fatalf("collection: %v", err)
	}
	return coll
}

func TestMatches_EmptyListMatchesEverything(t *testing.T) {
	c := &card.Card{ID: "a", Name: "Anything"}
	coll := mustCollection(t, c)
	if !Matches(c, nil, coll) {
		t.Error("nil list must match")
	}
	if !Matches(c, query.List{}, coll) {
		t.Error("empty list must match")
	}
}

func TestMatches_NumericComparisons(t *testing.T) {
	c := &card.Card{ID: "a", Name: "Mire Stalker", Cost: 3}
	coll := mustCollection(t, c)

	matching := []string{"cost>2", "cost>=3", "cost=3", "cost!=4", "cost<4", "cost<=3"}
	for _, q := range matching {
		if !Matches(c, mustParse(t, q), coll) {
			t.Errorf("cost=3 card must match %q", q)
		}
	}

	failing := []string{"cost>3", "cost<3", "cost=4"}
	for _, q := range failing {
		if Matches(c, mustParse(t, q), coll) {
			t.Errorf("cost=3 card must not match %q", q)
		}
	}
}

func TestMatches_TextContains(t *testing.T) {
	c := &card.Card{
		ID:          "a",
		Name:        "Mire Stalker",
		Type:        "Unit",
		Description: "Draw a card when it attacks.",
	}
	coll := mustCollection(t, c)

	if !Matches(c, mustParse(t, "name:stalk"), coll) {
		t.Error("substring test must be case-insensitive")
	}
	if !Matches(c, mustParse(t, "description:DRAW"), coll) {
		t.Error("needle case must not matter")
	}
	if !Matches(c, mustParse(t, "type=Unit"), coll) {
		t.Error("equality shape on text field must contain-match")
	}
	if Matches(c, mustParse(t, "name:dragon"), coll) {
		t.Error("unrelated substring must not match")
	}
}

func TestMatches_SetMembership(t *testing.T) {
	c := &card.Card{ID: "a", Name: "Gravewalker", Kins: []string{"Beast", "Undead"}}
	coll := mustCollection(t, c)

	if !Matches(c, mustParse(t, "kins:Beast"), coll) {
		t.Error("must match kins:Beast")
	}
	if !Matches(c, mustParse(t, "kins:Undead"), coll) {
		t.Error("must match kins:Undead")
	}
	if Matches(c, mustParse(t, "kins:Dragon"), coll) {
		t.Error("must not match kins:Dragon")
	}
	// Membership keeps the source representation's case.
	if Matches(c, mustParse(t, "kins:beast"), coll) {
		t.Error("set membership is case-sensitive")
	}
}

func TestMatches_KeywordName(t *testing.T) {
	c := &card.Card{
		ID:   "a",
		Name: "Skyreaver",
		Keywords: []card.Keyword{
			{Name: "Flying"},
			{Name: "First Strike", Data: card.LiteralData("Deals damage first.")},
		},
	}
	coll := mustCollection(t, c)

	if !Matches(c, mustParse(t, "keyword:fly"), coll) {
		t.Error("keyword name substring must match case-insensitively")
	}
	if !Matches(c, mustParse(t, "keyword:strike"), coll) {
		t.Error("literal-data keyword must match by name")
	}
	if Matches(c, mustParse(t, "keyword:trample"), coll) {
		t.Error("absent keyword must not match")
	}
}

func TestMatches_LogicalAnd(t *testing.T) {
	c := &card.Card{ID: "a", Name: "Gravewalker", Cost: 3, Kins: []string{"Undead"}}
	coll := mustCollection(t, c)

	if !Matches(c, mustParse(t, "cost>2 kins:Undead"), coll) {
		t.Error("all restrictions satisfied must match")
	}
	if Matches(c, mustParse(t, "cost>2 kins:Dragon"), coll) {
		t.Error("one failing restriction must fail the card")
	}
}

func TestMatches_AndMonotonicity(t *testing.T) {
	cards := []*card.Card{
		{ID: "a", Cost: 1, Kins: []string{"Beast"}},
		{ID: "b", Cost: 3, Kins: []string{"Beast"}},
		{ID: "c", Cost: 5, Kins: []string{"Undead"}},
	}
	coll := mustCollection(t, cards...)

	count := func(list query.List) int {
		n := 0
		for _, c := range cards {
			if Matches(c, list, coll) {
				n++
			}
		}
		return n
	}

	base := mustParse(t, "cost>0")
	narrowed := append(append(query.List{}, base...), mustParse(t, "kins:Beast")...)
	if count(narrowed) > count(base) {
		t.Error("adding a restriction must never grow the matching set")
	}
}

func TestMatches_KeywordCrossReference(t *testing.T) {
	summoner := &card.Card{
		ID:   "summoner",
		Name: "Beast Caller",
		Keywords: []card.Keyword{
			{Name: "Summon", Data: card.PatternData(card.Pattern{
				Type:  strPtr("Unit"),
				Power: intPtr(5),
			})},
		},
	}
	target := &card.Card{ID: "target", Name: "Dire Boar", Type: "Unit", Power: 5}
	bystander := &card.Card{ID: "bystander", Name: "Pebble", Type: "Relic", Power: 0}

	t.Run("resolves when another card matches the pattern", func(t *testing.T) {
		coll := mustCollection(t, summoner, target, bystander)
		if !Matches(summoner, mustParse(t, "keyword:summon"), coll) {
			t.Error("pattern satisfied by another card must match")
		}
	})

	t.Run("type constrains by equality, not substring", func(t *testing.T) {
		nearMiss := &card.Card{ID: "near", Name: "Hive Drone", Type: "Subunit", Power: 5}
		coll := mustCollection(t, summoner, nearMiss)
		if Matches(summoner, mustParse(t, "keyword:summon"), coll) {
			t.Error(`type "Subunit" must not satisfy a pattern naming "Unit"`)
		}
	})

	t.Run("type equality ignores case", func(t *testing.T) {
		lower := &card.Card{ID: "lower", Name: "Dire Boar", Type: "unit", Power: 5}
		coll := mustCollection(t, summoner, lower)
		if !Matches(summoner, mustParse(t, "keyword:summon"), coll) {
			t.Error(`type "unit" must satisfy a pattern naming "Unit"`)
		}
	})

	t.Run("name constrains by equality, not substring", func(t *testing.T) {
		caller := &card.Card{
			ID:   "caller",
			Name: "Boar Caller",
			Keywords: []card.Keyword{
				{Name: "Summon", Data: card.PatternData(card.Pattern{
					Name: strPtr("Dire Boar"),
				})},
			},
		}
		superstring := &card.Card{ID: "super", Name: "Dire Boar Matriarch"}
		coll := mustCollection(t, caller, superstring)
		if Matches(caller, mustParse(t, "keyword:summon"), coll) {
			t.Error(`name "Dire Boar Matriarch" must not satisfy a pattern naming "Dire Boar"`)
		}

		exact := &card.Card{ID: "exact", Name: "Dire Boar"}
		coll = mustCollection(t, caller, superstring, exact)
		if !Matches(caller, mustParse(t, "keyword:summon"), coll) {
			t.Error("exact name must satisfy the pattern")
		}
	})

	t.Run("fails when no card matches the pattern", func(t *testing.T) {
		coll := mustCollection(t, summoner, bystander)
		if Matches(summoner, mustParse(t, "keyword:summon"), coll) {
			t.Error("unsatisfied pattern must not match")
		}
	})

	t.Run("the bearer itself never satisfies its own pattern", func(t *testing.T) {
		self := &card.Card{
			ID:    "self",
			Name:  "Mirror Shade",
			Type:  "Unit",
			Power: 5,
			Keywords: []card.Keyword{
				{Name: "Summon", Data: card.PatternData(card.Pattern{
					Type:  strPtr("Unit"),
					Power: intPtr(5),
				})},
			},
		}
		coll := mustCollection(t, self, bystander)
		if Matches(self, mustParse(t, "keyword:summon"), coll) {
			t.Error("pattern must be tested against other cards only")
		}
	})
}

func TestMatches_PatternDepthIsOne(t *testing.T) {
	// leader's pattern requires a card with a "Summon" keyword. The
	// referenced card's own Summon pattern is unsatisfiable, but at the
	// recursion limit it must be matched by name alone.
	leader := &card.Card{
		ID:   "leader",
		Name: "Warband Leader",
		Keywords: []card.Keyword{
			{Name: "Rally", Data: card.PatternData(card.Pattern{
				Keywords: []card.Keyword{{Name: "Summon"}},
			})},
		},
	}
	nested := &card.Card{
		ID:   "nested",
		Name: "Beast Caller",
		Keywords: []card.Keyword{
			{Name: "Summon", Data: card.PatternData(card.Pattern{
				Type: strPtr("NoSuchType"),
			})},
		},
	}
	coll := mustCollection(t, leader, nested)

	if !Matches(leader, mustParse(t, "keyword:rally"), coll) {
		t.Error("nested patterns must not be expanded past one level")
	}
}

func TestMatches_PatternSetAndKinFields(t *testing.T) {
	bearer := &card.Card{
		ID: "bearer",
		Keywords: []card.Keyword{
			{Name: "Pack", Data: card.PatternData(card.Pattern{
				Kins:      []string{"Beast"},
				Abilities: []string{"Charge"},
			})},
		},
	}
	match := &card.Card{ID: "match", Kins: []string{"Beast"}, Abilities: []string{"Charge"}}
	partial := &card.Card{ID: "partial", Kins: []string{"Beast"}}

	coll := mustCollection(t, bearer, partial)
	if Matches(bearer, mustParse(t, "keyword:pack"), coll) {
		t.Error("pattern fields combine with AND")
	}

	coll = mustCollection(t, bearer, partial, match)
	if !Matches(bearer, mustParse(t, "keyword:pack"), coll) {
		t.Error("full pattern match must resolve")
	}
}

func TestMatches_FuzzyTermSearchableFields(t *testing.T) {
	c := &card.Card{
		ID:          "a",
		Name:        "Mire Stalker",
		Type:        "Unit",
		Description: "Lurks in the swamp.",
		Kins:        []string{"Beast"},
		Keywords:    []card.Keyword{{Name: "Ambush"}},
	}
	coll := mustCollection(t, c)

	for _, term := range []string{"mire", "unit", "swamp", "beast", "ambush"} {
		if !Matches(c, mustParse(t, term), coll) {
			t.Errorf("fuzzy term %q must match", term)
		}
	}
	if Matches(c, mustParse(t, "dragon"), coll) {
		t.Error("unrelated fuzzy term must not match")
	}
}
