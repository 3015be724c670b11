package engine

import (
	"fmt"
	"strings"
)

// Table holds the piles of one game. Engines fill it during setup and never
// replace the piles afterwards.
type Table struct {
	Deck        *Pile
	Foundations []*Pile
	Tableau     []*Pile
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		Deck:        NewPile(PileConfig{}),
		Foundations: make([]*Pile, 0, 8),
		Tableau:     make([]*Pile, 0, 10),
	}
}

// Pile resolves a target to a pile on the table
func (t *Table) Pile(target Target) (*Pile, error) {
	var piles []*Pile
	switch target.Kind {
	case LocationDeck:
		return t.Deck, nil
	case LocationTableau:
		piles = t.Tableau
	case LocationFoundation:
		piles = t.Foundations
	default:
		return nil, &RuleError{Reason: ReasonInvalidMove}
	}
	if target.Index < 0 || target.Index >= len(piles) {
		return nil, NewRuleError("no %s pile %d", target.Kind, target.Index+1)
	}
	return piles[target.Index], nil
}

// CardCount returns the number of cards on the whole table
func (t *Table) CardCount() int {
	n := t.Deck.Size()
	for _, p := range t.Foundations {
		n += p.Size()
	}
	for _, p := range t.Tableau {
		n += p.Size()
	}
	return n
}

func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Deck: %s (%d)\n", t.Deck, t.Deck.Size())
	sb.WriteString("Foundations:")
	for i, p := range t.Foundations {
		fmt.Fprintf(&sb, " F%d[%s]", i+1, p)
	}
	sb.WriteString("\nTableau:\n")
	for i, p := range t.Tableau {
		fmt.Fprintf(&sb, "  T%-2d %s\n", i+1, p)
	}
	return sb.String()
}
