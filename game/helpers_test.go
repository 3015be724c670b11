package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signalnine/solitaire/engine"
)

func seeded(seed int64) Options {
	return Options{Rand: rand.New(rand.NewSource(seed))}
}

func up(rank uint8) *engine.Card {
	return &engine.Card{Rank: rank, Suit: engine.Spades, FaceUp: true}
}

func down(rank uint8) *engine.Card {
	return &engine.Card{Rank: rank, Suit: engine.Spades}
}

// restack empties p and lays cards on it bottom-to-top
func restack(t *testing.T, p *engine.Pile, cards ...*engine.Card) {
	t.Helper()
	for !p.IsEmpty() {
		_, err := p.Pop()
		require.NoError(t, err)
	}
	for _, c := range cards {
		p.PushForced(c)
	}
}

func fullRun() []*engine.Card {
	cards := make([]*engine.Card, 0, engine.MaxRank)
	for r := uint8(engine.MaxRank); r >= 1; r-- {
		cards = append(cards, up(r))
	}
	return cards
}

func ascendingRun() []*engine.Card {
	cards := make([]*engine.Card, 0, engine.MaxRank)
	for r := uint8(1); r <= engine.MaxRank; r++ {
		cards = append(cards, up(r))
	}
	return cards
}

func snapshot(p *engine.Pile) []engine.Card {
	cards := p.Cards()
	out := make([]engine.Card, len(cards))
	for i, c := range cards {
		out[i] = *c
	}
	return out
}

func tableSnapshot(t *engine.Table) [][]engine.Card {
	out := [][]engine.Card{snapshot(t.Deck)}
	for _, p := range t.Foundations {
		out = append(out, snapshot(p))
	}
	for _, p := range t.Tableau {
		out = append(out, snapshot(p))
	}
	return out
}

func requireRuleError(t *testing.T, err error) *engine.RuleError {
	t.Helper()
	var re *engine.RuleError
	require.True(t, errors.As(err, &re), "expected *engine.RuleError, got %v", err)
	return re
}

func tab(i int) engine.Target  { return engine.Target{Kind: engine.LocationTableau, Index: i} }
func fnd(i int) engine.Target  { return engine.Target{Kind: engine.LocationFoundation, Index: i} }
func deckTarget() engine.Target { return engine.Target{Kind: engine.LocationDeck} }
