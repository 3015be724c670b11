package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/solitaire/engine"
)

func setupEliminator(t *testing.T) (*Eliminator, *engine.Table) {
	t.Helper()
	g := NewEliminator(seeded(11))
	table := engine.NewTable()
	require.NoError(t, g.Setup(table))
	return g, table
}

func TestEliminatorSetup(t *testing.T) {
	g, table := setupEliminator(t)

	assert.True(t, table.Deck.IsEmpty())
	assert.Len(t, table.Foundations, 6)
	require.Len(t, table.Tableau, 4)
	for i, p := range table.Tableau {
		assert.Equal(t, 13, p.Size(), "tableau %d", i)
		for _, c := range p.Cards() {
			assert.True(t, c.FaceUp, "tableau %d holds a face-down card", i)
		}
	}
	for _, f := range table.Foundations {
		assert.True(t, f.IsEmpty())
	}
	assert.Equal(t, 52, table.CardCount())
	assert.False(t, g.IsFinished())
}

func TestEliminatorAutoRoute(t *testing.T) {
	g, table := setupEliminator(t)

	require.NoError(t, g.Play(engine.Move{tab(0)}))
	assert.Equal(t, 12, table.Tableau[0].Size())
	assert.Equal(t, 1, table.Foundations[0].Size())
}

func TestEliminatorAutoRouteSkipsRejectingFoundations(t *testing.T) {
	g, table := setupEliminator(t)
	for _, f := range table.Foundations[:5] {
		restack(t, f, up(10))
	}
	restack(t, table.Foundations[5], up(4))
	restack(t, table.Tableau[2], up(8), up(3))

	require.NoError(t, g.Play(engine.Move{tab(2)}))
	top, err := table.Foundations[5].Top()
	require.NoError(t, err)
	assert.Equal(t, uint8(3), top.Rank)
}

func TestEliminatorExplicitMove(t *testing.T) {
	g, table := setupEliminator(t)
	restack(t, table.Foundations[1], up(5))
	restack(t, table.Tableau[0], up(9), up(6))
	restack(t, table.Tableau[1], up(9))

	require.NoError(t, g.Play(engine.Move{tab(0), fnd(1)}))
	assert.Equal(t, 2, table.Foundations[1].Size())

	before := tableSnapshot(table)
	err := g.Play(engine.Move{tab(1), fnd(1)})
	assert.Equal(t, engine.ReasonStackViolated, requireRuleError(t, err).Reason)
	assert.Equal(t, before, tableSnapshot(table))
}

func TestEliminatorNoFoundationAccepts(t *testing.T) {
	g, table := setupEliminator(t)
	for _, f := range table.Foundations {
		restack(t, f, up(1))
	}
	restack(t, table.Tableau[3], up(7))

	before := tableSnapshot(table)
	requireRuleError(t, g.Play(engine.Move{tab(3)}))
	assert.Equal(t, before, tableSnapshot(table))
}

func TestEliminatorRejectsInvalidMoves(t *testing.T) {
	g, table := setupEliminator(t)
	before := tableSnapshot(table)

	moves := []engine.Move{
		{},
		{deckTarget()},
		{fnd(0)},
		{fnd(0), tab(1)},
		{tab(0), tab(1)},
		{tab(4)},
		{tab(0), fnd(6)},
		{tab(-1), fnd(0)},
	}
	for _, m := range moves {
		requireRuleError(t, g.Play(m))
	}
	assert.Equal(t, before, tableSnapshot(table))
}

func TestEliminatorEmptyPile(t *testing.T) {
	g, table := setupEliminator(t)
	restack(t, table.Tableau[0])

	err := g.Play(engine.Move{tab(0)})
	assert.Equal(t, engine.ReasonEmpty, requireRuleError(t, err).Reason)
}

func TestEliminatorFinished(t *testing.T) {
	g, table := setupEliminator(t)
	for _, p := range table.Tableau[:3] {
		restack(t, p)
	}
	assert.False(t, g.IsFinished())

	restack(t, table.Tableau[3], up(2))
	require.NoError(t, g.Play(engine.Move{tab(3)}))
	assert.True(t, g.IsFinished())
}

func TestEliminatorPlayBeforeSetup(t *testing.T) {
	g := NewEliminator(seeded(1))
	requireRuleError(t, g.Play(engine.Move{tab(0)}))
	assert.False(t, g.IsFinished())
}
