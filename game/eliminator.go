package game

import "github.com/signalnine/solitaire/engine"

// Eliminator layout
const (
	eliminatorFoundations = 6
	eliminatorTableau     = 4
)

// Eliminator deals the whole deck face up onto four piles. Cards only ever
// leave the piles for one of six foundations, each taking a card one rank
// above or below its top. Emptying the four piles wins.
type Eliminator struct {
	opts  Options
	table *engine.Table
}

// NewEliminator creates an Eliminator game
func NewEliminator(opts Options) *Eliminator {
	return &Eliminator{opts: opts.withDefaults()}
}

// Setup builds the piles and deals 13 cards to each tableau pile
func (g *Eliminator) Setup(t *engine.Table) error {
	deck, err := engine.BuildDeck(g.opts.Rand, 1, 4)
	if err != nil {
		return err
	}
	t.Deck = deck

	for i := 0; i < eliminatorFoundations; i++ {
		t.Foundations = append(t.Foundations, engine.NewPile(engine.PileConfig{
			Stack: engine.Consecutive.Criterion(),
		}))
	}
	for i := 0; i < eliminatorTableau; i++ {
		t.Tableau = append(t.Tableau, engine.NewPile(engine.PileConfig{Visible: true}))
	}

	for j := 0; !deck.IsEmpty(); j++ {
		c, err := deck.Pop()
		if err != nil {
			return err
		}
		c.Flip()
		t.Tableau[j%eliminatorTableau].PushForced(c)
	}

	g.table = t
	return nil
}

// IsFinished reports whether every tableau pile is empty
func (g *Eliminator) IsFinished() bool {
	return g.table != nil && allEmpty(g.table.Tableau)
}

// Play moves a tableau top to a foundation, either the first one that
// accepts it ([tableau]) or a chosen one ([tableau, foundation]).
func (g *Eliminator) Play(m engine.Move) error {
	if g.table == nil {
		return errNotSetUp
	}

	switch {
	case shapeIs(m, engine.LocationTableau):
		src, err := sourcePile(g.table, m[0])
		if err != nil {
			return err
		}
		return firstAccepting(g.table.Foundations, "no foundation accepts that card", func(dst *engine.Pile) error {
			return moveTop(src, dst)
		})

	case shapeIs(m, engine.LocationTableau, engine.LocationFoundation):
		src, err := sourcePile(g.table, m[0])
		if err != nil {
			return err
		}
		dst, err := g.table.Pile(m[1])
		if err != nil {
			return err
		}
		return moveTop(src, dst)
	}

	return &engine.RuleError{Reason: engine.ReasonInvalidMove}
}
