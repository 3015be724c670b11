package game

import "github.com/signalnine/solitaire/engine"

// Spider layout
const (
	spiderDecks       = 2
	spiderFoundations = 8
	spiderTableau     = 10
	spiderDealDepth   = 5
)

// spiderDeepPiles get one extra card in the opening deal (0-based)
var spiderDeepPiles = map[int]bool{0: true, 3: true, 6: true, 9: true}

// Reasons specific to Spider
const (
	ReasonIncompleteRun = "only complete runs may rest on a foundation"
	ReasonDeckTooShort  = "not enough cards in the deck to deal a row"
)

// Spider is played with two decks on ten piles built down regardless of
// suit. Runs move between piles as a block; a complete K-A run can be
// lifted onto one of eight foundations. Filling the foundations wins.
type Spider struct {
	opts  Options
	table *engine.Table
}

// NewSpider creates a Spider game
func NewSpider(opts Options) *Spider {
	return &Spider{opts: opts.withDefaults()}
}

// Setup builds the piles and deals 54 cards face down, turning each
// pile's top card up
func (g *Spider) Setup(t *engine.Table) error {
	deck, err := engine.BuildDeck(g.opts.Rand, spiderDecks, g.opts.SpiderSuits)
	if err != nil {
		return err
	}
	t.Deck = deck

	for i := 0; i < spiderFoundations; i++ {
		t.Foundations = append(t.Foundations, engine.NewPile(engine.PileConfig{
			InitialRank: engine.MaxRank,
			Stack:       engine.Descending.Criterion(),
			Move:        engine.Ascending.Criterion(),
		}))
	}

	for j := 0; j < spiderTableau; j++ {
		p := engine.NewPile(engine.PileConfig{
			Visible: true,
			Stack:   engine.Descending.Criterion(),
			Move:    engine.Ascending.Criterion(),
		})
		n := spiderDealDepth
		if spiderDeepPiles[j] {
			n++
		}
		for i := 0; i < n; i++ {
			c, err := deck.Pop()
			if err != nil {
				return err
			}
			p.PushForced(c)
		}
		flipExposed(p)
		t.Tableau = append(t.Tableau, p)
	}

	g.table = t
	return nil
}

// IsFinished reports whether all eight foundations hold a complete run
func (g *Spider) IsFinished() bool {
	return g.table != nil && allComplete(g.table.Foundations)
}

// Play handles:
//
//	[deck]                            deal a face-up row onto the tableau
//	[tableau]                         send the top run to the first foundation taking it
//	[tableau, tableau|foundation]     move a run
//	[foundation, tableau|foundation]  move a completed foundation
func (g *Spider) Play(m engine.Move) error {
	if g.table == nil {
		return errNotSetUp
	}

	switch {
	case shapeIs(m, engine.LocationDeck):
		return g.dealRow()

	case shapeIs(m, engine.LocationTableau):
		src, err := sourcePile(g.table, m[0])
		if err != nil {
			return err
		}
		return firstAccepting(g.table.Foundations, "no foundation accepts that run", func(dst *engine.Pile) error {
			return g.moveRun(src, dst)
		})

	case len(m) == 2 && m[1].Kind != engine.LocationDeck && m[1].Kind != engine.LocationQuit:
		if m[0].Kind != engine.LocationTableau && m[0].Kind != engine.LocationFoundation {
			break
		}
		src, err := sourcePile(g.table, m[0])
		if err != nil {
			return err
		}
		if m[0].Kind == engine.LocationFoundation && src.Size() != engine.MaxRank {
			return engine.NewRuleError("%s: foundation %d is not complete", engine.ReasonInvalidMove, m[0].Index+1)
		}
		dst, err := g.table.Pile(m[1])
		if err != nil {
			return err
		}
		return g.moveRun(src, dst)
	}

	return &engine.RuleError{Reason: engine.ReasonInvalidMove}
}

// moveRun moves a run from src to dst. A foundation left short of a full
// K-A run is rolled back. The card exposed on src is turned up.
func (g *Spider) moveRun(src, dst *engine.Pile) error {
	n, err := dst.MoveRun(src)
	if err != nil {
		return err
	}
	if g.isFoundation(dst) && dst.Size() < engine.MaxRank {
		if err := dst.UndoRun(src, n); err != nil {
			return err
		}
		return &engine.RuleError{Reason: ReasonIncompleteRun}
	}
	flipExposed(src)
	return nil
}

func (g *Spider) isFoundation(p *engine.Pile) bool {
	for _, f := range g.table.Foundations {
		if f == p {
			return true
		}
	}
	return false
}

// dealRow deals one face-up card onto every tableau pile. A deck that
// cannot cover the whole row is left alone.
func (g *Spider) dealRow() error {
	deck := g.table.Deck
	if deck.Size() < len(g.table.Tableau) {
		return engine.NewRuleError("%s: %d left, %d needed", ReasonDeckTooShort, deck.Size(), len(g.table.Tableau))
	}
	for _, p := range g.table.Tableau {
		c, err := deck.Pop()
		if err != nil {
			return err
		}
		if !c.FaceUp {
			c.Flip()
		}
		p.PushForced(c)
	}
	return nil
}
