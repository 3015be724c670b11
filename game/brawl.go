package game

import (
	"fmt"

	"github.com/signalnine/solitaire/engine"
)

const brawlPiles = 4

// Reasons specific to Brawl
const (
	ReasonDeckPassesExhausted = "deck passes exhausted"
	ReasonNothingToDeal       = "no cards left to deal"
)

// Brawl ("Reyerta") starts with the four aces on the foundations, which are
// built up A to K regardless of suit. Asking for cards deals one face-up
// card onto each of four piles; only pile tops can be played. An empty deck
// is rebuilt from the piles and reshuffled, a limited number of times.
type Brawl struct {
	opts   Options
	table  *engine.Table
	passes int
}

// NewBrawl creates a Brawl game
func NewBrawl(opts Options) *Brawl {
	return &Brawl{opts: opts.withDefaults()}
}

// Setup builds the piles and moves the aces onto the foundations. The rest
// of the deck keeps its order and the tableau starts empty.
func (g *Brawl) Setup(t *engine.Table) error {
	deck, err := engine.BuildDeck(g.opts.Rand, 1, 4)
	if err != nil {
		return err
	}
	t.Deck = deck

	for i := 0; i < brawlPiles; i++ {
		t.Foundations = append(t.Foundations, engine.NewPile(engine.PileConfig{
			Stack: engine.Ascending.Criterion(),
		}))
		t.Tableau = append(t.Tableau, engine.NewPile(engine.PileConfig{}))
	}

	rest := engine.NewStack[*engine.Card](deck.Size())
	aces := 0
	for !deck.IsEmpty() {
		c, err := deck.Pop()
		if err != nil {
			return err
		}
		if c.Rank != 1 {
			rest.Push(c)
			continue
		}
		if aces == len(t.Foundations) {
			return fmt.Errorf("deck holds more than %d aces", len(t.Foundations))
		}
		c.Flip()
		if err := t.Foundations[aces].Push(c); err != nil {
			return err
		}
		aces++
	}
	for !rest.IsEmpty() {
		c, _ := rest.Pop()
		deck.PushForced(c)
	}

	g.table = t
	g.passes = 1
	return nil
}

// Passes returns how many times the deck has been dealt through, counting
// the current pass
func (g *Brawl) Passes() int {
	return g.passes
}

// IsFinished reports whether every foundation reached the King
func (g *Brawl) IsFinished() bool {
	return g.table != nil && allComplete(g.table.Foundations)
}

// Play handles [deck] (ask for cards), [tableau] (send the top card to the
// first foundation that takes it) and [tableau, foundation].
func (g *Brawl) Play(m engine.Move) error {
	if g.table == nil {
		return errNotSetUp
	}

	switch {
	case shapeIs(m, engine.LocationDeck):
		return g.askForCards()

	case shapeIs(m, engine.LocationTableau):
		src, err := sourcePile(g.table, m[0])
		if err != nil {
			return err
		}
		return firstAccepting(g.table.Foundations, "no foundation accepts that card", func(dst *engine.Pile) error {
			return g.toFoundation(src, dst)
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
		return g.toFoundation(src, dst)
	}

	return &engine.RuleError{Reason: engine.ReasonInvalidMove}
}

func (g *Brawl) toFoundation(src, dst *engine.Pile) error {
	if err := moveTop(src, dst); err != nil {
		return err
	}
	flipExposed(src)
	return nil
}

func (g *Brawl) askForCards() error {
	deck := g.table.Deck
	if deck.IsEmpty() {
		if g.passes >= g.opts.MaxDeckPasses {
			return engine.NewRuleError("%s: deck already dealt %d times", ReasonDeckPassesExhausted, g.opts.MaxDeckPasses)
		}
		if allEmpty(g.table.Tableau) {
			return &engine.RuleError{Reason: ReasonNothingToDeal}
		}
		g.recycle()
	}
	g.dealRow()
	return nil
}

// recycle returns every tableau card face down to the deck and reshuffles
func (g *Brawl) recycle() {
	deck := g.table.Deck
	for _, p := range g.table.Tableau {
		for !p.IsEmpty() {
			c, _ := p.Pop()
			if c.FaceUp {
				c.Flip()
			}
			deck.PushForced(c)
		}
	}
	deck.Shuffle(g.opts.Rand)
	g.passes++
	g.opts.logf("Shuffling deck, %d passes remaining", g.opts.MaxDeckPasses-g.passes)
}

// dealRow puts one face-up card on each tableau pile while the deck lasts
func (g *Brawl) dealRow() {
	deck := g.table.Deck
	for _, p := range g.table.Tableau {
		if deck.IsEmpty() {
			return
		}
		c, _ := deck.Pop()
		if !c.FaceUp {
			c.Flip()
		}
		p.PushForced(c)
	}
}
