package engine

import (
	"math/rand"
	"strings"
)

// PileConfig fixes the rules of a pile at construction. Zero values mean
// "no restriction": a zero PileConfig is a plain pile that accepts anything.
type PileConfig struct {
	// Visible piles display every card, others only the top
	Visible bool
	// InitialRank, when non-zero, is the only rank an empty pile accepts
	InitialRank uint8
	// NoPop turns Pop (and moving runs out of the pile) off
	NoPop bool
	// Stack is checked as Stack(top, incoming) on non-empty piles
	Stack Criterion
	// Move is checked as Move(upper, lower) while MoveRun walks a run
	Move Criterion
}

// Pile is a rule-checked stack of cards
type Pile struct {
	cfg   PileConfig
	cards *Stack[*Card]
}

// NewPile creates an empty pile governed by cfg
func NewPile(cfg PileConfig) *Pile {
	return &Pile{
		cfg:   cfg,
		cards: NewStack[*Card](MaxRank),
	}
}

// IsEmpty reports whether the pile holds no cards
func (p *Pile) IsEmpty() bool {
	return p.cards.IsEmpty()
}

// Size returns the number of cards in the pile
func (p *Pile) Size() int {
	return p.cards.Size()
}

// Visible reports whether the pile displays all of its cards
func (p *Pile) Visible() bool {
	return p.cfg.Visible
}

// Top returns the top card without removing it
func (p *Pile) Top() (*Card, error) {
	if p.cards.IsEmpty() {
		return nil, &RuleError{Reason: ReasonEmpty}
	}
	return p.peek(), nil
}

// Push places c on the pile if the initial-rank and stacking rules allow it
func (p *Pile) Push(c *Card) error {
	if p.cards.IsEmpty() {
		if p.cfg.InitialRank != 0 && c.Rank != p.cfg.InitialRank {
			return &RuleError{Reason: ReasonInitialMismatch}
		}
	} else if p.cfg.Stack != nil && !p.cfg.Stack(p.peek(), c) {
		return &RuleError{Reason: ReasonStackViolated}
	}
	p.cards.Push(c)
	return nil
}

// PushForced places c on the pile ignoring every rule. Only dealing and
// rollback use it.
func (p *Pile) PushForced(c *Card) {
	p.cards.Push(c)
}

// Pop removes and returns the top card
func (p *Pile) Pop() (*Card, error) {
	if p.cfg.NoPop {
		return nil, &RuleError{Reason: ReasonPopDisabled}
	}
	if p.cards.IsEmpty() {
		return nil, &RuleError{Reason: ReasonEmpty}
	}
	return p.take(), nil
}

// MoveRun moves a run of face-up cards from the top of origin onto p and
// returns how many cards moved.
//
// The search lifts cards off origin one at a time into a buffer until p
// accepts the exposed card; that card and everything lifted above it then
// land on p in their original order. The search stops at face-down cards
// and wherever p's move rule no longer links two neighbours. Anything
// lifted but not moved goes back onto origin, so on error origin is exactly
// as it was.
func (p *Pile) MoveRun(origin *Pile) (int, error) {
	if origin == p {
		return 0, &RuleError{Reason: ReasonInvalidMove}
	}
	if origin.cfg.NoPop {
		return 0, &RuleError{Reason: ReasonPopDisabled}
	}

	buf := NewStack[*Card](origin.Size())
	moved := 0
	for !origin.IsEmpty() && origin.peek().FaceUp {
		if err := p.Push(origin.peek()); err == nil {
			origin.take()
			moved = 1
			for !buf.IsEmpty() {
				c, _ := buf.Pop()
				p.cards.Push(c)
				moved++
			}
			break
		}

		buf.Push(origin.take())
		if p.cfg.Move == nil || origin.IsEmpty() {
			break
		}
		upper, _ := buf.Peek()
		if !p.cfg.Move(upper, origin.peek()) {
			break
		}
	}

	for !buf.IsEmpty() {
		c, _ := buf.Pop()
		origin.cards.Push(c)
	}

	if moved == 0 {
		return 0, &RuleError{Reason: ReasonNoMovableRun}
	}
	return moved, nil
}

// UndoRun hands the top n cards of p back to origin, keeping their order.
// It reverses a MoveRun that returned n.
func (p *Pile) UndoRun(origin *Pile, n int) error {
	if n < 0 || n > p.Size() {
		return NewRuleError("cannot return %d cards from a pile of %d", n, p.Size())
	}
	buf := NewStack[*Card](n)
	for i := 0; i < n; i++ {
		buf.Push(p.take())
	}
	for !buf.IsEmpty() {
		c, _ := buf.Pop()
		origin.cards.Push(c)
	}
	return nil
}

// Shuffle permutes the pile in place using rng
func (p *Pile) Shuffle(rng *rand.Rand) {
	cards := make([]*Card, 0, p.Size())
	for !p.cards.IsEmpty() {
		cards = append(cards, p.take())
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for _, c := range cards {
		p.cards.Push(c)
	}
}

// Cards returns the cards bottom-to-top. The slice is a copy; the cards are
// not.
func (p *Pile) Cards() []*Card {
	return p.cards.Items()
}

// String renders "X" for an empty pile, every card bottom-to-top for a
// visible pile, or just the top card otherwise.
func (p *Pile) String() string {
	if p.cards.IsEmpty() {
		return "X"
	}
	if !p.cfg.Visible {
		return p.peek().String()
	}
	cards := p.cards.Items()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// peek and take assume the caller already checked for emptiness
func (p *Pile) peek() *Card {
	c, _ := p.cards.Peek()
	return c
}

func (p *Pile) take() *Card {
	c, _ := p.cards.Pop()
	return c
}
