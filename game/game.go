package game

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/signalnine/solitaire/engine"
)

// Game is a solitaire variant driving the piles of one table
type Game interface {
	// Setup builds and deals every pile of t
	Setup(t *engine.Table) error
	// IsFinished reports whether the game has been won
	IsFinished() bool
	// Play applies a move. Illegal moves return *engine.RuleError and
	// leave the table untouched.
	Play(m engine.Move) error
}

// Variant names a solitaire game
type Variant string

const (
	VariantEliminator Variant = "eliminator"
	VariantBrawl      Variant = "brawl"
	VariantSpider     Variant = "spider"
)

// Variants lists every supported variant
var Variants = []Variant{VariantEliminator, VariantBrawl, VariantSpider}

// ParseVariant accepts a variant name, including the Spanish aliases
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eliminator", "eliminador":
		return VariantEliminator, nil
	case "brawl", "reyerta":
		return VariantBrawl, nil
	case "spider":
		return VariantSpider, nil
	}
	return "", fmt.Errorf("unknown variant %q", name)
}

// Options tunes a game. Zero values pick the classic rules.
type Options struct {
	Rand    *rand.Rand
	Logger  *log.Logger
	Verbose bool

	// MaxDeckPasses caps how many times Brawl may run through its deck
	MaxDeckPasses int
	// SpiderSuits is the number of suits in the Spider deck (1, 2 or 4)
	SpiderSuits int
}

// Rule defaults
const (
	DefaultMaxDeckPasses = 3
	DefaultSpiderSuits   = 1
)

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	if o.MaxDeckPasses == 0 {
		o.MaxDeckPasses = DefaultMaxDeckPasses
	}
	if o.SpiderSuits == 0 {
		o.SpiderSuits = DefaultSpiderSuits
	}
	return o
}

func (o Options) logf(format string, args ...any) {
	if o.Verbose {
		o.Logger.Printf(format, args...)
	}
}

// New creates an unset-up game of the given variant
func New(v Variant, opts Options) (Game, error) {
	opts = opts.withDefaults()
	switch v {
	case VariantEliminator:
		return NewEliminator(opts), nil
	case VariantBrawl:
		return NewBrawl(opts), nil
	case VariantSpider:
		return NewSpider(opts), nil
	}
	return nil, fmt.Errorf("unknown variant %q", v)
}

var errNotSetUp = &engine.RuleError{Reason: "game is not set up"}

// moveTop moves the top card of origin onto dst if dst accepts it
func moveTop(origin, dst *engine.Pile) error {
	c, err := origin.Pop()
	if err != nil {
		return err
	}
	if err := dst.Push(c); err != nil {
		origin.PushForced(c)
		return err
	}
	return nil
}

// flipExposed turns a face-down top card face up
func flipExposed(p *engine.Pile) {
	if top, err := p.Top(); err == nil && !top.FaceUp {
		top.Flip()
	}
}

// firstAccepting runs move against each foundation until one succeeds
func firstAccepting(foundations []*engine.Pile, reason string, move func(dst *engine.Pile) error) error {
	for _, f := range foundations {
		if err := move(f); err == nil {
			return nil
		}
	}
	return &engine.RuleError{Reason: reason}
}

// sourcePile resolves a target that must be a non-empty pile
func sourcePile(t *engine.Table, target engine.Target) (*engine.Pile, error) {
	p, err := t.Pile(target)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, &engine.RuleError{Reason: engine.ReasonEmpty}
	}
	return p, nil
}

func allEmpty(piles []*engine.Pile) bool {
	for _, p := range piles {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

func allComplete(piles []*engine.Pile) bool {
	for _, p := range piles {
		if p.Size() < engine.MaxRank {
			return false
		}
	}
	return true
}

func kinds(m engine.Move) []engine.Location {
	out := make([]engine.Location, len(m))
	for i, t := range m {
		out[i] = t.Kind
	}
	return out
}

func shapeIs(m engine.Move, want ...engine.Location) bool {
	got := kinds(m)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
