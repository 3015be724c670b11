package engine

// Criterion decides whether two cards may sit next to each other.
//
// As a stacking rule it is called as (top, incoming). As a move rule it is
// called as (upper, lower) while MoveRun walks down a run: upper is the card
// just lifted and lower is the card it was resting on.
type Criterion func(a, b *Card) bool

// Ordering names the rank relations used by the solitaire variants
type Ordering uint8

const (
	// Ascending accepts b one rank above a
	Ascending Ordering = iota
	// Descending accepts b one rank below a
	Descending
	// Consecutive accepts b one rank away from a in either direction.
	// Ranks do not wrap between King and Ace.
	Consecutive
)

// Criterion resolves the ordering to a comparison. Suits are ignored.
func (o Ordering) Criterion() Criterion {
	switch o {
	case Ascending:
		return func(a, b *Card) bool { return int(b.Rank) == int(a.Rank)+1 }
	case Descending:
		return func(a, b *Card) bool { return int(b.Rank) == int(a.Rank)-1 }
	case Consecutive:
		return func(a, b *Card) bool {
			d := int(b.Rank) - int(a.Rank)
			return d == 1 || d == -1
		}
	}
	return nil
}

func (o Ordering) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case Consecutive:
		return "consecutive"
	}
	return "unknown"
}
