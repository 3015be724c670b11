package engine

import (
	"fmt"
	"math/rand"
)

// DeckSize is the number of cards in one standard deck
const DeckSize = 52

// BuildDeck returns a shuffled pile of decks*52 face-down cards.
//
// suits selects how many distinct suits appear: 4 gives a normal deck,
// 2 gives two suits of one colour (red or black, picked once), 1 gives a
// single suit picked once. Each deck always holds four runs of A-K.
func BuildDeck(rng *rand.Rand, decks, suits int) (*Pile, error) {
	if decks < 1 {
		return nil, fmt.Errorf("deck count must be positive, got %d", decks)
	}
	seq, err := suitSequence(rng, suits)
	if err != nil {
		return nil, err
	}

	deck := NewPile(PileConfig{})
	for d := 0; d < decks; d++ {
		for _, suit := range seq {
			for rank := uint8(1); rank <= MaxRank; rank++ {
				deck.PushForced(NewCard(rank, suit))
			}
		}
	}
	deck.Shuffle(rng)
	return deck, nil
}

// suitSequence returns the suit used for each of the four A-K runs of a deck
func suitSequence(rng *rand.Rand, suits int) ([NumSuits]Suit, error) {
	switch suits {
	case 4:
		return [NumSuits]Suit{Hearts, Diamonds, Clubs, Spades}, nil
	case 2:
		if rng.Intn(2) == 0 {
			return [NumSuits]Suit{Clubs, Spades, Clubs, Spades}, nil
		}
		return [NumSuits]Suit{Hearts, Diamonds, Hearts, Diamonds}, nil
	case 1:
		s := Suit(rng.Intn(NumSuits))
		return [NumSuits]Suit{s, s, s, s}, nil
	}
	return [NumSuits]Suit{}, fmt.Errorf("suit count must be 1, 2 or 4, got %d", suits)
}
