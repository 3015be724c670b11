package engine

import (
	"fmt"
	"strconv"
)

// Suit of a card (0-3: H, D, C, S)
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of distinct suits in a standard deck
const NumSuits = 4

// MaxRank is the rank of a King; Ace is 1
const MaxRank = 13

var suitSymbols = [NumSuits]string{"♥", "♦", "♣", "♠"}

func (s Suit) String() string {
	if int(s) < len(suitSymbols) {
		return suitSymbols[s]
	}
	return "?"
}

// Red reports whether the suit is hearts or diamonds
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Card represents a playing card. Rank and Suit never change after
// creation; only the face flag does.
type Card struct {
	Rank   uint8 // 1-13 (A,2-10,J,Q,K)
	Suit   Suit
	FaceUp bool
}

// NewCard creates a face-down card
func NewCard(rank uint8, suit Suit) *Card {
	return &Card{Rank: rank, Suit: suit}
}

// Flip turns the card over
func (c *Card) Flip() {
	c.FaceUp = !c.FaceUp
}

// String renders rank and suit, or "##" while face down
func (c *Card) String() string {
	if !c.FaceUp {
		return "##"
	}
	return rankLabel(c.Rank) + c.Suit.String()
}

func rankLabel(rank uint8) string {
	switch rank {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	}
	return strconv.Itoa(int(rank))
}

// Location enum
type Location uint8

const (
	LocationDeck Location = iota
	LocationTableau
	LocationFoundation
	LocationQuit
)

func (l Location) String() string {
	switch l {
	case LocationDeck:
		return "deck"
	case LocationTableau:
		return "tableau"
	case LocationFoundation:
		return "foundation"
	case LocationQuit:
		return "quit"
	}
	return fmt.Sprintf("location(%d)", uint8(l))
}

// Target names one pile on the table. Index is 0-based and ignored for
// the deck and quit locations.
type Target struct {
	Kind  Location
	Index int
}

// Move is a player request: a single target (auto-route, deal, quit) or an
// origin/destination pair.
type Move []Target

// IsQuit reports whether the move asks to leave the game
func (m Move) IsQuit() bool {
	return len(m) > 0 && m[0].Kind == LocationQuit
}

func (m Move) String() string {
	switch len(m) {
	case 0:
		return "(empty move)"
	case 1:
		return fmt.Sprintf("%s %d", m[0].Kind, m[0].Index+1)
	}
	return fmt.Sprintf("%s %d -> %s %d", m[0].Kind, m[0].Index+1, m[1].Kind, m[1].Index+1)
}
