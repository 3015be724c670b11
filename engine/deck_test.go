package engine

import (
	"math/rand"
	"testing"
)

func suitCounts(p *Pile) map[Suit]int {
	counts := make(map[Suit]int)
	for _, c := range p.Cards() {
		counts[c.Suit]++
	}
	return counts
}

func TestBuildDeckFourSuits(t *testing.T) {
	deck, err := BuildDeck(rand.New(rand.NewSource(1)), 1, 4)
	if err != nil {
		t.Fatalf("BuildDeck error: %v", err)
	}
	if deck.Size() != 52 {
		t.Fatalf("deck has %d cards, want 52", deck.Size())
	}

	counts := suitCounts(deck)
	for s := Suit(0); s < NumSuits; s++ {
		if counts[s] != 13 {
			t.Errorf("suit %s has %d cards, want 13", s, counts[s])
		}
	}

	ranks := make(map[uint8]int)
	for _, c := range deck.Cards() {
		if c.FaceUp {
			t.Errorf("card %d%s dealt face up", c.Rank, c.Suit)
		}
		ranks[c.Rank]++
	}
	for r := uint8(1); r <= MaxRank; r++ {
		if ranks[r] != 4 {
			t.Errorf("rank %d appears %d times, want 4", r, ranks[r])
		}
	}
}

func TestBuildDeckTwoSuits(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		deck, err := BuildDeck(rand.New(rand.NewSource(seed)), 1, 2)
		if err != nil {
			t.Fatalf("BuildDeck error: %v", err)
		}

		counts := suitCounts(deck)
		if len(counts) != 2 {
			t.Fatalf("seed %d: got %d suits, want 2", seed, len(counts))
		}
		var red int
		for s, n := range counts {
			if n != 26 {
				t.Errorf("seed %d: suit %s has %d cards, want 26", seed, s, n)
			}
			if s.Red() {
				red++
			}
		}
		if red != 0 && red != 2 {
			t.Errorf("seed %d: suits %v are not one colour", seed, counts)
		}
	}
}

func TestBuildDeckOneSuitTwoDecks(t *testing.T) {
	deck, err := BuildDeck(rand.New(rand.NewSource(7)), 2, 1)
	if err != nil {
		t.Fatalf("BuildDeck error: %v", err)
	}
	if deck.Size() != 104 {
		t.Fatalf("deck has %d cards, want 104", deck.Size())
	}
	if counts := suitCounts(deck); len(counts) != 1 {
		t.Errorf("got %d suits, want 1", len(counts))
	}
}

func TestBuildDeckRejectsBadArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := BuildDeck(rng, 1, 3); err == nil {
		t.Error("expected error for 3 suits")
	}
	if _, err := BuildDeck(rng, 0, 4); err == nil {
		t.Error("expected error for 0 decks")
	}
}

func TestBuildDeckSeeded(t *testing.T) {
	a, _ := BuildDeck(rand.New(rand.NewSource(42)), 1, 4)
	b, _ := BuildDeck(rand.New(rand.NewSource(42)), 1, 4)

	ca, cb := a.Cards(), b.Cards()
	for i := range ca {
		if ca[i].Rank != cb[i].Rank || ca[i].Suit != cb[i].Suit {
			t.Fatalf("card %d differs between equal seeds", i)
		}
	}
}
