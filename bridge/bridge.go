// Package bridge encodes a read-only view of a game for embedding hosts.
//
// The buffer follows this FlatBuffers schema:
//
//	table Pile {
//	  cards:[ubyte];   // bottom to top, rank | suit<<4 | face_up<<6
//	  visible:bool;
//	}
//
//	table Snapshot {
//	  id:string;
//	  variant:string;
//	  finished:bool;
//	  moves:uint32;
//	  deck:Pile;
//	  foundations:[Pile];
//	  tableau:[Pile];
//	}
//
//	root_type Snapshot;
package bridge

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/solitaire/engine"
	"github.com/signalnine/solitaire/game"
)

// Field slots
const (
	pileCards = iota
	pileVisible
	pileFields
)

const (
	snapshotID = iota
	snapshotVariant
	snapshotFinished
	snapshotMoves
	snapshotDeck
	snapshotFoundations
	snapshotTableau
	snapshotFields
)

const (
	suitShift = 4
	faceUpBit = 1 << 6
	rankMask  = 0x0f
	suitMask  = 0x03
)

// CardView is a decoded card
type CardView struct {
	Rank   uint8
	Suit   engine.Suit
	FaceUp bool
}

// PileView is a decoded pile, cards bottom to top
type PileView struct {
	Visible bool
	Cards   []CardView
}

// View is a decoded snapshot
type View struct {
	ID          string
	Variant     string
	Finished    bool
	Moves       uint32
	Deck        PileView
	Foundations []PileView
	Tableau     []PileView
}

// Encode serializes the session's table
func Encode(s *game.Session) []byte {
	builder := flatbuffers.NewBuilder(1024)

	// Children must be finished before the table that points at them
	deck := encodePile(builder, s.Table.Deck)
	foundations := encodePiles(builder, s.Table.Foundations)
	tableau := encodePiles(builder, s.Table.Tableau)
	id := builder.CreateString(s.ID.String())
	variant := builder.CreateString(string(s.Variant))

	builder.StartObject(snapshotFields)
	builder.PrependUOffsetTSlot(snapshotID, id, 0)
	builder.PrependUOffsetTSlot(snapshotVariant, variant, 0)
	builder.PrependBoolSlot(snapshotFinished, s.Finished(), false)
	builder.PrependUint32Slot(snapshotMoves, uint32(s.Moves()), 0)
	builder.PrependUOffsetTSlot(snapshotDeck, deck, 0)
	builder.PrependUOffsetTSlot(snapshotFoundations, foundations, 0)
	builder.PrependUOffsetTSlot(snapshotTableau, tableau, 0)
	root := builder.EndObject()

	builder.Finish(root)
	return builder.FinishedBytes()
}

func encodePile(builder *flatbuffers.Builder, p *engine.Pile) flatbuffers.UOffsetT {
	cards := p.Cards()
	raw := make([]byte, len(cards))
	for i, c := range cards {
		raw[i] = packCard(c)
	}
	cardsOffset := builder.CreateByteVector(raw)

	builder.StartObject(pileFields)
	builder.PrependUOffsetTSlot(pileCards, cardsOffset, 0)
	builder.PrependBoolSlot(pileVisible, p.Visible(), false)
	return builder.EndObject()
}

func encodePiles(builder *flatbuffers.Builder, piles []*engine.Pile) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, len(piles))
	for i, p := range piles {
		offsets[i] = encodePile(builder, p)
	}

	builder.StartVector(flatbuffers.SizeUOffsetT, len(offsets), flatbuffers.SizeUOffsetT)
	// Add in reverse order (FlatBuffers convention)
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	return builder.EndVector(len(offsets))
}

func packCard(c *engine.Card) byte {
	b := c.Rank&rankMask | byte(c.Suit&suitMask)<<suitShift
	if c.FaceUp {
		b |= faceUpBit
	}
	return b
}

func unpackCard(b byte) CardView {
	return CardView{
		Rank:   b & rankMask,
		Suit:   engine.Suit(b >> suitShift & suitMask),
		FaceUp: b&faceUpBit != 0,
	}
}

// Decode parses a buffer produced by Encode
func Decode(buf []byte) (v *View, err error) {
	if len(buf) < 2*flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("snapshot too short: %d bytes", len(buf))
	}
	// flatbuffers accessors index without bounds checks of their own
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("malformed snapshot: %v", r)
		}
	}()

	root := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
	v = &View{}

	if o := field(&root, snapshotID); o != 0 {
		v.ID = string(root.ByteVector(o + root.Pos))
	}
	if o := field(&root, snapshotVariant); o != 0 {
		v.Variant = string(root.ByteVector(o + root.Pos))
	}
	if o := field(&root, snapshotFinished); o != 0 {
		v.Finished = root.GetBool(o + root.Pos)
	}
	if o := field(&root, snapshotMoves); o != 0 {
		v.Moves = root.GetUint32(o + root.Pos)
	}
	if o := field(&root, snapshotDeck); o != 0 {
		v.Deck = decodePile(buf, root.Indirect(o+root.Pos))
	}
	v.Foundations = decodePiles(&root, snapshotFoundations)
	v.Tableau = decodePiles(&root, snapshotTableau)
	return v, nil
}

// field returns the offset of slot within t, or 0 when absent
func field(t *flatbuffers.Table, slot int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(t.Offset(flatbuffers.VOffsetT(4 + 2*slot)))
}

func decodePile(buf []byte, pos flatbuffers.UOffsetT) PileView {
	t := flatbuffers.Table{Bytes: buf, Pos: pos}
	var pv PileView
	if o := field(&t, pileVisible); o != 0 {
		pv.Visible = t.GetBool(o + t.Pos)
	}
	if o := field(&t, pileCards); o != 0 {
		raw := t.ByteVector(o + t.Pos)
		pv.Cards = make([]CardView, len(raw))
		for i, b := range raw {
			pv.Cards[i] = unpackCard(b)
		}
	}
	return pv
}

func decodePiles(t *flatbuffers.Table, slot int) []PileView {
	o := field(t, slot)
	if o == 0 {
		return nil
	}
	n := t.VectorLen(o)
	start := t.Vector(o)
	piles := make([]PileView, n)
	for i := 0; i < n; i++ {
		elem := start + flatbuffers.UOffsetT(i)*flatbuffers.SizeUOffsetT
		piles[i] = decodePile(t.Bytes, t.Indirect(elem))
	}
	return piles
}
