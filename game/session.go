package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/signalnine/solitaire/engine"
)

// Session is one running game: the engine, its table and a move count
type Session struct {
	ID      uuid.UUID
	Variant Variant
	Table   *engine.Table

	game  Game
	opts  Options
	moves int
	quit  bool
}

// NewSession creates and sets up a game of the given variant
func NewSession(v Variant, opts Options) (*Session, error) {
	opts = opts.withDefaults()
	g, err := New(v, opts)
	if err != nil {
		return nil, err
	}

	table := engine.NewTable()
	if err := g.Setup(table); err != nil {
		return nil, fmt.Errorf("failed to set up %s: %w", v, err)
	}

	s := &Session{
		ID:      uuid.New(),
		Variant: v,
		Table:   table,
		game:    g,
		opts:    opts,
	}
	opts.logf("[%s] %s dealt, %d cards on the table", s.ID, v, table.CardCount())
	return s, nil
}

// Game returns the variant engine
func (s *Session) Game() Game {
	return s.game
}

// Play forwards m to the engine. A quit move ends the session.
func (s *Session) Play(m engine.Move) error {
	if s.Done() {
		return &engine.RuleError{Reason: "game is over"}
	}
	if m.IsQuit() {
		s.quit = true
		s.opts.logf("[%s] quit after %d moves", s.ID, s.moves)
		return nil
	}

	if err := s.game.Play(m); err != nil {
		s.opts.logf("[%s] rejected %s: %v", s.ID, m, err)
		return err
	}
	s.moves++
	if s.game.IsFinished() {
		s.opts.logf("[%s] %s won in %d moves", s.ID, s.Variant, s.moves)
	}
	return nil
}

// Moves returns the number of accepted moves
func (s *Session) Moves() int {
	return s.moves
}

// Finished reports whether the game has been won
func (s *Session) Finished() bool {
	return s.game.IsFinished()
}

// Quit reports whether the player left the game
func (s *Session) Quit() bool {
	return s.quit
}

// Done reports whether the session accepts no more moves
func (s *Session) Done() bool {
	return s.quit || s.game.IsFinished()
}
