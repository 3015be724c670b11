package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signalnine/solitaire/engine"
)

// parseMove reads one or two whitespace-separated targets:
//
//	d       the deck
//	tN      tableau pile N (1-based)
//	fN      foundation N (1-based)
//	q       quit
func parseMove(line string) (engine.Move, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("expected one or two targets, got %d", len(fields))
	}

	move := make(engine.Move, len(fields))
	for i, f := range fields {
		target, err := parseTarget(f)
		if err != nil {
			return nil, err
		}
		move[i] = target
	}
	return move, nil
}

func parseTarget(token string) (engine.Target, error) {
	switch token {
	case "d", "deck":
		return engine.Target{Kind: engine.LocationDeck}, nil
	case "q", "quit":
		return engine.Target{Kind: engine.LocationQuit}, nil
	}

	var kind engine.Location
	switch token[0] {
	case 't':
		kind = engine.LocationTableau
	case 'f':
		kind = engine.LocationFoundation
	default:
		return engine.Target{}, fmt.Errorf("unknown target %q", token)
	}

	n, err := strconv.Atoi(token[1:])
	if err != nil || n < 1 {
		return engine.Target{}, fmt.Errorf("bad pile number in %q", token)
	}
	return engine.Target{Kind: kind, Index: n - 1}, nil
}
