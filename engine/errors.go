package engine

import "fmt"

// Reasons carried by RuleError. Game engines add their own.
const (
	ReasonEmpty           = "empty pile"
	ReasonInitialMismatch = "initial value mismatch"
	ReasonStackViolated   = "stacking rule violated"
	ReasonPopDisabled     = "pop disabled"
	ReasonNoMovableRun    = "no movable run"
	ReasonInvalidMove     = "invalid move"
)

// RuleError reports an illegal player action. It is the only error type
// game engines return from Play.
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

// NewRuleError builds a RuleError from a format string
func NewRuleError(format string, args ...any) *RuleError {
	return &RuleError{Reason: fmt.Sprintf(format, args...)}
}
