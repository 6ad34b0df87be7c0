package engine

import (
	"fmt"
	"strings"

	"github.com/rhuss/mathsolver/pkg/provider"
)

// Attempt records one failed provider call.
type Attempt struct {
	Provider string
	Failure  provider.Failure
}

// Outcome is the result of running the chain once. When solved, Attempts
// holds the failures that preceded the answer. Otherwise Attempts lists
// every provider's failure in chain order.
type Outcome struct {
	Text     string
	Provider string
	Attempts []Attempt

	solved bool
}

// Solved reports whether a provider answered.
func (o Outcome) Solved() bool {
	return o.solved
}

// ExhaustedError is returned by SolveQuestion when no provider answered.
type ExhaustedError struct {
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	if len(e.Attempts) == 0 {
		return "no providers configured"
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.Provider + ": " + a.Failure.Error()
	}
	return fmt.Sprintf("all %d providers failed: %s", len(e.Attempts), strings.Join(parts, "; "))
}
