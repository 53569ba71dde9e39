// apps/solver/internal/game/types.go
//
// Core type definitions for the solver's constraint model.
// Defines:
//   - Feedback: per-letter result of a guess (exact/present/absent).
//   - Cell:     one guessed letter paired with its feedback.
//   - Turn:     a full guess, five cells in position order.
//
// These are plain values. The picker package consumes them; nothing here
// holds state between turns.

package game

import (
	"errors"
	"strings"
)

const (
	// WordLen is the number of letters in every guess and candidate.
	WordLen = 5
	// MaxGuesses bounds one round; the round is discarded after this many turns.
	MaxGuesses = 6
)

var (
	ErrInvalidGuess = errors.New("invalid guess")
	ErrInvalidReply = errors.New("invalid reply")
)

// Feedback represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is in the solution at this position.
//   - "present": letter is in the solution, but not at this position.
//   - "absent":  letter has no unaccounted occurrence in the solution.
type Feedback string

const (
	FeedbackExact   Feedback = "exact"
	FeedbackPresent Feedback = "present"
	FeedbackAbsent  Feedback = "absent"
)

// Valid reports whether f is one of the three known outcomes.
func (f Feedback) Valid() bool {
	switch f {
	case FeedbackExact, FeedbackPresent, FeedbackAbsent:
		return true
	}
	return false
}

// Cell pairs one lowercase letter with its feedback.
type Cell struct {
	Letter   byte     `json:"letter"`
	Feedback Feedback `json:"feedback"`
}

// Turn is one submitted guess zipped with its reply, position by position.
type Turn [WordLen]Cell

// NewTurn builds a Turn from a guess and its per-letter feedback.
// The guess is lowercased; it must be WordLen ASCII letters and reply must
// hold exactly WordLen valid feedback values.
func NewTurn(guess string, reply []Feedback) (Turn, error) {
	var t Turn
	guess = strings.ToLower(guess)
	if len(guess) != WordLen || !isAlpha(guess) {
		return t, ErrInvalidGuess
	}
	if len(reply) != WordLen {
		return t, ErrInvalidReply
	}
	for i := range t {
		if !reply[i].Valid() {
			return t, ErrInvalidReply
		}
		t[i] = Cell{Letter: guess[i], Feedback: reply[i]}
	}
	return t, nil
}

// Word returns the guessed word.
func (t Turn) Word() string {
	var b [WordLen]byte
	for i, c := range t {
		b[i] = c.Letter
	}
	return string(b[:])
}

// Feedback returns the reply half of the turn.
func (t Turn) Feedback() []Feedback {
	out := make([]Feedback, WordLen)
	for i, c := range t {
		out[i] = c.Feedback
	}
	return out
}

// Solved reports whether every cell is exact.
func (t Turn) Solved() bool {
	for _, c := range t {
		if c.Feedback != FeedbackExact {
			return false
		}
	}
	return true
}

func (t Turn) String() string {
	return t.Word() + " " + FormatReply(t.Feedback())
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
