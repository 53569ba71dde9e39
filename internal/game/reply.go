// apps/solver/internal/game/reply.go
//
// Text formats used by the shells to describe a turn:
//   - a guess: five ASCII letters, any case, surrounding space ignored.
//   - a reply: five symbols, '+' exact, '.' absent, '-' present.

package game

import (
	"fmt"
	"strings"
)

const (
	ReplyExact   = '+'
	ReplyAbsent  = '.'
	ReplyPresent = '-'
)

// ParseGuess normalizes raw input into a lowercase five-letter guess.
func ParseGuess(s string) (string, error) {
	g := strings.ToLower(strings.TrimSpace(s))
	if len(g) != WordLen {
		return "", fmt.Errorf("%w: expected %d characters", ErrInvalidGuess, WordLen)
	}
	if !isAlpha(g) {
		return "", fmt.Errorf("%w: expected alphabetical characters", ErrInvalidGuess)
	}
	return g, nil
}

// ParseReply decodes a symbol string like "+.-.." into feedback values.
func ParseReply(s string) ([]Feedback, error) {
	s = strings.TrimSpace(s)
	if len(s) != WordLen {
		return nil, fmt.Errorf("%w: expected %d characters", ErrInvalidReply, WordLen)
	}
	out := make([]Feedback, WordLen)
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case ReplyExact:
			out[i] = FeedbackExact
		case ReplyAbsent:
			out[i] = FeedbackAbsent
		case ReplyPresent:
			out[i] = FeedbackPresent
		default:
			return nil, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidReply, s[i])
		}
	}
	return out, nil
}

// FormatReply is the inverse of ParseReply. Unknown values render as '?'.
func FormatReply(fb []Feedback) string {
	var b strings.Builder
	b.Grow(len(fb))
	for _, f := range fb {
		switch f {
		case FeedbackExact:
			b.WriteByte(ReplyExact)
		case FeedbackAbsent:
			b.WriteByte(ReplyAbsent)
		case FeedbackPresent:
			b.WriteByte(ReplyPresent)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// IsQuit reports whether the input asks to leave the shell.
func IsQuit(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exit", "quit", "q":
		return true
	}
	return false
}
