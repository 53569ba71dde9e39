package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurn(t *testing.T) {
	exact := []Feedback{FeedbackExact, FeedbackExact, FeedbackExact, FeedbackExact, FeedbackExact}

	tests := []struct {
		name    string
		guess   string
		reply   []Feedback
		wantErr error
	}{
		{"valid", "crane", exact, nil},
		{"uppercase is lowered", "CRANE", exact, nil},
		{"short guess", "cran", exact, ErrInvalidGuess},
		{"non alpha guess", "cr4ne", exact, ErrInvalidGuess},
		{"short reply", "crane", exact[:4], ErrInvalidReply},
		{"unknown feedback", "crane", []Feedback{"exact", "exact", "green", "exact", "exact"}, ErrInvalidReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn, err := NewTurn(tt.guess, tt.reply)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "crane", turn.Word())
			assert.True(t, turn.Solved())
		})
	}
}

func TestTurnInspection(t *testing.T) {
	fb, err := ParseReply("+.-..")
	require.NoError(t, err)
	turn, err := NewTurn("crane", fb)
	require.NoError(t, err)

	assert.Equal(t, Cell{Letter: 'c', Feedback: FeedbackExact}, turn[0])
	assert.Equal(t, Cell{Letter: 'a', Feedback: FeedbackPresent}, turn[2])
	assert.Equal(t, fb, turn.Feedback())
	assert.False(t, turn.Solved())
	assert.Equal(t, "crane +.-..", turn.String())

	again, err := NewTurn("crane", fb)
	require.NoError(t, err)
	assert.Equal(t, turn, again)
}

func TestParseGuess(t *testing.T) {
	g, err := ParseGuess("  Slate \n")
	require.NoError(t, err)
	assert.Equal(t, "slate", g)

	for _, in := range []string{"", "abc", "toolong", "sl@te"} {
		_, err := ParseGuess(in)
		assert.True(t, errors.Is(err, ErrInvalidGuess), "input %q", in)
	}
}

func TestParseReply(t *testing.T) {
	fb, err := ParseReply("+-.+-")
	require.NoError(t, err)
	assert.Equal(t, []Feedback{FeedbackExact, FeedbackPresent, FeedbackAbsent, FeedbackExact, FeedbackPresent}, fb)
	assert.Equal(t, "+-.+-", FormatReply(fb))

	for _, in := range []string{"++++", "+++++.", "++x++"} {
		_, err := ParseReply(in)
		assert.ErrorIs(t, err, ErrInvalidReply, "input %q", in)
	}
}

func TestIsQuit(t *testing.T) {
	for _, in := range []string{"q", "QUIT", " exit "} {
		assert.True(t, IsQuit(in), in)
	}
	assert.False(t, IsQuit("quite"))
}

func TestScore(t *testing.T) {
	tests := []struct {
		answer, guess, want string
	}{
		{"crane", "crane", "+++++"},
		{"crane", "trace", ".++-+"},
		{"sassy", "spass", "+.-+-"},
		{"abbey", "babes", "--++."},
		{"robot", "boots", "-+--."},
		{"those", "geese", "...++"},
	}

	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.guess, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReply(Score(tt.answer, tt.guess)))
		})
	}
}

func TestScoreTurn(t *testing.T) {
	turn, err := ScoreTurn("crane", "crane")
	require.NoError(t, err)
	assert.True(t, turn.Solved())

	_, err = ScoreTurn("crane", "cr")
	assert.ErrorIs(t, err, ErrInvalidGuess)
}
