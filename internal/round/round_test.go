package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

var dict = []string{"crane", "trace", "slate", "place", "grade", "sloth", "pious", "dumpy"}

func scored(t *testing.T, answer, guess string) game.Turn {
	t.Helper()
	tt, err := game.ScoreTurn(answer, guess)
	require.NoError(t, err)
	return tt
}

func TestNew(t *testing.T) {
	r := New(dict)
	assert.Len(t, r.ID, 16)
	assert.Equal(t, StatePlaying, r.State())
	assert.Equal(t, game.MaxGuesses, r.MaxTurns)
	assert.Equal(t, len(dict), r.Remaining())
	assert.Len(t, r.Suggestions(), len(dict))
	assert.NotEqual(t, r.ID, New(dict).ID)
}

func TestApply_Won(t *testing.T) {
	r := New(dict)
	st, err := r.Apply(scored(t, "grade", "slate"))
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)
	assert.Contains(t, r.Suggestions(), "grade")

	st, err = r.Apply(scored(t, "grade", "grade"))
	require.NoError(t, err)
	assert.Equal(t, StateWon, st)
	assert.True(t, st.Finished())
	assert.Len(t, r.Turns(), 2)

	_, err = r.Apply(scored(t, "grade", "grade"))
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApply_Exhausted(t *testing.T) {
	r := New(dict)
	fb, err := game.ParseReply("+....")
	require.NoError(t, err)
	tt, err := game.NewTurn("crane", fb)
	require.NoError(t, err)

	st, err := r.Apply(tt)
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, st)
	assert.Equal(t, 0, r.Remaining())
	assert.Empty(t, r.Suggestions())
}

func TestApply_Lost(t *testing.T) {
	r := New([]string{"aaaaa", "bbbbb", "ccccc"})
	r.MaxTurns = 2
	// guessing a word outside the candidates with no information keeps them all
	st, err := r.Apply(scored(t, "aaaaa", "zzzzz"))
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)

	st, err = r.Apply(scored(t, "aaaaa", "yyyyy"))
	require.NoError(t, err)
	assert.Equal(t, StateLost, st)
	assert.Equal(t, 3, r.Remaining())
}

func TestFrequencies(t *testing.T) {
	r := New([]string{"crane", "slate"})
	f := r.Frequencies()
	assert.Equal(t, 2, f.Of('a'))
	assert.Equal(t, 2, f.Of('e'))
	assert.Equal(t, 1, f.Of('c'))
}
