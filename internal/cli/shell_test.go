package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

var dict = []string{"crane", "trace", "slate", "place", "grade", "sloth", "pious", "dumpy"}

func run(t *testing.T, input string, freq bool) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	sh := New(Options{
		Dictionary:      dict,
		ShowFrequencies: freq,
		In:              strings.NewReader(input),
		Out:             &out,
		Err:             &errOut,
	})
	require.NoError(t, sh.Run(context.Background()))
	return out.String(), errOut.String()
}

func TestShell_SolveThenQuit(t *testing.T) {
	out, errOut := run(t, "slate\n..+.+\ngrade\n+++++\nq\n", false)

	assert.Empty(t, errOut)
	assert.Equal(t, 2, strings.Count(out, "Starting new game - 8 Potential Solutions"))
	assert.Contains(t, out, "SLATE ..+.+")
	assert.Contains(t, out, "2/2 Best Guesses: grade, crane")
	assert.Contains(t, out, "GRADE +++++")
	assert.Contains(t, out, "Solved in 2 guesses - Restarting")
}

func TestShell_Exhausted(t *testing.T) {
	out, _ := run(t, "crane\n+....\nquit\n", false)
	assert.Contains(t, out, "0/8 Words remaining - Restarting")
	assert.Equal(t, 2, strings.Count(out, "Starting new game"))
}

func TestShell_InvalidInputReprompts(t *testing.T) {
	out, errOut := run(t, "cr\nsl4te\nslate\n+++\n..x..\n..+.+\n", false)

	assert.Contains(t, errOut, "illegal input: expected 5 characters")
	assert.Contains(t, errOut, "illegal input: expected alphabetical characters")
	assert.Contains(t, errOut, "illegal reply: expected 5 characters")
	assert.Contains(t, errOut, "illegal reply: expected only")
	assert.Contains(t, out, "2/2 Best Guesses: grade, crane")
}

func TestShell_Frequencies(t *testing.T) {
	out, _ := run(t, "slate\n..+.+\n", true)
	// remaining crane and grade
	assert.Contains(t, out, "Frequencies: A: 2 - E: 2 - R: 2 - C: 1 - D: 1 - G: 1 - N: 1")
}

func TestShell_Lost(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 6; i++ {
		in.WriteString("zzzzz\n.....\n")
	}
	out, _ := run(t, in.String(), false)
	assert.Contains(t, out, "Out of guesses after 6 turns - Restarting")
	assert.Contains(t, out, "8/8 Best Guesses")
}

func TestShell_Color(t *testing.T) {
	sh := New(Options{Color: true})
	turn := mustTurn(t, "crane", "+-...")
	got := sh.tiles(turn)
	assert.Contains(t, got, "C")
	assert.NotEqual(t, "CRANE +-...", got)

	sh = New(Options{})
	assert.Equal(t, "CRANE +-...", sh.tiles(turn))
}

func TestShell_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	sh := New(Options{Dictionary: dict, In: strings.NewReader("slate\n"), Out: &out, Err: &out})
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

func mustTurn(t *testing.T, guess, reply string) game.Turn {
	t.Helper()
	fb, err := game.ParseReply(reply)
	require.NoError(t, err)
	turn, err := game.NewTurn(guess, fb)
	require.NoError(t, err)
	return turn
}
