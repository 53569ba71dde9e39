// apps/solver/internal/round/round.go
//
// One puzzle round: a fresh picker plus the turns applied to it.
// Responsibilities:
//   - Create rounds with a fixed turn budget (game.MaxGuesses).
//   - Apply turns in submission order and track the outcome.
//   - State transitions: playing → won | lost | exhausted.
//
// Notes:
//   - A solved turn ends the round without pruning.
//   - exhausted means the feedback matches no dictionary word; shells
//     respond by starting a new round.
//   - randomID() is a compact hex identifier for correlating server state.

package round

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"slices"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/picker"
)

// State is the coarse outcome of a round.
type State string

const (
	StatePlaying   State = "playing"
	StateWon       State = "won"
	StateLost      State = "lost"
	StateExhausted State = "exhausted"
)

// Finished reports whether no more turns are accepted.
func (s State) Finished() bool { return s != StatePlaying }

var ErrFinished = errors.New("round finished")

// Round holds the state of one solving session.
type Round struct {
	ID       string
	OwnerID  string // set by shells that attribute rounds; empty otherwise
	MaxTurns int

	picker *picker.Picker
	turns  []game.Turn
	state  State
}

// New starts a round over dictionary. The dictionary is copied by the picker
// and never modified.
func New(dictionary []string) *Round {
	return &Round{
		ID:       randomID(),
		MaxTurns: game.MaxGuesses,
		picker:   picker.New(dictionary),
		state:    StatePlaying,
	}
}

// Apply records t and prunes the candidates with it.
//
// State transitions:
//   - All cells exact → won.
//   - No candidates left → exhausted.
//   - Turn count reaches MaxTurns → lost.
func (r *Round) Apply(t game.Turn) (State, error) {
	if r.state.Finished() {
		return r.state, ErrFinished
	}
	r.turns = append(r.turns, t)

	if t.Solved() {
		r.state = StateWon
		return r.state, nil
	}
	r.picker.TakeTurn(t)

	switch {
	case r.picker.Remaining() == 0:
		r.state = StateExhausted
	case len(r.turns) >= r.MaxTurns:
		r.state = StateLost
	}
	return r.state, nil
}

func (r *Round) State() State { return r.state }

func (r *Round) Remaining() int { return r.picker.Remaining() }

// Suggestions returns the current top candidates, best first.
func (r *Round) Suggestions() []string {
	return slices.Collect(r.picker.Top10Words())
}

func (r *Round) Frequencies() picker.Frequencies { return r.picker.LetterFrequencies() }

// Turns returns a copy of the turns applied so far.
func (r *Round) Turns() []game.Turn { return slices.Clone(r.turns) }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
