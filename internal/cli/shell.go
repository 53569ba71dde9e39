// apps/solver/internal/cli/shell.go
//
// Line-based interactive solver.
//
// Each round starts from a fresh copy of the dictionary. Per turn the user
// types the guess they played and the reply the puzzle gave, e.g.
//
//	input guess: slate
//	input reply (miss: '.', hit: '+' partial: '-'): ..+.+
//
// and the shell prints the best remaining guesses. A round restarts when it is
// solved, runs out of guesses, or no candidate matches the replies anymore.
// "exit", "quit" or "q" at any prompt ends the session.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/picker"
	"github.com/robalobadob/wordle/apps/solver/internal/round"
)

// ErrQuit is returned by the prompts when the user asks to leave.
var ErrQuit = errors.New("quit")

const bestGuessSeparator = ", "

// Options configures a Shell.
type Options struct {
	Dictionary      []string
	ShowFrequencies bool
	Color           bool

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Shell runs rounds against one reader/writer pair.
type Shell struct {
	opts Options
	sc   *bufio.Scanner
}

func New(opts Options) *Shell {
	return &Shell{opts: opts, sc: bufio.NewScanner(opts.In)}
}

// Run plays rounds until the user quits, input ends, or ctx is cancelled.
// Quitting and end of input are not errors.
func (s *Shell) Run(ctx context.Context) error {
	for {
		err := s.playRound(ctx)
		switch {
		case errors.Is(err, ErrQuit), errors.Is(err, io.EOF):
			log.Debug().Err(err).Msg("shell finished")
			return nil
		case err != nil:
			return err
		}
	}
}

func (s *Shell) playRound(ctx context.Context) error {
	r := round.New(s.opts.Dictionary)
	log.Trace().Str("round", r.ID).Msg("created fresh round from dictionary")
	fmt.Fprintf(s.opts.Out, "\nStarting new game - %d Potential Solutions\n", r.Remaining())

	for turnIndex := 0; !r.State().Finished(); turnIndex++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Trace().Int("turn", turnIndex).Msg("starting new turn")

		guess, err := s.readGuess()
		if err != nil {
			return err
		}
		reply, err := s.readReply()
		if err != nil {
			return err
		}
		turn, err := game.NewTurn(guess, reply)
		if err != nil {
			// both halves were validated by the prompts
			return err
		}

		state, err := r.Apply(turn)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.opts.Out, s.tiles(turn))

		switch state {
		case round.StateWon:
			fmt.Fprintf(s.opts.Out, "Solved in %d guesses - Restarting\n", len(r.Turns()))
			continue
		case round.StateExhausted:
			fmt.Fprintf(s.opts.Out, "0/%d Words remaining - Restarting\n", len(s.opts.Dictionary))
			continue
		}

		s.printBestGuesses(r)
		if s.opts.ShowFrequencies {
			s.printLetterFrequencies(r.Frequencies())
		}
		if state == round.StateLost {
			fmt.Fprintf(s.opts.Out, "Out of guesses after %d turns - Restarting\n", r.MaxTurns)
		}
	}
	return nil
}

// printBestGuesses prints up to picker.TopLen suggestions.
func (s *Shell) printBestGuesses(r *round.Round) {
	remaining := r.Remaining()
	best := r.Suggestions()
	fmt.Fprintf(s.opts.Out, "%d/%d Best Guesses: %s\n", len(best), remaining, strings.Join(best, bestGuessSeparator))
}

// printLetterFrequencies prints how many remaining words contain each letter.
func (s *Shell) printLetterFrequencies(f picker.Frequencies) {
	ranked := f.Ranked()
	parts := make([]string, len(ranked))
	for i, lc := range ranked {
		parts[i] = fmt.Sprintf("%s: %d", strings.ToUpper(lc.Letter), lc.Count)
	}
	fmt.Fprintf(s.opts.Out, "Frequencies: %s\n", strings.Join(parts, " - "))
}

// tiles renders the turn as coloured letters (green exact, yellow present,
// grey absent), or as "CRANE +.-.." when colour is off.
func (s *Shell) tiles(t game.Turn) string {
	if !s.opts.Color {
		return strings.ToUpper(t.Word()) + " " + game.FormatReply(t.Feedback())
	}
	var b strings.Builder
	for _, c := range t {
		letter := strings.ToUpper(string(c.Letter))
		switch c.Feedback {
		case game.FeedbackExact:
			b.WriteString(color.Ize(color.Green, letter))
		case game.FeedbackPresent:
			b.WriteString(color.Ize(color.Yellow, letter))
		default:
			b.WriteString(color.Ize(color.Gray, letter))
		}
	}
	return b.String()
}
