// apps/solver/internal/bench/bench.go
//
// Self-play benchmark for the picker's ranking.
// For each answer a round is played by always guessing the first suggestion
// and feeding back the real score, until the round finishes.
//
// Results are summarized as a guess-count histogram plus the failures, which
// is the number to watch when tuning the ranking heuristic.

package bench

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/round"
)

// Options tunes a benchmark run.
type Options struct {
	// Progress receives the progress bar. nil disables it.
	Progress io.Writer
	// Limit caps the number of answers played. Zero plays all of them.
	Limit int
}

// Game is the outcome of one simulated round.
type Game struct {
	Answer  string      `json:"answer"`
	State   round.State `json:"state"`
	Guesses []string    `json:"guesses"`
}

// Report aggregates a benchmark run.
type Report struct {
	Played    int         `json:"played"`
	Solved    int         `json:"solved"`
	Histogram map[int]int `json:"histogram"` // guesses used → solved rounds
	Failures  []Game      `json:"failures"`
}

// Average returns the mean guess count over solved rounds.
func (r Report) Average() float64 {
	if r.Solved == 0 {
		return 0
	}
	total := 0
	for n, c := range r.Histogram {
		total += n * c
	}
	return float64(total) / float64(r.Solved)
}

// String renders a short human summary.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "played %d, solved %d, failed %d, average %.3f guesses\n",
		r.Played, r.Solved, len(r.Failures), r.Average())
	keys := make([]int, 0, len(r.Histogram))
	for k := range r.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %d: %d\n", k, r.Histogram[k])
	}
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "  failed %s (%s): %s\n", f.Answer, f.State, strings.Join(f.Guesses, ", "))
	}
	return b.String()
}

// Play simulates one round against answer.
func Play(dictionary []string, answer string) Game {
	g := Game{Answer: answer, State: round.StatePlaying}
	answer, err := game.ParseGuess(answer)
	if err != nil {
		// nothing in the candidate set can ever match it
		g.State = round.StateExhausted
		return g
	}
	r := round.New(dictionary)
	for !g.State.Finished() {
		suggestions := r.Suggestions()
		if len(suggestions) == 0 {
			g.State = round.StateExhausted
			break
		}
		guess := suggestions[0]
		turn, err := game.ScoreTurn(answer, guess)
		if err != nil {
			g.State = round.StateExhausted
			break
		}
		g.Guesses = append(g.Guesses, guess)
		g.State, _ = r.Apply(turn)
	}
	return g
}

// Run plays every answer (up to opts.Limit) and aggregates the outcomes.
// It stops early, returning the partial report, if ctx is cancelled.
func Run(ctx context.Context, dictionary, answers []string, opts Options) (Report, error) {
	if opts.Limit > 0 && opts.Limit < len(answers) {
		answers = answers[:opts.Limit]
	}
	rep := Report{Histogram: make(map[int]int)}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(answers),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("solving"),
			progressbar.OptionShowCount(),
		)
	}

	for _, answer := range answers {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		g := Play(dictionary, answer)
		rep.Played++
		if g.State == round.StateWon {
			rep.Solved++
			rep.Histogram[len(g.Guesses)]++
		} else {
			rep.Failures = append(rep.Failures, g)
			log.Debug().Str("answer", answer).Str("state", string(g.State)).Strs("guesses", g.Guesses).Msg("unsolved")
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	log.Info().Int("played", rep.Played).Int("solved", rep.Solved).Float64("average", rep.Average()).Msg("benchmark finished")
	return rep, nil
}
