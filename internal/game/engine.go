// apps/solver/internal/game/engine.go
//
// Reference scorer for the puzzle.
// The solver never sees the answer during play; Score exists so that
// simulations and tests can produce the same replies the real puzzle would.
//
// Notes:
//   - Inputs are expected to be lowercase a–z of equal length.
//   - Repeated letters are handled with the classic two-pass count, so a
//     letter is never marked exact/present more times than it occurs.

package game

// Score implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non‑exact) answer letters by letter index.
//
// Pass 2:
//   - For each non‑exact guess letter: if there is remaining count for that
//     letter, mark present and decrement the count; otherwise mark absent.
func Score(answer, guess string) []Feedback {
	n := len(guess)
	res := make([]Feedback, n)
	if len(answer) != n {
		for i := range res {
			res[i] = FeedbackAbsent
		}
		return res
	}

	// Letter frequency for the non‑exact positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = FeedbackExact
		} else if j := idx(answer[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == FeedbackExact {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = FeedbackPresent
			counts[j]--
		} else {
			res[i] = FeedbackAbsent
		}
	}
	return res
}

// ScoreTurn scores guess against answer and zips the result into a Turn.
func ScoreTurn(answer, guess string) (Turn, error) {
	return NewTurn(guess, Score(answer, guess))
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }
