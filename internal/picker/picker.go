// apps/solver/internal/picker/picker.go
//
// Candidate picker for hard-mode solving.
// Responsibilities:
//   - Build the candidate set from a raw dictionary (filter + normalize + rank).
//   - Prune candidates with the constraints carried by each turn.
//   - Expose the ranked survivors and a letter-frequency summary.
//
// Ranking: candidates are kept sorted by ascending number of distinct
// letters, so the tail holds the words that probe the most of the alphabet.
// Suggestions are read from the tail backwards.
//
// A Picker is owned by one round and is not safe for concurrent use.

package picker

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// TopLen is the number of suggestions returned by Top10Words.
const TopLen = 10

// Picker holds the words still consistent with every turn taken so far.
type Picker struct {
	words []string
}

// New filters dictionary down to five-letter ASCII words, lowercases them and
// orders them by distinct-letter count. dictionary itself is left untouched.
func New(dictionary []string) *Picker {
	type ranked struct {
		word   string
		unique uint
	}
	rs := make([]ranked, 0, len(dictionary))
	for _, w := range dictionary {
		if len(w) != game.WordLen || !isASCIIAlpha(w) {
			continue
		}
		w = strings.ToLower(w)
		rs = append(rs, ranked{word: w, unique: uniqueLetters(w)})
	}
	slices.SortStableFunc(rs, func(a, b ranked) int { return cmp.Compare(a.unique, b.unique) })

	p := &Picker{words: make([]string, len(rs))}
	for i, r := range rs {
		p.words[i] = r.word
	}
	log.Debug().Int("entries", len(dictionary)).Int("candidates", len(p.words)).Msg("picker ready")
	return p
}

// Remaining reports the current candidate count. Zero means the feedback so
// far matches no dictionary word.
func (p *Picker) Remaining() int { return len(p.words) }

// TakeTurn prunes the candidate set with every cell of t, in position order.
func (p *Picker) TakeTurn(t game.Turn) {
	for pos, c := range t {
		switch c.Feedback {
		case game.FeedbackExact:
			p.keepLetterAt(c.Letter, pos)
		case game.FeedbackPresent:
			p.keepContaining(c.Letter)
			p.dropLetterAt(c.Letter, pos)
		case game.FeedbackAbsent:
			if matchedElsewhere(t, c.Letter) {
				// The letter is accounted for by another cell; only this slot is wrong.
				p.dropLetterAt(c.Letter, pos)
			} else {
				p.dropContaining(c.Letter)
			}
		}
	}
	log.Debug().Str("turn", t.String()).Int("remaining", len(p.words)).Msg("turn applied")
}

// TopWords yields up to n candidates, most distinct letters first.
// The sequence reads the live candidate set each time it is ranged over.
func (p *Picker) TopWords(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, taken := len(p.words)-1, 0; i >= 0 && taken < n; i, taken = i-1, taken+1 {
			if !yield(p.words[i]) {
				return
			}
		}
	}
}

// Top10Words yields the TopLen best suggestions.
func (p *Picker) Top10Words() iter.Seq[string] { return p.TopWords(TopLen) }

// Words returns a copy of the candidates in ranked storage order.
func (p *Picker) Words() []string { return slices.Clone(p.words) }

// matchedElsewhere reports whether letter is marked exact or present in any
// cell of t. An absent cell never matches itself.
func matchedElsewhere(t game.Turn, letter byte) bool {
	for _, c := range t {
		if c.Letter == letter && (c.Feedback == game.FeedbackExact || c.Feedback == game.FeedbackPresent) {
			return true
		}
	}
	return false
}

func (p *Picker) retain(keep func(w string) bool) {
	p.words = slices.DeleteFunc(p.words, func(w string) bool { return !keep(w) })
}

func (p *Picker) keepLetterAt(letter byte, pos int) {
	p.retain(func(w string) bool { return w[pos] == letter })
	log.Trace().Str("letter", string(letter)).Int("pos", pos).Int("remaining", len(p.words)).Msg("kept words with letter in position")
}

func (p *Picker) dropLetterAt(letter byte, pos int) {
	p.retain(func(w string) bool { return w[pos] != letter })
	log.Trace().Str("letter", string(letter)).Int("pos", pos).Int("remaining", len(p.words)).Msg("dropped words with letter in position")
}

func (p *Picker) keepContaining(letter byte) {
	p.retain(func(w string) bool { return strings.IndexByte(w, letter) >= 0 })
	log.Trace().Str("letter", string(letter)).Int("remaining", len(p.words)).Msg("kept words containing letter")
}

func (p *Picker) dropContaining(letter byte) {
	p.retain(func(w string) bool { return strings.IndexByte(w, letter) < 0 })
	log.Trace().Str("letter", string(letter)).Int("remaining", len(p.words)).Msg("dropped words containing letter")
}

// isASCIIAlpha reports whether s is made only of A–Z / a–z.
func isASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
