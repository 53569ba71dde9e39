package picker

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// AlphaLen is the size of the alphabet candidates are drawn from.
const AlphaLen = 26

// Frequencies counts, per letter a..z, how many candidates contain it.
type Frequencies [AlphaLen]int

// LetterCount is one entry of a ranked frequency summary.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// letterSet returns the set of letter indexes used by a lowercase word.
func letterSet(w string) *bitset.BitSet {
	s := bitset.New(AlphaLen)
	for i := 0; i < len(w); i++ {
		s.Set(uint(w[i] - 'a'))
	}
	return s
}

// uniqueLetters counts the distinct letters in a lowercase word.
func uniqueLetters(w string) uint { return letterSet(w).Count() }

// LetterFrequencies reports how many remaining candidates contain each letter
// at least once. Repeats inside one word count once.
func (p *Picker) LetterFrequencies() Frequencies {
	var f Frequencies
	for _, w := range p.words {
		s := letterSet(w)
		for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
			f[i]++
		}
	}
	return f
}

// Of returns the count for a lowercase letter.
func (f Frequencies) Of(letter byte) int {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return f[letter-'a']
}

// Ranked lists letters with a non-zero count, most frequent first.
// Equal counts keep alphabetical order.
func (f Frequencies) Ranked() []LetterCount {
	out := make([]LetterCount, 0, AlphaLen)
	for i, n := range f {
		if n > 0 {
			out = append(out, LetterCount{Letter: string(rune('a' + i)), Count: n})
		}
	}
	slices.SortStableFunc(out, func(a, b LetterCount) int { return cmp.Compare(b.Count, a.Count) })
	return out
}
