// apps/solver/internal/words/words.go
//
// Provides the dictionary the solver prunes from.
//
// Responsibilities:
//   - Load the dictionary from a file or fall back to the embedded default.
//   - Keep entries raw (trimmed, comments skipped); the picker does its own
//     length/alphabet filtering and lowercasing.
//   - Report simple stats for diagnostics.
//
// Source selection (Resolve):
//   1. An explicit path (e.g. from the -dictionary flag) wins.
//   2. Otherwise WORDS_DICTIONARY_FILE, if set.
//   3. Otherwise the embedded assets/dictionary.txt.
//
// The returned Dictionary is shared read-only by every round.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// EnvDictionaryFile names the environment variable holding a dictionary path.
const EnvDictionaryFile = "WORDS_DICTIONARY_FILE"

// Dictionary is an ordered list of raw entries. Treat it as immutable.
type Dictionary []string

// Resolve picks the dictionary path: flag value first, then the environment.
// An empty result means "use the embedded list".
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvDictionaryFile)
}

// Load reads the dictionary at path, or the embedded default when path is empty.
func Load(path string) (Dictionary, error) {
	if path == "" {
		list, err := assets.DictionaryList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded dictionary: %w", err)
		}
		log.Debug().Int("entries", len(list)).Msg("loaded default dictionary")
		return list, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open dictionary: %w", err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("entries", len(d)).Msg("processed word list")
	return d, nil
}

// Read loads one entry per line from r, skipping blanks and '#' comments.
func Read(r io.Reader) (Dictionary, error) {
	var out Dictionary
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Stats returns the raw entry count and how many entries are usable
// candidates (five ASCII letters).
func (d Dictionary) Stats() (entries int, candidates int) {
	for _, w := range d {
		if _, err := game.ParseGuess(w); err == nil && len(w) == game.WordLen {
			candidates++
		}
	}
	return len(d), candidates
}

// Candidates returns the usable entries lowercased, in dictionary order.
// Simulations use it as the answer pool.
func (d Dictionary) Candidates() []string {
	out := make([]string, 0, len(d))
	for _, w := range d {
		if g, err := game.ParseGuess(w); err == nil && len(w) == game.WordLen {
			out = append(out, g)
		}
	}
	return out
}
