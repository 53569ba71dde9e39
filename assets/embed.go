// Package assets embeds the default solver dictionary.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed dictionary.txt
var FS embed.FS

// DictionaryFile is the embedded default dictionary name inside FS.
const DictionaryFile = "dictionary.txt"

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DictionaryList returns the embedded dictionary entries in file order.
func DictionaryList() ([]string, error) {
	return readLines(DictionaryFile)
}
