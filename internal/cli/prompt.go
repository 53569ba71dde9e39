package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// readInput prompts until a line of game.WordLen characters (or a quit word)
// is entered.
func (s *Shell) readInput(name, prompt string) (string, error) {
	for {
		fmt.Fprintf(s.opts.Out, "%s: ", prompt)
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return "", fmt.Errorf("read %s: %w", name, err)
			}
			return "", io.EOF
		}
		line := strings.TrimSpace(s.sc.Text())
		if game.IsQuit(line) {
			return "", ErrQuit
		}
		if len(line) != game.WordLen {
			fmt.Fprintf(s.opts.Err, "illegal %s: expected %d characters\n", name, game.WordLen)
			continue
		}
		return line, nil
	}
}

func (s *Shell) readGuess() (string, error) {
	for {
		in, err := s.readInput("input", "input guess")
		if err != nil {
			return "", err
		}
		g, err := game.ParseGuess(in)
		if err != nil {
			fmt.Fprintln(s.opts.Err, "illegal input: expected alphabetical characters")
			continue
		}
		return g, nil
	}
}

func (s *Shell) readReply() ([]game.Feedback, error) {
	prompt := fmt.Sprintf("input reply (miss: '%c', hit: '%c' partial: '%c')",
		game.ReplyAbsent, game.ReplyExact, game.ReplyPresent)
	for {
		in, err := s.readInput("reply", prompt)
		if err != nil {
			return nil, err
		}
		fb, err := game.ParseReply(in)
		if err != nil {
			fmt.Fprintf(s.opts.Err, "illegal reply: expected only '%c', '%c' or '%c'\n",
				game.ReplyAbsent, game.ReplyExact, game.ReplyPresent)
			continue
		}
		return fb, nil
	}
}
