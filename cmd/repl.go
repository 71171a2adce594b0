package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

func (s session) repl(history string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "phrase> ",
		HistoryFile:     history,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	s.out = rl.Stdout()
	fmt.Fprintln(s.out, heading("Interactive mode (TAB completes)."))
	fmt.Fprintln(s.out, heading("Commands: help, examples, tokens, exit."))

	for {
		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			if line == "" {
				return nil
			}
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}
		if s.handle(line) {
			return nil
		}
	}
}

// handle runs one interactive line and reports whether the session is over.
func (s session) handle(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit":
		fmt.Fprintln(s.out, heading("Bye."))
		return true
	case "help":
		fmt.Fprint(s.out, helpText())
	case "examples":
		fmt.Fprint(s.out, examplesText())
	case "tokens":
		fmt.Fprint(s.out, tokensText())
	case "":
		fmt.Fprintln(s.out, warning("no phrase given"))
	default:
		// Errors are already printed.
		_ = s.convert(line)
	}
	return false
}
