package cmd

import (
	"strings"
	"unicode"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/regexphrase/parser"
)

// completer suggests vocabulary based on the word before the cursor. After a
// term it offers repetitions and connectives. After a repetition word it
// offers connectives. Otherwise it completes the partial word.
type completer struct {
	terms       []string
	repetitions []string
	connectives []string
	termSet     frozen.Set[string]
	repeatWords frozen.Set[string]
}

// repeatWords end a repetition. "or" is left out: after it comes a term.
var repeatWords = frozen.NewSet[string](
	"optional", "one", "zero", "times", "more", "between", "and", "at", "least", "most",
)

func newCompleter() *completer {
	terms := append(parser.ClassPhrases(), "'a'", "'1'", "'@'", "range", "group", "end group")
	repetitions := parser.QuantifierWords()

	return &completer{
		terms:       terms,
		repetitions: repetitions,
		connectives: append(parser.Connectives(), "except"),
		termSet:     frozen.NewSet[string](terms...),
		repeatWords: repeatWords,
	}
}

func (c *completer) all() []string {
	var all []string
	for _, group := range [][]string{c.terms, c.repetitions, c.connectives} {
		all = append(all, group...)
	}
	return all
}

func (c *completer) endsWithTerm(text string) bool {
	for _, t := range c.terms {
		if text == t || strings.HasSuffix(text, " "+t) {
			return true
		}
	}
	return false
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	before := string(line[:pos])
	text := strings.TrimSpace(before)
	spaced := pos > 0 && unicode.IsSpace(line[pos-1])

	whole := func(words []string) ([][]rune, int) {
		lead := ""
		if text != "" && !spaced {
			lead = " "
		}
		result := make([][]rune, 0, len(words))
		for _, w := range words {
			result = append(result, []rune(lead+w+" "))
		}
		return result, 0
	}

	fields := strings.Fields(text)
	switch {
	case text == "":
		return whole(c.all())
	case c.endsWithTerm(text):
		return whole(append(append([]string(nil), c.repetitions...), c.connectives...))
	case c.repeatWords.Has(fields[len(fields)-1]):
		return whole(c.connectives)
	case spaced:
		return whole(c.all())
	}

	last := fields[len(fields)-1]
	var result [][]rune
	for _, w := range c.all() {
		if strings.HasPrefix(w, last) {
			result = append(result, []rune(w[len(last):]+" "))
		}
	}
	return result, len([]rune(last))
}
