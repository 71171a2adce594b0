package cmd

import (
	"strings"

	"github.com/arr-ai/regexphrase/parser"
)

func helpText() string {
	return heading("Commands") + `
  help       show this help
  examples   example phrases
  tokens     phrase vocabulary
  exit       leave interactive mode
`
}

var examples = []struct {
	title   string
	phrases []string
}{
	{"Basics", []string{
		"letter followed by digit",
		"uppercase letter followed by digit zero or more",
		"'hello' followed by digit between 2 and 4 times",
		"letter one or more or digit one or more",
	}},
	{"Classes", []string{
		"vowel followed by consonant",
		"word character one or more",
		"alphanumeric at least 3 times",
		"whitespace at most 2 times",
		"non whitespace one or more",
	}},
	{"Ranges", []string{"range 'a' to 'z' one or more"}},
	{"Groups", []string{"group digit followed by letter end group 3 times"}},
	{"Negation", []string{"letter except 'a'", "any character except digits"}},
	{"Loose English", []string{
		"digits that appear three times",
		"letters then digits",
		"digit two thousand and eight times",
	}},
}

func examplesText() string {
	var sb strings.Builder
	sb.WriteString(heading("Example phrases"))
	sb.WriteString("\n")
	for _, group := range examples {
		sb.WriteString("\n" + success(group.title) + "\n")
		for _, p := range group.phrases {
			sb.WriteString("  " + p + "\n")
		}
	}
	return sb.String()
}

func tokensText() string {
	var sb strings.Builder
	list := func(title string, words []string) {
		sb.WriteString("\n" + success(title) + "\n")
		for _, w := range words {
			sb.WriteString("  " + w + "\n")
		}
	}
	sb.WriteString(heading("Vocabulary"))
	sb.WriteString("\n")
	list("Classes", parser.ClassPhrases())
	list("Literals", []string{"'a'", `"hello"`})
	list("Ranges", []string{"range 'x' to 'y'"})
	list("Repetition", []string{
		"optional", "one or more", "zero or more", "N times", "exactly N times",
		"between N and M times", "at least N times", "at most N times",
	})
	list("Structure", []string{"group ... end group", "except"})
	list("Connectives", parser.Connectives())
	return sb.String()
}
