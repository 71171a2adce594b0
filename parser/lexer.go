package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/arr-ai/regexphrase/ast"
)

// classes maps every character class phrase of the grammar to its node kind.
var classes = map[string]ast.Kind{
	"letter":           ast.KindLetter,
	"digit":            ast.KindDigit,
	"space":            ast.KindSpace,
	"any character":    ast.KindAny,
	"uppercase letter": ast.KindUpper,
	"lowercase letter": ast.KindLower,
	"vowel":            ast.KindVowel,
	"consonant":        ast.KindConsonant,
	"word character":   ast.KindWord,
	"alphanumeric":     ast.KindAlphanumeric,
	"hex digit":        ast.KindHexDigit,
	"whitespace":       ast.KindWhitespace,
	"non whitespace":   ast.KindNonWhitespace,
}

var (
	connectives = []string{"followed by", "or"}
	quantifiers = []string{
		"optional", "one or more", "zero or more", "exactly", "times",
		"between", "and", "at least", "at most",
	}
	structure = []string{"group", "end group", "except", "range", "to"}
)

// ClassPhrases returns the class phrases, longest first.
func ClassPhrases() []string {
	return longestFirst(keys(classes))
}

// Connectives returns the words joining elements of a phrase.
func Connectives() []string { return append([]string(nil), connectives...) }

// QuantifierWords returns the words that build quantifiers.
func QuantifierWords() []string { return append([]string(nil), quantifiers...) }

func keys(m map[string]ast.Kind) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}

func longestFirst(words []string) []string {
	words = append([]string(nil), words...)
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}

// alternation builds a word-bounded alternation that prefers longer words.
func alternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range longestFirst(words) {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return `(?:` + strings.Join(quoted, "|") + `)\b`
}

func keywords() []string {
	var all []string
	for _, group := range [][]string{connectives, quantifiers, structure} {
		all = append(all, group...)
	}
	return all
}

// phraseLexer tokenizes canonical text. Multi-word keywords are single
// tokens, so "followedby" can never pass for "followed by".
var phraseLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Class", Pattern: alternation(keys(classes))},
	{Name: "Keyword", Pattern: alternation(keywords())},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Literal", Pattern: `'(?:\\.|[^'\\])*'|"(?:\\.|[^"\\])*"`},
	{Name: "Word", Pattern: `[^\s'"]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})
