// Package normalize rewrites loose English phrases into the canonical text
// accepted by the phrase grammar.
package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arr-ai/frozen"
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/regexphrase/numeral"
)

// Classes lists the character class phrases of the grammar, longest first so
// that alternations prefer "hex digit" over "digit".
var Classes = []string{
	"non whitespace",
	"uppercase letter",
	"lowercase letter",
	"word character",
	"any character",
	"alphanumeric",
	"whitespace",
	"consonant",
	"hex digit",
	"letter",
	"digit",
	"space",
	"vowel",
}

var stopWords = frozen.NewSet[string](
	"the", "a", "an", "this", "that", "which", "who", "whom",
	"pattern", "sequence", "find", "match", "should", "be",
	"like", "consisting", "made", "up", "into", "of",
	"string", "strings", "regex", "regular", "expression", "expressions",
	"please",
)

// IsStopWord reports whether w is dropped during normalization.
func IsStopWord(w string) bool {
	return stopWords.Has(w)
}

var synonyms = map[string]string{
	"digits":            "digit one or more",
	"numbers":           "digit one or more",
	"letters":           "letter one or more",
	"characters":        "any character one or more",
	"lowercase letters": "lowercase letter one or more",
	"uppercase letters": "uppercase letter one or more",
	"spaces":            "space one or more",
	"whitespaces":       "whitespace one or more",
	"non whitespaces":   "non whitespace one or more",
	"space character":   "space",
	"space characters":  "space one or more",
	"vowels":            "vowel one or more",
	"consonants":        "consonant one or more",
	"alphanumerics":     "alphanumeric one or more",
	"hex digits":        "hex digit one or more",
	"word characters":   "word character one or more",
}

type rewrite struct {
	name string
	re   *regexp.Regexp
	repl string
}

func (r rewrite) apply(text string) string {
	return r.re.ReplaceAllString(text, r.repl)
}

func mustRewrite(name, pattern, repl string) rewrite {
	return rewrite{name: name, re: regexp.MustCompile(pattern), repl: repl}
}

// Normalizer holds the compiled rewrite tables. It is immutable once built
// and safe for concurrent use.
type Normalizer struct {
	counts     []rewrite
	synonymRE  *regexp.Regexp
	connective []rewrite
	verbal     []rewrite
	sanity     []rewrite
	folds      []rewrite
	spaceRE    *regexp.Regexp
}

func New() *Normalizer {
	classes := make([]string, 0, len(Classes))
	for _, c := range Classes {
		classes = append(classes, regexp.QuoteMeta(c))
	}
	class := `(` + strings.Join(classes, "|") + `)`

	keys := make([]string, 0, len(synonyms))
	for k := range synonyms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}

	return &Normalizer{
		counts: []rewrite{
			mustRewrite("once", `\bonce\b`, "1 times"),
			mustRewrite("twice", `\btwice\b`, "2 times"),
			mustRewrite("thrice", `\bthrice\b`, "3 times"),
		},
		synonymRE: regexp.MustCompile(`\b(?:` + strings.Join(keys, "|") + `)\b`),
		connective: []rewrite{
			mustRewrite("then", `\bthen\b`, "followed by"),
			mustRewrite("next", `\bnext\b`, "followed by"),
			mustRewrite("optionally", `\boptionally\b`, "optional"),
		},
		verbal: []rewrite{
			mustRewrite("counted verb", `\b(?:appear|repeat)(?:s|ed)?\s+(\d+)\s+times\b`, "${1} times"),
			mustRewrite("bare verb", `\b(?:appear|repeat)(?:s|ed)?\b`, "one or more"),
		},
		sanity: []rewrite{
			mustRewrite("1 or more", `\b1 or more\b`, "one or more"),
			mustRewrite("0 or more", `\b0 or more\b`, "zero or more"),
			mustRewrite("between", `\bbetween\s+(\d+)\s+and\s+(\d+)\s+times\b`, "between ${1} and ${2} times"),
		},
		folds: []rewrite{
			mustRewrite("count before class",
				`\b(\d+) `+class+` one or more\b`, "${2} ${1} times"),
			mustRewrite("count after plus",
				`\b`+class+` one or more (\d+) times\b`, "${1} ${2} times"),
			mustRewrite("between after plus",
				`\b`+class+` one or more between (\d+) and (\d+) times\b`, "${1} between ${2} and ${3} times"),
			mustRewrite("twice after plus",
				`\b`+class+` one or more twice\b`, "${1} 2 times"),
			mustRewrite("double plus",
				`\bone or more one or more\b`, "one or more"),
			mustRewrite("except plus",
				`\bexcept `+class+` one or more\b`, "except ${1}"),
			mustRewrite("group twice after plus",
				`\b(group .*? end group) one or more twice\b`, "${1} 2 times"),
			mustRewrite("group count after plus",
				`\b(group .*? end group) one or more (\d+) times\b`, "${1} ${2} times"),
		},
		spaceRE: regexp.MustCompile(`\s+`),
	}
}

// Normalize rewrites phrase into canonical text. It never fails; text the
// grammar does not know passes through for the parser to reject.
func (n *Normalizer) Normalize(phrase string) string {
	text, quoted := shieldQuotes(lowerOutsideQuotes(phrase))

	text = dropStopWords(text)
	for _, r := range n.counts {
		text = r.apply(text)
	}
	text = n.synonymRE.ReplaceAllStringFunc(text, func(s string) string { return synonyms[s] })
	for _, r := range n.connective {
		text = r.apply(text)
	}
	for _, r := range n.verbal {
		text = r.apply(text)
	}
	text = numeral.ConvertNumwords(text)
	for _, r := range n.sanity {
		text = r.apply(text)
	}
	text = n.fold(text)

	text = strings.TrimSpace(n.spaceRE.ReplaceAllString(text, " "))
	text = restoreQuotes(text, quoted)

	logrus.Tracef("normalize: %q -> %q", phrase, text)
	return text
}

// fold repeats the class-aware folds, in order, until none of them fires.
// Every fold shortens the text, so the loop ends.
func (n *Normalizer) fold(text string) string {
	for {
		before := text
		for _, r := range n.folds {
			if next := r.apply(text); next != text {
				logrus.Tracef("normalize: fold %s: %q -> %q", r.name, text, next)
				text = next
			}
		}
		if text == before {
			return text
		}
	}
}

func dropStopWords(text string) string {
	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if !IsStopWord(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
