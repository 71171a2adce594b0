// Package canon simplifies raw regexes into a canonical, more readable form.
package canon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/regexphrase/ast"
)

// DefaultMaxPasses bounds the fixed-point loop of a Canonicalizer built
// without the MaxPasses option.
const DefaultMaxPasses = 64

type rule struct {
	name    string
	re      *regexp2.Regexp
	rewrite func(re *regexp2.Regexp, s string) (string, error)
}

func replace(name, pattern, repl string) rule {
	return rule{
		name: name,
		re:   regexp2.MustCompile(pattern, regexp2.None),
		rewrite: func(re *regexp2.Regexp, s string) (string, error) {
			return re.Replace(s, repl, -1, -1)
		},
	}
}

func replaceFunc(name, pattern string, f func(m regexp2.Match) string) rule {
	return rule{
		name: name,
		re:   regexp2.MustCompile(pattern, regexp2.None),
		rewrite: func(re *regexp2.Regexp, s string) (string, error) {
			return re.ReplaceFunc(s, f, -1, -1)
		},
	}
}

const (
	class  = `(\[[^\]]+\])`
	group  = `(\([^\)]+\))`
	single = `([a-zA-Z0-9])`
)

// rules run in this order on every pass.
var rules = []rule{
	replace("class in parens", `\(`+class+`\)`, "${1}"),
	replace("char in parens", `\(`+single+`\)`, "${1}"),
	// A trailing quantifier binds to the last copy only, so it stays out of
	// the run.
	replaceFunc("repeated class", class+`\1+(?![*+?{])`, func(m regexp2.Match) string {
		token := m.GroupByNumber(1).String()
		return token + "{" + strconv.Itoa(len(m.String())/len(token)) + "}"
	}),
	replace("letter plus", `\[a-zA-Z\]\+`, "[A-Za-z]+"),
	replaceFunc("char alternation", `\((?:[a-zA-Z0-9]\|)+[a-zA-Z0-9]\)`, func(m regexp2.Match) string {
		s := m.String()
		return "[" + strings.ReplaceAll(s[1:len(s)-1], "|", "") + "]"
	}),
	replace("digit alternation", `\(\[0-9\]\|\[1-9\]\)`, "[0-9]"),
	replaceFunc("sort class", `\[([a-zA-Z0-9]+)\]`, func(m regexp2.Match) string {
		return "[" + sortedSet(m.GroupByNumber(1).String()) + "]"
	}),
	replace("class class star", class+`\1\*`, "${1}+"),
	replace("group group star", group+`\1\*`, "${1}+"),
	replace("char char star", single+`\1\*`, "${1}+"),
	replace("class class plus", class+`\1\+`, "${1}{2,}"),
	replace("group group plus", group+`\1\+`, "${1}{2,}"),
	replaceFunc("exact exact", class+`\{(\d+)\}\1\{(\d+)\}`, func(m regexp2.Match) string {
		a, _ := strconv.Atoi(m.GroupByNumber(2).String())
		b, _ := strconv.Atoi(m.GroupByNumber(3).String())
		if a+b > ast.MaxCount {
			return m.String()
		}
		return m.GroupByNumber(1).String() + "{" + strconv.Itoa(a+b) + "}"
	}),
	replace("exact star", class+`\{(\d+)\}\1\*`, "${1}{${2},}"),
	replace("exact one", `\{1\}`, ""),
	replace("class plus in parens", `\(`+class+`\)\+`, "${1}+"),
	replace("char plus in parens", `\(`+single+`\)\+`, "${1}+"),
}

// RuleNames lists the rewrite rules in the order they run.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

func sortedSet(chars string) string {
	seen := map[rune]bool{}
	var set []rune
	for _, c := range chars {
		if !seen[c] {
			seen[c] = true
			set = append(set, c)
		}
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return string(set)
}

type Option func(*Canonicalizer)

// MaxPasses caps the number of passes. Values below one are ignored.
func MaxPasses(n int) Option {
	return func(c *Canonicalizer) {
		if n > 0 {
			c.maxPasses = n
		}
	}
}

// Canonicalizer is immutable and safe for concurrent use.
type Canonicalizer struct {
	maxPasses int
}

func New(opts ...Option) *Canonicalizer {
	c := &Canonicalizer{maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Canonicalizer) MaxPasses() int { return c.maxPasses }

// Result is the outcome of a Run. Partial is set when the pass limit was hit
// before the regex stopped changing. Applied names every rule that fired, in
// order, across all passes.
type Result struct {
	Regex   string
	Passes  int
	Partial bool
	Applied []string
}

// Run applies every rule, in order, until a whole pass leaves the regex
// unchanged.
func (c *Canonicalizer) Run(raw string) (Result, error) {
	result := Result{Regex: raw}
	for result.Passes < c.maxPasses {
		result.Passes++
		next := result.Regex
		for _, r := range rules {
			rewritten, err := r.rewrite(r.re, next)
			if err != nil {
				return Result{}, err
			}
			if rewritten != next {
				logrus.Tracef("canon: %s: %q -> %q", r.name, next, rewritten)
				result.Applied = append(result.Applied, r.name)
				next = rewritten
			}
		}
		if next == result.Regex {
			return result, nil
		}
		result.Regex = next
	}
	result.Partial = true
	logrus.Warnf("canon: %q still changing after %d passes", result.Regex, c.maxPasses)
	return result, nil
}

var defaultCanonicalizer = New()

// Canonicalize runs the default Canonicalizer over raw.
func Canonicalize(raw string) (string, error) {
	result, err := defaultCanonicalizer.Run(raw)
	if err != nil {
		return "", err
	}
	return result.Regex, nil
}
