// Package numeral converts runs of English number words into integers.
package numeral

import (
	"math/big"
	"strings"

	"github.com/arr-ai/frozen"
)

const connective = "and"

var (
	units = map[string]int64{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
		"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
		"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
		"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
		"eighteen": 18, "nineteen": 19,
	}

	tens = map[string]int64{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}

	scales = map[string]int64{
		"hundred":  100,
		"thousand": 1_000,
		"million":  1_000_000,
		"billion":  1_000_000_000,
	}

	vocabulary = buildVocabulary()
)

func buildVocabulary() frozen.Set[string] {
	words := []string{connective}
	for _, table := range []map[string]int64{units, tens, scales} {
		for w := range table {
			words = append(words, w)
		}
	}
	return frozen.NewSet[string](words...)
}

// IsNumeralWord reports whether w may take part in a number word run.
func IsNumeralWord(w string) bool {
	return vocabulary.Has(w)
}

// Words returns the numeral vocabulary in lexical order.
func Words() []string {
	return vocabulary.OrderedElements(func(a, b string) bool { return a < b })
}

func isScale(w string) bool {
	_, has := scales[w]
	return has
}

// WordsToNumber folds a run of number words into its value. It returns false
// if any word is not a number word or if the run holds no number word at all,
// which keeps "zero" apart from "not a number".
func WordsToNumber(words []string) (*big.Int, bool) {
	current := new(big.Int)
	total := new(big.Int)
	seen := false

	for _, w := range words {
		if v, has := units[w]; has {
			current.Add(current, big.NewInt(v))
			seen = true
			continue
		}
		if v, has := tens[w]; has {
			current.Add(current, big.NewInt(v))
			seen = true
			continue
		}
		if v, has := scales[w]; has {
			if current.Sign() == 0 {
				current.SetInt64(1)
			}
			current.Mul(current, big.NewInt(v))
			total.Add(total, current)
			current.SetInt64(0)
			seen = true
			continue
		}
		if w == connective {
			continue
		}
		return nil, false
	}

	if !seen {
		return nil, false
	}
	return total.Add(total, current), true
}

// ConvertNumwords replaces every maximal run of number words in text with its
// decimal value. Runs that do not form a number are left as they were.
//
// "and" only continues a run once a scale word has been seen in it, so
// "two thousand and eight" is 2008 while "between two and five" keeps its
// two bounds apart.
func ConvertNumwords(text string) string {
	var out []string
	var run []string
	scaled := false

	flush := func() {
		// A dangling "and" belongs to the text that follows, not the number.
		tail := len(run)
		for tail > 0 && run[tail-1] == connective {
			tail--
		}
		if tail > 0 {
			if n, ok := WordsToNumber(run[:tail]); ok {
				out = append(out, n.String())
			} else {
				out = append(out, run[:tail]...)
			}
		}
		out = append(out, run[tail:]...)
		run = run[:0]
		scaled = false
	}

	for _, w := range strings.Fields(text) {
		switch {
		case w == connective:
			if len(run) > 0 && scaled {
				run = append(run, w)
			} else {
				flush()
				out = append(out, w)
			}
		case IsNumeralWord(w):
			run = append(run, w)
			scaled = scaled || isScale(w)
		default:
			flush()
			out = append(out, w)
		}
	}
	flush()

	return strings.Join(out, " ")
}
