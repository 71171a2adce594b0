package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/errors"
	"github.com/arr-ai/regexphrase/normalize"
	"github.com/arr-ai/regexphrase/parser"
)

type translation struct {
	phrase, regex string
}

var suites = map[string][]translation{
	"scenarios": {
		{"digit", `[0-9]`},
		{"digit one or more", `[0-9]+`},
		{"digits", `[0-9]+`},
		{"digit 3 times", `[0-9]{3}`},
		{"letter followed by digit", `[a-zA-Z][0-9]`},
		{"range 'a' to 'z'", `[a-z]`},
		{"letter except 'a'", `[^a]`},
		{"digit one hundred and five times", `[0-9]{105}`},
	},
	"basic": {
		{"digits that appear three times", `[0-9]{3}`},
		{"a lowercase letter optionally followed by three digits", `[a-z]?[0-9]{3}`},
		{"letters then digits", `[A-Za-z]+[0-9]+`},
		{"any character except digits", `[^0-9]`},
		{"uppercase letters that repeat twice next lowercase letters", `[A-Z]{2}[a-z]+`},
		{"'hello' then digits that appear between 2 and 5 times", `hello[0-9]{2,5}`},
		{"group digit followed by letter end group repeated twice", `([0-9][a-zA-Z]){2}`},
	},
	"range": {
		{"range 'a' to 'f'", `[a-f]`},
		{"range '0' to '9'", `[0-9]`},
		{"range 'A' to 'Z'", `[A-Z]`},
	},
	"class": {
		{"vowel one or more", `[AEIOUaeiou]+`},
		{"consonant one or more", `[BCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz]+`},
		{"hex digit one or more", `[0-9A-Fa-f]+`},
		{"word character one or more", `\w+`},
		{"non whitespace one or more", `\S+`},
	},
	"quantifier": {
		{"digit one or more", `[0-9]+`},
		{"digit zero or more", `[0-9]*`},
		{"digit optional", `[0-9]?`},
		{"digit 3 times", `[0-9]{3}`},
		{"digit between 2 and 5 times", `[0-9]{2,5}`},
		{"digit at least 2 times", `[0-9]{2,}`},
		{"digit at most 4 times", `[0-9]{0,4}`},
	},
	"english numbers": {
		{"digit twenty times", `[0-9]{20}`},
		{"letter seventy two times", `[a-zA-Z]{72}`},
		{"digit one hundred and five times", `[0-9]{105}`},
		{"digit two thousand and eight times", `[0-9]{2008}`},
		{"hex digit three hundred forty one times", `[0-9A-Fa-f]{341}`},
	},
	"case": {
		{"'Hello' followed by digits", `Hello[0-9]+`},
		{`"World" or 'x'`, `(World|x)`},
		{"Digit Then Letter", `[0-9][a-zA-Z]`},
	},
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	p, err := New()
	require.NoError(t, err)
	for name, suite := range suites {
		suite := suite
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, tr := range suite {
				tr := tr
				t.Run(tr.phrase, func(t *testing.T) {
					t.Parallel()
					regex, err := p.Translate(tr.phrase)
					require.NoError(t, err)
					assert.Equal(t, tr.regex, regex)
					assert.NoError(t, Validate(regex))

					again, err := p.canonicalizer.Run(regex)
					require.NoError(t, err)
					assert.Equal(t, regex, again.Regex, "canonical form must be stable")
				})
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	t.Parallel()

	p, err := New()
	require.NoError(t, err)

	_, err = p.Translate("digit followedby letter")
	assert.True(t, errors.IsGrammarMismatch(err), "%v", err)

	_, err = p.Translate("digit ninety nine billion times")
	assert.True(t, errors.IsNumeralOverflow(err), "%v", err)

	_, err = p.Translate("range 'z' to 'a'")
	assert.True(t, errors.IsInvalidRange(err), "%v", err)

	_, err = p.Translate("letter except any character")
	assert.True(t, errors.IsUnsupportedNegation(err), "%v", err)

	// Literals are not escaped, so a lone parenthesis reaches the validator.
	_, err = p.Translate("'('")
	assert.True(t, errors.IsInvalidRegex(err), "%v", err)
}

func TestTrace(t *testing.T) {
	t.Parallel()

	p, err := New()
	require.NoError(t, err)

	trace, err := p.Trace("letters then digits")
	require.NoError(t, err)
	assert.Equal(t, "letter one or more followed by digit one or more", trace.Normalized)
	assert.Equal(t, ast.KindStart, trace.Tree.Kind())
	assert.Equal(t, `[a-zA-Z]+[0-9]+`, trace.Raw)
	assert.Equal(t, `[A-Za-z]+[0-9]+`, trace.Final)
	assert.Equal(t, []string{"letter plus"}, trace.Canon.Applied)
	assert.NotEmpty(t, trace.Steps)

	trace, err = p.Trace("digit followedby letter")
	assert.Error(t, err)
	assert.Equal(t, "digit followedby letter", trace.Normalized)
	assert.Nil(t, trace.Tree)
}

func TestRawOption(t *testing.T) {
	t.Parallel()

	p, err := New(Raw())
	require.NoError(t, err)
	regex, err := p.Translate("letters then digits")
	require.NoError(t, err)
	assert.Equal(t, `[a-zA-Z]+[0-9]+`, regex)
}

func TestMaxPassesOption(t *testing.T) {
	t.Parallel()

	p, err := New(MaxPasses(1))
	require.NoError(t, err)
	trace, err := p.Trace("group group 'a' end group end group")
	require.NoError(t, err)
	assert.True(t, trace.Canon.Partial)
	assert.Equal(t, `(a)`, trace.Final)
}

func TestStages(t *testing.T) {
	t.Parallel()

	p, err := New()
	require.NoError(t, err)
	assert.Equal(t, "digit 2 times", p.Normalize("digits twice"))
	node, err := p.Parse("digit 2 times")
	require.NoError(t, err)
	assert.Equal(t, ast.KindStart, node.Kind())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(`[0-9]{2008}`))
	assert.NoError(t, Validate(`(a)\1`))
	assert.True(t, errors.IsInvalidRegex(Validate(`(`)))
	assert.True(t, errors.IsInvalidRegex(Validate(`[z-a]`)))
}

func TestFullMatch(t *testing.T) {
	t.Parallel()

	match, err := FullMatch(`[0-9]{3}`, "123")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = FullMatch(`[0-9]{3}`, "1234")
	require.NoError(t, err)
	assert.False(t, match)

	match, err = FullMatch(`a|b`, "ab")
	require.NoError(t, err)
	assert.False(t, match)

	_, err = FullMatch(`(`, "x")
	assert.True(t, errors.IsInvalidRegex(err))
}

func TestClassVocabularyAgrees(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, parser.ClassPhrases(), normalize.Classes)
}

func TestCountsNearLimitStayValid(t *testing.T) {
	t.Parallel()

	p, err := New()
	require.NoError(t, err)
	regex, err := p.Translate("digit 2000000000 times followed by digit 2000000000 times")
	require.NoError(t, err)
	assert.Equal(t, `[0-9]{2000000000}[0-9]{2000000000}`, regex)
}

func TestGeneratedPhrasesTerminate(t *testing.T) {
	t.Parallel()

	p, err := New()
	require.NoError(t, err)
	terms := append(parser.ClassPhrases(), "'a'", "'xyz'", "range 'a' to 'f'", "letter except vowel")
	repetitions := []string{
		"", "optional", "one or more", "zero or more", "3 times", "1 times",
		"between 2 and 4 times", "at least 2 times", "at most 3 times",
	}
	connectives := []string{"followed by", "or"}

	repeated := func(term, rep string) string {
		if rep == "" {
			return term
		}
		return term + " " + rep
	}
	for _, term := range terms {
		for _, rep := range repetitions {
			for _, conn := range connectives {
				for _, phrase := range []string{
					fmt.Sprintf("%s %s %s", repeated(term, rep), conn, repeated(term, rep)),
					fmt.Sprintf("group %s %s digit end group %s", repeated(term, rep), conn, rep),
				} {
					trace, err := p.Trace(phrase)
					if !assert.NoError(t, err, phrase) {
						continue
					}
					assert.False(t, trace.Canon.Partial, phrase)
					again, err := p.canonicalizer.Run(trace.Final)
					require.NoError(t, err)
					assert.Equal(t, trace.Final, again.Regex, phrase)
					assert.False(t, again.Partial, phrase)
				}
			}
		}
	}
}
