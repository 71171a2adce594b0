package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/errors"
	"github.com/arr-ai/regexphrase/parser"
)

var testParser = parser.MustNew()

func translate(t *testing.T, text string) (string, error) {
	t.Helper()
	node, err := testParser.Parse(text)
	require.NoError(t, err, text)
	return Translate(node)
}

func assertTranslate(t *testing.T, expected, text string) {
	t.Helper()
	regex, err := translate(t, text)
	if assert.NoError(t, err, text) {
		assert.Equal(t, expected, regex, text)
	}
}

func TestTranslateClasses(t *testing.T) {
	t.Parallel()

	for text, expected := range map[string]string{
		"letter":           `[a-zA-Z]`,
		"digit":            `[0-9]`,
		"space":            `\s`,
		"any character":    `.`,
		"uppercase letter": `[A-Z]`,
		"lowercase letter": `[a-z]`,
		"vowel":            `[AEIOUaeiou]`,
		"consonant":        `[BCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz]`,
		"word character":   `\w`,
		"alphanumeric":     `[A-Za-z0-9]`,
		"hex digit":        `[0-9A-Fa-f]`,
		"whitespace":       `\s`,
		"non whitespace":   `\S`,
	} {
		assertTranslate(t, expected, text)
	}
}

func TestTranslateQuantifiers(t *testing.T) {
	t.Parallel()

	assertTranslate(t, `[0-9]?`, "digit optional")
	assertTranslate(t, `[0-9]+`, "digit one or more")
	assertTranslate(t, `[0-9]*`, "digit zero or more")
	assertTranslate(t, `[0-9]{3}`, "digit 3 times")
	assertTranslate(t, `[0-9]{3}`, "digit exactly 3 times")
	assertTranslate(t, `[0-9]{2,5}`, "digit between 2 and 5 times")
	assertTranslate(t, `[0-9]{2,}`, "digit at least 2 times")
	assertTranslate(t, `[0-9]{0,4}`, "digit at most 4 times")
	assertTranslate(t, `[a-zA-Z]{3}`, "3 times letter")
	assertTranslate(t, `[a-zA-Z]?+`, "optional letter one or more")
}

func TestTranslateStructure(t *testing.T) {
	t.Parallel()

	assertTranslate(t, `[a-zA-Z][0-9]`, "letter followed by digit")
	assertTranslate(t, `(a|(b|c))`, "'a' or 'b' or 'c'")
	assertTranslate(t, `([0-9][a-zA-Z]){2}`, "group digit followed by letter end group 2 times")
	assertTranslate(t, `([AEIOUaeiou])`, "group vowel end group")
	assertTranslate(t, `hello[0-9]+`, "'hello' followed by digit one or more")
	assertTranslate(t, `Hello`, "'Hello'")
	assertTranslate(t, `a.b`, "'a.b'")
}

func TestTranslateRange(t *testing.T) {
	t.Parallel()

	assertTranslate(t, `[a-z]`, "range 'a' to 'z'")
	assertTranslate(t, `[0-9]`, `range "0" to "9"`)
	assertTranslate(t, `[a-a]`, "range 'a' to 'a'")

	_, err := translate(t, "range 'z' to 'a'")
	assert.True(t, errors.IsInvalidRange(err), "%v", err)
}

func TestTranslateExcept(t *testing.T) {
	t.Parallel()

	assertTranslate(t, `[^a]`, "letter except 'a'")
	assertTranslate(t, `[^abc]`, "letter except 'abc'")
	assertTranslate(t, `[^0-9]`, "any character except digit")
	assertTranslate(t, `[^a-f]`, "letter except range 'a' to 'f'")
	assertTranslate(t, `[^\s]`, "any character except whitespace")
	assertTranslate(t, `[^\w]`, "any character except word character")
	assertTranslate(t, `[^AEIOUaeiou]+`, "letter except vowel one or more")

	_, err := translate(t, "letter except any character")
	assert.True(t, errors.IsUnsupportedNegation(err), "%v", err)
	_, err = translate(t, "letter except ''")
	assert.True(t, errors.IsUnsupportedNegation(err), "%v", err)
}

func TestUnhandledNode(t *testing.T) {
	t.Parallel()

	_, err := Translate(ast.Start{Child: ast.Class{Of: ast.KindBaseTerm - 100}})
	assert.True(t, errors.IsUnhandledNode(err), "%v", err)
}

func TestEveryKindHasARule(t *testing.T) {
	t.Parallel()

	for _, k := range ast.Kinds() {
		_, has := rules[k]
		assert.True(t, has, k.String())
	}
}

func TestSteps(t *testing.T) {
	t.Parallel()

	node, err := testParser.Parse("digit 3 times")
	require.NoError(t, err)
	regex, steps, err := Steps(node)
	require.NoError(t, err)
	assert.Equal(t, `[0-9]{3}`, regex)

	require.NotEmpty(t, steps)
	last := steps[len(steps)-1]
	assert.Equal(t, ast.KindStart, last.Node.Kind())
	assert.Equal(t, 0, last.Depth)
	assert.Equal(t, regex, last.Fragment)
	assert.Equal(t, ast.KindDigit, steps[0].Node.Kind())
	assert.Equal(t, `[0-9]`, steps[0].Fragment)
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", Unquote(`'abc'`))
	assert.Equal(t, "abc", Unquote(`"abc"`))
	assert.Equal(t, `'abc"`, Unquote(`'abc"`))
	assert.Equal(t, "", Unquote(`''`))
	assert.Equal(t, "x", Unquote(`x`))
}
