package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/errors"
)

var testParser = MustNew()

func assertParse(t *testing.T, expected, text string) {
	t.Helper()
	node, err := testParser.Parse(text)
	if assert.NoError(t, err, text) {
		assert.Equal(t, expected, node.String(), text)
	}
}

func TestParseTerms(t *testing.T) {
	t.Parallel()

	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(Digit))))))", "digit")
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(HexDigit))))))", "hex digit")
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(NonWhitespace))))))", "non whitespace")
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(CharLiteral('a')))))))", "'a'")
	assertParse(t, `Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(StringLiteral("hello")))))))`, `"hello"`)
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(RangeExpr('a', 'f')))))))", "range 'a' to 'f'")
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(Except(BaseTerm(Any), BaseTerm(Digit)))))))",
		"any character except digit")
}

func TestParseQuantifiers(t *testing.T) {
	t.Parallel()

	for text, quantifier := range map[string]string{
		"digit optional":              "Optional",
		"digit one or more":           "OneOrMore",
		"digit zero or more":          "ZeroOrMore",
		"digit 3 times":               "Exact(3)",
		"digit exactly 3 times":       "Exact(3)",
		"digit between 2 and 5 times": "Between(2, 5)",
		"digit at least 1 times":      "AtLeast(1)",
		"digit at most 4 times":       "AtMost(4)",
		"digit 2147483647 times":      "Exact(2147483647)",
		"digit between 0 and 0 times": "Between(0, 0)",
	} {
		assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(Digit)), "+quantifier+"))))", text)
	}
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Exact(3), Term(BaseTerm(Letter))))))", "3 times letter")
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Optional, Term(BaseTerm(Letter)), OneOrMore))))",
		"optional letter one or more")
}

func TestParseStructure(t *testing.T) {
	t.Parallel()

	assertParse(t,
		"Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(Letter)))), "+
			"Element(RepeatedTerm(Term(BaseTerm(Digit))))))",
		"letter followed by digit")
	assertParse(t,
		"Start(Sequence(Element(OrExpr(Element(RepeatedTerm(Term(BaseTerm(CharLiteral('a'))))), "+
			"Element(OrExpr(Element(RepeatedTerm(Term(BaseTerm(CharLiteral('b'))))), "+
			"Element(RepeatedTerm(Term(BaseTerm(CharLiteral('c')))))))))))",
		"'a' or 'b' or 'c'")
	assertParse(t,
		"Start(Sequence(Element(Group(Sequence(Element(RepeatedTerm(Term(BaseTerm(Digit)))), "+
			"Element(RepeatedTerm(Term(BaseTerm(Letter))))), Exact(2)))))",
		"group digit followed by letter end group 2 times")
	assertParse(t,
		"Start(Sequence(Element(Group(Sequence(Element(RepeatedTerm(Term(BaseTerm(Vowel)))))))))",
		"group vowel end group")
}

func TestParseKeepsLiteralsVerbatim(t *testing.T) {
	t.Parallel()

	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(StringLiteral('a.b')))))))", "'a.b'")
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(StringLiteral('followed by')))))))",
		"'followed by'")
	assertParse(t, "Start(Sequence(Element(RepeatedTerm(Term(BaseTerm(StringLiteral('')))))))", "''")
}

func TestParseMismatch(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"digits",
		"followedby",
		"digit followed by",
		"letter digit",
		"digit 3",
		"'unterminated",
		"group digit",
		"range 'ab' to 'z'",
		"range 'a' to digit",
		"digit or",
	} {
		_, err := testParser.Parse(text)
		assert.True(t, errors.IsGrammarMismatch(err), "%q: %v", text, err)
	}
}

func TestParseMismatchOffset(t *testing.T) {
	t.Parallel()

	_, err := testParser.Parse("digit bogus")
	var mismatch errors.GrammarMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "digit bogus", mismatch.Text)
	assert.Equal(t, 6, mismatch.Offset)
}

func TestParseOverflow(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"digit 2147483648 times",
		"digit between 1 and 99999999999999999999 times",
		"digit at least 3000000000 times",
	} {
		_, err := testParser.Parse(text)
		assert.True(t, errors.IsNumeralOverflow(err), "%q: %v", text, err)
	}
}

func TestClassPhrasesCoverClassKinds(t *testing.T) {
	t.Parallel()

	seen := map[ast.Kind]bool{}
	phrases := ClassPhrases()
	for _, p := range phrases {
		seen[classes[p]] = true
	}
	for _, k := range ast.Kinds() {
		if k.IsClass() {
			assert.True(t, seen[k], k.String())
		}
	}
	for i := 1; i < len(phrases); i++ {
		assert.GreaterOrEqual(t, len(phrases[i-1]), len(phrases[i]))
	}
}

func TestSyntax(t *testing.T) {
	t.Parallel()

	syntax := testParser.Syntax()
	assert.Contains(t, syntax, "Phrase")
	assert.Contains(t, syntax, `"followed by"`)
}
