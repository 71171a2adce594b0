// Package translate turns a phrase syntax tree into a raw regular expression.
package translate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/errors"
)

// rule renders node given the already rendered fragments of its children.
type rule func(node ast.Node, children []string) (string, error)

var classes = map[ast.Kind]string{
	ast.KindLetter:        `[a-zA-Z]`,
	ast.KindDigit:         `[0-9]`,
	ast.KindSpace:         `\s`,
	ast.KindAny:           `.`,
	ast.KindUpper:         `[A-Z]`,
	ast.KindLower:         `[a-z]`,
	ast.KindVowel:         `[AEIOUaeiou]`,
	ast.KindConsonant:     `[BCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz]`,
	ast.KindWord:          `\w`,
	ast.KindAlphanumeric:  `[A-Za-z0-9]`,
	ast.KindHexDigit:      `[0-9A-Fa-f]`,
	ast.KindWhitespace:    `\s`,
	ast.KindNonWhitespace: `\S`,
}

// ClassFragment returns the regex fragment a class kind renders to.
func ClassFragment(k ast.Kind) (string, bool) {
	f, ok := classes[k]
	return f, ok
}

var rules = map[ast.Kind]rule{}

func init() {
	for k, fragment := range classes {
		fragment := fragment
		rules[k] = func(ast.Node, []string) (string, error) { return fragment, nil }
	}
	for _, k := range []ast.Kind{ast.KindStart, ast.KindTerm, ast.KindElement, ast.KindBaseTerm} {
		rules[k] = passThrough
	}
	rules[ast.KindSequence] = func(_ ast.Node, children []string) (string, error) {
		return strings.Join(children, ""), nil
	}
	rules[ast.KindOrExpr] = func(_ ast.Node, children []string) (string, error) {
		return "(" + children[0] + "|" + children[1] + ")", nil
	}
	rules[ast.KindGroup] = func(_ ast.Node, children []string) (string, error) {
		return "(" + children[0] + ")" + strings.Join(children[1:], ""), nil
	}
	rules[ast.KindRepeatedTerm] = repeatedTerm
	rules[ast.KindCharLiteral] = literal
	rules[ast.KindStringLiteral] = literal
	rules[ast.KindRangeExpr] = rangeExpr
	rules[ast.KindExcept] = except

	rules[ast.KindOptional] = symbol("?")
	rules[ast.KindOneOrMore] = symbol("+")
	rules[ast.KindZeroOrMore] = symbol("*")
	rules[ast.KindExact] = counted(func(q ast.Quantifier) string { return fmt.Sprintf("{%d}", q.Min) })
	rules[ast.KindBetween] = counted(func(q ast.Quantifier) string { return fmt.Sprintf("{%d,%d}", q.Min, q.Max) })
	rules[ast.KindAtLeast] = counted(func(q ast.Quantifier) string { return fmt.Sprintf("{%d,}", q.Min) })
	rules[ast.KindAtMost] = counted(func(q ast.Quantifier) string { return fmt.Sprintf("{0,%d}", q.Max) })
}

// Step records the fragment produced for one node, in evaluation order.
type Step struct {
	Node     ast.Node
	Depth    int
	Fragment string
}

// Translate renders the tree rooted at node as a raw regex.
func Translate(node ast.Node) (string, error) {
	regex, err := eval(node, 0, nil)
	if err != nil {
		return "", err
	}
	logrus.Tracef("translate: %s -> %q", node, regex)
	return regex, nil
}

// Steps is Translate, but it also reports every intermediate fragment,
// children before parents.
func Steps(node ast.Node) (string, []Step, error) {
	var steps []Step
	regex, err := eval(node, 0, func(s Step) { steps = append(steps, s) })
	if err != nil {
		return "", nil, err
	}
	return regex, steps, nil
}

func eval(node ast.Node, depth int, visit func(Step)) (string, error) {
	r, has := rules[node.Kind()]
	if !has {
		return "", errors.UnhandledNodeError{Kind: node.Kind().String()}
	}
	children := make([]string, 0, len(node.Children()))
	for _, child := range node.Children() {
		fragment, err := eval(child, depth+1, visit)
		if err != nil {
			return "", err
		}
		children = append(children, fragment)
	}
	fragment, err := r(node, children)
	if err != nil {
		return "", err
	}
	if visit != nil {
		visit(Step{Node: node, Depth: depth, Fragment: fragment})
	}
	return fragment, nil
}

func passThrough(_ ast.Node, children []string) (string, error) {
	return children[0], nil
}

func symbol(s string) rule {
	return func(ast.Node, []string) (string, error) { return s, nil }
}

func counted(format func(ast.Quantifier) string) rule {
	return func(node ast.Node, _ []string) (string, error) {
		return format(node.(ast.Quantifier)), nil
	}
}

// repeatedTerm places quantifiers after the term, before-quantifier first.
func repeatedTerm(node ast.Node, children []string) (string, error) {
	parts := node.Children()
	switch len(parts) {
	case 1:
		return children[0], nil
	case 2:
		if parts[0].Kind().IsQuantifier() {
			return children[1] + children[0], nil
		}
		return children[0] + children[1], nil
	case 3:
		return children[1] + children[0] + children[2], nil
	}
	panic(errors.Inconceivable)
}

// Unquote strips the quotes around a literal token. Nothing is escaped, so
// regex metacharacters inside a literal stay active.
func Unquote(token string) string {
	if len(token) >= 2 && (token[0] == '\'' || token[0] == '"') && token[len(token)-1] == token[0] {
		return token[1 : len(token)-1]
	}
	return token
}

func literal(node ast.Node, _ []string) (string, error) {
	return Unquote(node.(ast.Literal).Token), nil
}

func rangeExpr(node ast.Node, _ []string) (string, error) {
	r := node.(ast.RangeExpr)
	lo, hi := Unquote(r.Lo), Unquote(r.Hi)
	loRune, _ := utf8.DecodeRuneInString(lo)
	hiRune, _ := utf8.DecodeRuneInString(hi)
	if loRune > hiRune {
		return "", errors.InvalidRangeError{Lo: lo, Hi: hi}
	}
	return "[" + lo + "-" + hi + "]", nil
}

// except renders the complement of the excluded part. The base fragment is
// computed but plays no part in the result.
func except(node ast.Node, children []string) (string, error) {
	excluded := children[1]
	leaf := unwrap(node.(ast.Except).Excluded)
	switch leaf.Kind() {
	case ast.KindCharLiteral, ast.KindStringLiteral:
		if excluded == "" {
			return "", errors.UnsupportedNegationError{Fragment: excluded}
		}
		return "[^" + excluded + "]", nil
	case ast.KindAny:
		return "", errors.UnsupportedNegationError{Fragment: excluded}
	}
	switch {
	case excluded == `\s`, excluded == `\S`, excluded == `\w`:
		return "[^" + excluded + "]", nil
	case isPlainClass(excluded):
		return "[^" + excluded[1:len(excluded)-1] + "]", nil
	}
	return "", errors.UnsupportedNegationError{Fragment: excluded}
}

func isPlainClass(fragment string) bool {
	return len(fragment) > 2 &&
		strings.HasPrefix(fragment, "[") && !strings.HasPrefix(fragment, "[^") &&
		strings.HasSuffix(fragment, "]") && strings.Count(fragment, "]") == 1
}

func unwrap(node ast.Node) ast.Node {
	for {
		w, ok := node.(ast.Wrapper)
		if !ok {
			return node
		}
		node = w.Child
	}
}
