package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/errors"
)

const MaxCount = ast.MaxCount

type converter struct {
	text string
}

func fromSyntax(text string, p *Phrase) (ast.Node, error) {
	c := converter{text: text}
	seq, err := c.sequence(p.Sequence)
	if err != nil {
		return nil, err
	}
	return ast.Start{Child: seq}, nil
}

func (c converter) sequence(s *Sequence) (ast.Node, error) {
	items := make([]ast.Node, 0, len(s.Elements))
	for _, e := range s.Elements {
		item, err := c.element(e)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return ast.Sequence{Items: items}, nil
}

func (c converter) element(e *Element) (ast.Node, error) {
	operand, err := c.operand(e.Operand)
	if err != nil {
		return nil, err
	}
	if e.Or == nil {
		return ast.NewElement(operand), nil
	}
	right, err := c.element(e.Or)
	if err != nil {
		return nil, err
	}
	return ast.NewElement(ast.OrExpr{Left: ast.NewElement(operand), Right: right}), nil
}

func (c converter) operand(o *Operand) (ast.Node, error) {
	switch {
	case o.Group != nil:
		body, err := c.sequence(o.Group.Body)
		if err != nil {
			return nil, err
		}
		group := ast.Group{Body: body}
		if o.Group.Repetition != nil {
			if group.Repetition, err = c.repetition(o.Group.Repetition); err != nil {
				return nil, err
			}
		}
		return group, nil
	case o.Repeated != nil:
		return c.repeatedTerm(o.Repeated)
	}
	panic(errors.Inconceivable)
}

func (c converter) repeatedTerm(r *RepeatedTerm) (ast.Node, error) {
	var parts []ast.Node
	if r.Before != nil {
		q, err := c.repetition(r.Before)
		if err != nil {
			return nil, err
		}
		parts = append(parts, q)
	}
	term, err := c.term(r.Term)
	if err != nil {
		return nil, err
	}
	parts = append(parts, term)
	if r.After != nil {
		q, err := c.repetition(r.After)
		if err != nil {
			return nil, err
		}
		parts = append(parts, q)
	}
	return ast.RepeatedTerm{Parts: parts}, nil
}

func (c converter) term(t *Term) (ast.Node, error) {
	base, err := c.baseTerm(t.Base)
	if err != nil {
		return nil, err
	}
	if t.Excluded == nil {
		return ast.NewTerm(base), nil
	}
	excluded, err := c.baseTerm(t.Excluded)
	if err != nil {
		return nil, err
	}
	return ast.NewTerm(ast.Except{Base: base, Excluded: excluded}), nil
}

func (c converter) baseTerm(b *BaseTerm) (ast.Node, error) {
	switch {
	case b.Class != "":
		kind, ok := classes[b.Class]
		if !ok {
			panic(errors.Inconceivable)
		}
		return ast.NewBaseTerm(ast.Class{Of: kind}), nil
	case b.Range != nil:
		for _, end := range []string{b.Range.Lo, b.Range.Hi} {
			if utf8.RuneCountInString(unquote(end)) != 1 {
				return nil, mismatchf(c.text, "range bound %s is not a single character", end)
			}
		}
		return ast.NewBaseTerm(ast.RangeExpr{Lo: b.Range.Lo, Hi: b.Range.Hi}), nil
	case b.Literal != "":
		if utf8.RuneCountInString(unquote(b.Literal)) == 1 {
			return ast.NewBaseTerm(ast.NewCharLiteral(b.Literal)), nil
		}
		return ast.NewBaseTerm(ast.NewStringLiteral(b.Literal)), nil
	}
	panic(errors.Inconceivable)
}

func (c converter) repetition(r *Repetition) (ast.Node, error) {
	switch {
	case r.Optional:
		return ast.Optional(), nil
	case r.OneOrMore:
		return ast.OneOrMore(), nil
	case r.ZeroOrMore:
		return ast.ZeroOrMore(), nil
	case r.Between != nil:
		lo, err := count(r.Between.Min)
		if err != nil {
			return nil, err
		}
		hi, err := count(r.Between.Max)
		if err != nil {
			return nil, err
		}
		return ast.Between(lo, hi), nil
	case r.AtLeast != "":
		n, err := count(r.AtLeast)
		if err != nil {
			return nil, err
		}
		return ast.AtLeast(n), nil
	case r.AtMost != "":
		n, err := count(r.AtMost)
		if err != nil {
			return nil, err
		}
		return ast.AtMost(n), nil
	case r.Exact != "":
		n, err := count(r.Exact)
		if err != nil {
			return nil, err
		}
		return ast.Exact(n), nil
	}
	panic(errors.Inconceivable)
}

func count(digits string) (int, error) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > MaxCount {
		return 0, errors.NumeralOverflowError{Numeral: digits, Limit: MaxCount}
	}
	return int(n), nil
}

// unquote strips the surrounding quotes of a literal token. Escapes inside are
// kept as written.
func unquote(token string) string {
	if len(token) >= 2 {
		return token[1 : len(token)-1]
	}
	return token
}
