// Package parser turns canonical phrase text into an ast tree.
package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/regexphrase/ast"
)

// Parser is safe for concurrent use. Build it once and share it.
type Parser struct {
	grammar *participle.Parser[Phrase]
}

func New() (*Parser, error) {
	grammar, err := participle.Build[Phrase](
		participle.Lexer(phraseLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, err
	}
	return &Parser{grammar: grammar}, nil
}

// MustNew is New for package-level initialization. The grammar is fixed, so
// it only panics if the grammar itself is broken.
func MustNew() *Parser {
	p, err := New()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads canonical text as a whole. Any trailing or unrecognised input is
// a GrammarMismatchError.
func (p *Parser) Parse(text string) (ast.Node, error) {
	cst, err := p.grammar.ParseString("", text)
	if err != nil {
		return nil, mismatch(text, err)
	}
	node, err := fromSyntax(text, cst)
	if err != nil {
		return nil, err
	}
	logrus.Tracef("parse: %q -> %s", text, node)
	return node, nil
}

// Syntax exposes the participle grammar in EBNF form.
func (p *Parser) Syntax() string {
	return p.grammar.String()
}
