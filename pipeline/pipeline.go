// Package pipeline wires the stages that turn an English phrase into a
// validated regular expression.
package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/canon"
	"github.com/arr-ai/regexphrase/normalize"
	"github.com/arr-ai/regexphrase/parser"
	"github.com/arr-ai/regexphrase/translate"
)

type config struct {
	canonOptions []canon.Option
	skipCanon    bool
}

type Option func(*config)

// MaxPasses bounds the canonicalization loop.
func MaxPasses(n int) Option {
	return func(c *config) { c.canonOptions = append(c.canonOptions, canon.MaxPasses(n)) }
}

// Raw disables canonicalization. The final regex is then the raw one.
func Raw() Option {
	return func(c *config) { c.skipCanon = true }
}

// Pipeline holds the long-lived stages. It is read-only after New and may be
// shared between goroutines.
type Pipeline struct {
	normalizer    *normalize.Normalizer
	parser        *parser.Parser
	canonicalizer *canon.Canonicalizer
	skipCanon     bool
}

func New(opts ...Option) (*Pipeline, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	p, err := parser.New()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		normalizer:    normalize.New(),
		parser:        p,
		canonicalizer: canon.New(cfg.canonOptions...),
		skipCanon:     cfg.skipCanon,
	}, nil
}

// Trace is every intermediate value of one translation.
type Trace struct {
	Phrase     string
	Normalized string
	Tree       ast.Node
	Steps      []translate.Step
	Raw        string
	Canon      canon.Result
	Final      string
}

// Translate returns the final regex for phrase.
func (p *Pipeline) Translate(phrase string) (string, error) {
	trace, err := p.Trace(phrase)
	if err != nil {
		return "", err
	}
	return trace.Final, nil
}

// Trace runs every stage and keeps their outputs. On error the returned Trace
// holds whatever the stages before the failing one produced.
func (p *Pipeline) Trace(phrase string) (Trace, error) {
	trace := Trace{Phrase: phrase}

	trace.Normalized = p.normalizer.Normalize(phrase)
	logrus.Debugf("normalized: %q", trace.Normalized)

	tree, err := p.parser.Parse(trace.Normalized)
	if err != nil {
		return trace, err
	}
	trace.Tree = tree

	raw, steps, err := translate.Steps(tree)
	if err != nil {
		return trace, err
	}
	trace.Raw, trace.Steps = raw, steps
	logrus.Debugf("raw regex: %q", raw)

	if p.skipCanon {
		trace.Canon = canon.Result{Regex: raw}
	} else if trace.Canon, err = p.canonicalizer.Run(raw); err != nil {
		return trace, err
	}
	trace.Final = trace.Canon.Regex

	if err := Validate(trace.Final); err != nil {
		return trace, err
	}
	logrus.Debugf("final regex: %q", trace.Final)
	return trace, nil
}

// Normalize exposes the normalization stage on its own.
func (p *Pipeline) Normalize(phrase string) string {
	return p.normalizer.Normalize(phrase)
}

// Parse exposes the parsing stage on its own, for canonical text.
func (p *Pipeline) Parse(canonical string) (ast.Node, error) {
	return p.parser.Parse(canonical)
}
