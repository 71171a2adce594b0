package ast

import (
	"fmt"
	"strings"
)

func call(k Kind, args ...fmt.Stringer) string {
	if len(args) == 0 {
		return k.String()
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.String())
	}
	return fmt.Sprintf("%s(%s)", k, strings.Join(parts, ", "))
}

func nodes(ns []Node) []fmt.Stringer {
	result := make([]fmt.Stringer, 0, len(ns))
	for _, n := range ns {
		result = append(result, n)
	}
	return result
}

type text string

func (t text) String() string { return string(t) }

type number int

func (n number) String() string { return fmt.Sprint(int(n)) }

func (n Start) String() string        { return call(n.Kind(), n.Child) }
func (n Sequence) String() string     { return call(n.Kind(), nodes(n.Items)...) }
func (n OrExpr) String() string       { return call(n.Kind(), n.Left, n.Right) }
func (n Group) String() string        { return call(n.Kind(), nodes(n.Children())...) }
func (n RepeatedTerm) String() string { return call(n.Kind(), nodes(n.Parts)...) }
func (n Wrapper) String() string      { return call(n.Kind(), n.Child) }
func (n Class) String() string        { return call(n.Kind()) }
func (n RangeExpr) String() string    { return call(n.Kind(), text(n.Lo), text(n.Hi)) }
func (n Literal) String() string      { return call(n.Kind(), text(n.Token)) }
func (n Except) String() string       { return call(n.Kind(), n.Base, n.Excluded) }

func (n Quantifier) String() string {
	switch n.kind {
	case KindExact, KindAtLeast:
		return call(n.kind, number(n.Min))
	case KindAtMost:
		return call(n.kind, number(n.Max))
	case KindBetween:
		return call(n.kind, number(n.Min), number(n.Max))
	}
	return call(n.kind)
}
