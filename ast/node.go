// Package ast defines the syntax tree produced by parsing canonical phrase
// text. The set of node types is closed: only this package can add to it.
package ast

import (
	"fmt"
	"math"
)

type Kind int

const (
	KindStart Kind = iota
	KindSequence
	KindOrExpr
	KindGroup
	KindRepeatedTerm
	KindTerm
	KindElement
	KindBaseTerm

	KindLetter
	KindDigit
	KindSpace
	KindAny
	KindUpper
	KindLower
	KindVowel
	KindConsonant
	KindWord
	KindAlphanumeric
	KindHexDigit
	KindWhitespace
	KindNonWhitespace

	KindRangeExpr
	KindCharLiteral
	KindStringLiteral
	KindExcept

	KindOptional
	KindOneOrMore
	KindZeroOrMore
	KindExact
	KindBetween
	KindAtLeast
	KindAtMost

	kindCount
)

var kindNames = [kindCount]string{
	KindStart:         "Start",
	KindSequence:      "Sequence",
	KindOrExpr:        "OrExpr",
	KindGroup:         "Group",
	KindRepeatedTerm:  "RepeatedTerm",
	KindTerm:          "Term",
	KindElement:       "Element",
	KindBaseTerm:      "BaseTerm",
	KindLetter:        "Letter",
	KindDigit:         "Digit",
	KindSpace:         "Space",
	KindAny:           "Any",
	KindUpper:         "Upper",
	KindLower:         "Lower",
	KindVowel:         "Vowel",
	KindConsonant:     "Consonant",
	KindWord:          "Word",
	KindAlphanumeric:  "Alphanumeric",
	KindHexDigit:      "HexDigit",
	KindWhitespace:    "Whitespace",
	KindNonWhitespace: "NonWhitespace",
	KindRangeExpr:     "RangeExpr",
	KindCharLiteral:   "CharLiteral",
	KindStringLiteral: "StringLiteral",
	KindExcept:        "Except",
	KindOptional:      "Optional",
	KindOneOrMore:     "OneOrMore",
	KindZeroOrMore:    "ZeroOrMore",
	KindExact:         "Exact",
	KindBetween:       "Between",
	KindAtLeast:       "AtLeast",
	KindAtMost:        "AtMost",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) IsClass() bool {
	return KindLetter <= k && k <= KindNonWhitespace
}

func (k Kind) IsQuantifier() bool {
	return KindOptional <= k && k <= KindAtMost
}

// Kinds returns every node kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindStart; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

type Node interface {
	fmt.Stringer
	Kind() Kind
	Children() []Node
	isNode()
}

func (Start) isNode()        {}
func (Sequence) isNode()     {}
func (OrExpr) isNode()       {}
func (Group) isNode()        {}
func (RepeatedTerm) isNode() {}
func (Wrapper) isNode()      {}
func (Class) isNode()        {}
func (RangeExpr) isNode()    {}
func (Literal) isNode()      {}
func (Except) isNode()       {}
func (Quantifier) isNode()   {}

// Start is the root of every tree.
type Start struct {
	Child Node
}

func (Start) Kind() Kind         { return KindStart }
func (n Start) Children() []Node { return []Node{n.Child} }

// Sequence concatenates its items in order.
type Sequence struct {
	Items []Node
}

func (Sequence) Kind() Kind         { return KindSequence }
func (n Sequence) Children() []Node { return n.Items }

// OrExpr is a binary alternation. Longer alternations nest to the right.
type OrExpr struct {
	Left, Right Node
}

func (OrExpr) Kind() Kind         { return KindOrExpr }
func (n OrExpr) Children() []Node { return []Node{n.Left, n.Right} }

// Group is a parenthesised sequence with an optional quantifier, which is nil
// when absent.
type Group struct {
	Body       Node
	Repetition Node
}

func (Group) Kind() Kind { return KindGroup }

func (n Group) Children() []Node {
	if n.Repetition == nil {
		return []Node{n.Body}
	}
	return []Node{n.Body, n.Repetition}
}

// RepeatedTerm holds a term with up to two quantifiers. With three parts the
// order is quantifier, term, quantifier.
type RepeatedTerm struct {
	Parts []Node
}

func (RepeatedTerm) Kind() Kind         { return KindRepeatedTerm }
func (n RepeatedTerm) Children() []Node { return n.Parts }

// Wrapper is a transparent single-child node: Term, Element or BaseTerm.
type Wrapper struct {
	kind  Kind
	Child Node
}

func NewTerm(child Node) Wrapper     { return Wrapper{kind: KindTerm, Child: child} }
func NewElement(child Node) Wrapper  { return Wrapper{kind: KindElement, Child: child} }
func NewBaseTerm(child Node) Wrapper { return Wrapper{kind: KindBaseTerm, Child: child} }

func (n Wrapper) Kind() Kind       { return n.kind }
func (n Wrapper) Children() []Node { return []Node{n.Child} }

// Class is a predefined character class leaf such as Digit.
type Class struct {
	Of Kind
}

func (n Class) Kind() Kind     { return n.Of }
func (Class) Children() []Node { return nil }

// RangeExpr holds two quoted single-character tokens, quotes included.
type RangeExpr struct {
	Lo, Hi string
}

func (RangeExpr) Kind() Kind       { return KindRangeExpr }
func (RangeExpr) Children() []Node { return nil }

// Literal is a quoted CharLiteral or StringLiteral token, quotes included.
type Literal struct {
	kind  Kind
	Token string
}

func NewCharLiteral(token string) Literal   { return Literal{kind: KindCharLiteral, Token: token} }
func NewStringLiteral(token string) Literal { return Literal{kind: KindStringLiteral, Token: token} }

func (n Literal) Kind() Kind     { return n.kind }
func (Literal) Children() []Node { return nil }

// Except negates Excluded. Base is kept for the tree shape only.
type Except struct {
	Base, Excluded Node
}

func (Except) Kind() Kind         { return KindExcept }
func (n Except) Children() []Node { return []Node{n.Base, n.Excluded} }

// MaxCount is the largest repetition count a quantifier may carry.
const MaxCount = math.MaxInt32

// Quantifier is a repetition leaf. Min and Max carry the counts the kind
// needs: Exact and AtLeast use Min, AtMost uses Max, Between uses both.
type Quantifier struct {
	kind     Kind
	Min, Max int
}

func Optional() Quantifier        { return Quantifier{kind: KindOptional} }
func OneOrMore() Quantifier       { return Quantifier{kind: KindOneOrMore} }
func ZeroOrMore() Quantifier      { return Quantifier{kind: KindZeroOrMore} }
func Exact(n int) Quantifier      { return Quantifier{kind: KindExact, Min: n} }
func Between(n, m int) Quantifier { return Quantifier{kind: KindBetween, Min: n, Max: m} }
func AtLeast(n int) Quantifier    { return Quantifier{kind: KindAtLeast, Min: n} }
func AtMost(n int) Quantifier     { return Quantifier{kind: KindAtMost, Max: n} }

func (n Quantifier) Kind() Kind     { return n.kind }
func (Quantifier) Children() []Node { return nil }
