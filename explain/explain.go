// Package explain narrates how a phrase became a regex.
package explain

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/gotree"
	"github.com/arr-ai/regexphrase/pipeline"
	"github.com/arr-ai/regexphrase/translate"
)

// Section is one titled block of an explanation.
type Section struct {
	Title string
	Body  string
}

// Explain describes every stage recorded in trace. Stages the trace never
// reached are left out.
func Explain(trace pipeline.Trace) []Section {
	sections := []Section{{
		Title: "Normalization",
		Body: fmt.Sprintf("phrase:     %s\nnormalized: %s\n", trace.Phrase, trace.Normalized),
	}}
	if trace.Tree == nil {
		return sections
	}
	sections = append(sections, Section{Title: "Syntax tree", Body: ast.BuildTreeView(trace.Tree, true)})
	if len(trace.Steps) == 0 {
		return sections
	}
	sections = append(sections, Section{Title: "Construction", Body: construction(trace.Steps).Print()})

	var sb strings.Builder
	fmt.Fprintf(&sb, "raw:   %s\n", trace.Raw)
	if len(trace.Canon.Applied) > 0 {
		fmt.Fprintf(&sb, "rules: %s\n", strings.Join(trace.Canon.Applied, ", "))
	}
	if trace.Canon.Partial {
		fmt.Fprintf(&sb, "stopped after %d passes\n", trace.Canon.Passes)
	}
	fmt.Fprintf(&sb, "final: %s\n", trace.Final)
	return append(sections, Section{Title: "Regex", Body: sb.String()})
}

// Render joins sections as plain text.
func Render(sections []Section) string {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "=== %s ===\n%s", s.Title, s.Body)
	}
	return sb.String()
}

type pending struct {
	depth int
	tree  gotree.Tree
}

// construction rebuilds the tree from post-order steps. Wrapper nodes hand
// their child up a level instead of adding a line of their own.
func construction(steps []translate.Step) gotree.Tree {
	var stack []pending
	for _, s := range steps {
		var children []gotree.Tree
		for len(stack) > 0 && stack[len(stack)-1].depth == s.Depth+1 {
			children = append([]gotree.Tree{stack[len(stack)-1].tree}, children...)
			stack = stack[:len(stack)-1]
		}
		if _, ok := s.Node.(ast.Wrapper); ok && len(children) == 1 {
			stack = append(stack, pending{depth: s.Depth, tree: children[0]})
			continue
		}
		tree := gotree.New(describe(s.Node, s.Fragment))
		for _, child := range children {
			tree.AddTree(child)
		}
		stack = append(stack, pending{depth: s.Depth, tree: tree})
	}
	return stack[len(stack)-1].tree
}

func words(k ast.Kind) string {
	return strings.ReplaceAll(strcase.ToSnake(k.String()), "_", " ")
}

func describe(node ast.Node, fragment string) string {
	switch n := node.(type) {
	case ast.Start:
		return "complete expression → " + fragment
	case ast.Sequence:
		return fmt.Sprintf("sequence of %d → %s", len(n.Items), fragment)
	case ast.OrExpr:
		return "either side → " + fragment
	case ast.Group:
		return "group → " + fragment
	case ast.RepeatedTerm:
		return "repeated term → " + fragment
	case ast.Class:
		return words(n.Of) + " → " + fragment
	case ast.RangeExpr:
		return fmt.Sprintf("range %s to %s → %s", n.Lo, n.Hi, fragment)
	case ast.Literal:
		return fmt.Sprintf("literal %s → %s", n.Token, fragment)
	case ast.Except:
		return "anything but the excluded set → " + fragment
	case ast.Quantifier:
		return quantifier(n) + " → " + fragment
	}
	return words(node.Kind()) + " → " + fragment
}

func quantifier(q ast.Quantifier) string {
	switch q.Kind() {
	case ast.KindExact:
		return fmt.Sprintf("exactly %d times", q.Min)
	case ast.KindBetween:
		return fmt.Sprintf("between %d and %d times", q.Min, q.Max)
	case ast.KindAtLeast:
		return fmt.Sprintf("at least %d times", q.Min)
	case ast.KindAtMost:
		return fmt.Sprintf("at most %d times", q.Max)
	}
	return words(q.Kind())
}
