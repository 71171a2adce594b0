package ast

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/regexphrase/gotree"
)

// Label names a node the way the tree view shows it: the snake-case kind,
// followed by the leaf payload if there is one.
func Label(n Node) string {
	name := strcase.ToSnake(n.Kind().String())
	switch n := n.(type) {
	case RangeExpr:
		return fmt.Sprintf("%s %s %s", name, n.Lo, n.Hi)
	case Literal:
		return fmt.Sprintf("%s %s", name, n.Token)
	case Quantifier:
		switch n.kind {
		case KindExact, KindAtLeast:
			return fmt.Sprintf("%s %d", name, n.Min)
		case KindAtMost:
			return fmt.Sprintf("%s %d", name, n.Max)
		case KindBetween:
			return fmt.Sprintf("%s %d %d", name, n.Min, n.Max)
		}
	}
	return name
}

// BuildTreeView renders root as an indented tree. With collapse set, chains
// of transparent wrappers are folded into their child.
func BuildTreeView(root Node, collapse bool) string {
	return fromAst(root, collapse).Print()
}

func fromAst(node Node, collapse bool) gotree.Tree {
	if w, ok := node.(Wrapper); ok && collapse {
		return fromAst(w.Child, collapse)
	}
	tree := gotree.New(Label(node))
	for _, child := range node.Children() {
		tree.AddTree(fromAst(child, collapse))
	}
	return tree
}
