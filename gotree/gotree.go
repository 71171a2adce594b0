// Package gotree builds and prints text trees.
package gotree

import (
	"strings"
)

const (
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

// Tree is a labelled node with ordered children.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

type tree struct {
	text  string
	items []Tree
}

// New returns a tree holding a single root labelled text.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a new child labelled text and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree with box-drawing guides, one label line per row.
// Multi-line labels keep their continuation lines under the guide.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text)
	sb.WriteString("\n")
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, indent string) {
	for i, item := range items {
		last := i == len(items)-1
		lead, follow := middleItem, continueItem
		if last {
			lead, follow = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.Text(), "\n") {
			sb.WriteString(indent)
			if j == 0 {
				sb.WriteString(lead)
			} else {
				sb.WriteString(follow)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		printItems(sb, item.Items(), indent+follow)
	}
}
