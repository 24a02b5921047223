package export

import (
	"sort"
	"strings"
)

// treeSeparator is the fixed line terminating the tree rendering.
var treeSeparator = strings.Repeat("-", 64)

// treeNode is one segment of a relative path. A node with children is a
// directory; a node where a full path terminates is a file.
type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) isDir() bool {
	return len(n.children) > 0
}

// RenderTree renders the given relative paths as a connector-annotated
// hierarchy followed by the separator line. It is purely structural: file
// content is never touched and there are no failure modes. Directories sort
// before files at each level; siblings of the same kind sort
// lexicographically.
func RenderTree(paths []string) string {
	root := &treeNode{children: map[string]*treeNode{}}
	for _, p := range paths {
		node := root
		for _, seg := range strings.Split(p, "/") {
			if seg == "" {
				continue
			}
			child, ok := node.children[seg]
			if !ok {
				child = &treeNode{name: seg, children: map[string]*treeNode{}}
				node.children[seg] = child
			}
			node = child
		}
	}

	var b strings.Builder
	renderChildren(&b, root, "")
	b.WriteString(treeSeparator + "\n")
	return b.String()
}

// renderChildren emits one line per child of n, recursing into directories.
// The prefix carries a continuation guide under non-last ancestors and
// blank indentation under last ones.
func renderChildren(b *strings.Builder, n *treeNode, prefix string) {
	kids := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		kids = append(kids, c)
	}
	sort.Slice(kids, func(i, j int) bool {
		if kids[i].isDir() != kids[j].isDir() {
			return kids[i].isDir()
		}
		return kids[i].name < kids[j].name
	})

	for i, child := range kids {
		connector := "├── "
		extension := "│   "
		if i == len(kids)-1 {
			connector = "└── "
			extension = "    "
		}

		name := child.name
		if child.isDir() {
			name += "/"
		}
		b.WriteString(prefix + connector + name + "\n")

		if child.isDir() {
			renderChildren(b, child, prefix+extension)
		}
	}
}
