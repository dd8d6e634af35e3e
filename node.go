package sizetree

import "sort"

// Node is one entry in the returned size tree. It is immutable once Scan
// returns it: finalize sorts each directory's children, and in root-only
// mode Scan then drops the root's children; nothing mutates it afterward.
type Node struct {
	Path     string
	Size     int64
	IsDir    bool
	Children []*Node
}

// newLeaf builds a file (or symlink) leaf node carrying its own size.
func newLeaf(path string, size int64) *Node {
	return &Node{Path: path, Size: size}
}

// newEmptyDir builds a directory node with no children and zero size, the
// shape the walker returns for a missing, skipped, or unreadable directory.
func newEmptyDir(path string) *Node {
	return &Node{Path: path, IsDir: true}
}

// addChild attaches child to n and folds its size into n's aggregate. It is
// only ever called by the worker that owns n, before n is finalized.
func (n *Node) addChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	n.Size += child.Size
}

// finalize sorts n's children by size descending, path ascending, and, if
// rootOnly is set, discards them, keeping only the aggregated size.
func (n *Node) finalize(rootOnly bool) {
	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		return a.Path < b.Path
	})
	if rootOnly {
		n.Children = nil
	}
}
