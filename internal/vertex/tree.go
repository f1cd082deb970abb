package vertex

// Tree is an ordered expression tree whose nodes are Vertex values. An
// internal node's Vertex is the operator being applied to its Children, in
// order, matching the combo-tree shape the inference driver walks.
type Tree struct {
	V        Vertex
	Children []*Tree
}

// Leaf wraps a childless vertex (argument, literal, object reference, ...).
func Leaf(v Vertex) *Tree { return &Tree{V: v} }

// Apply wraps an operator vertex around its argument subtrees.
func Apply(v Vertex, children ...*Tree) *Tree {
	return &Tree{V: v, Children: append([]*Tree(nil), children...)}
}

// PreOrder returns every node of the tree in pre-order. The reducer does
// not use it: its diagnostics carry NodeIndex -1.
func (t *Tree) PreOrder() []*Tree {
	var out []*Tree
	var walk func(*Tree)
	walk = func(n *Tree) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t)
	return out
}

// Parent returns the parent of target within t, and target's 0-based
// sibling index among the parent's children, or (nil, -1) if target is t
// itself or not found.
func (t *Tree) Parent(target *Tree) (*Tree, int) {
	for _, c := range t.Children {
		if c == target {
			return t, indexOf(t.Children, target)
		}
		if p, i := c.Parent(target); p != nil {
			return p, i
		}
	}
	return nil, -1
}

func indexOf(children []*Tree, target *Tree) int {
	for i, c := range children {
		if c == target {
			return i
		}
	}
	return -1
}

// Leaves returns every childless node of the tree, in left-to-right order.
func (t *Tree) Leaves() []*Tree {
	var out []*Tree
	for _, n := range t.PreOrder() {
		if len(n.Children) == 0 {
			out = append(out, n)
		}
	}
	return out
}
