package dom

// Walk calls fn for n and each descendant in document order. Returning
// false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in document order (n included) that
// matches pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if found != nil {
			return false
		}
		if pred(x) {
			found = x
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node in document order that matches pred.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if pred(x) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// GetElementByID returns the first element with the given id.
func (n *Node) GetElementByID(id string) *Node {
	return n.Find(func(x *Node) bool {
		if x.Type != ElementNode {
			return false
		}
		v, ok := x.GetAttribute("id")
		return ok && v == id
	})
}

// ElementsByTag returns every element with the given tag name.
func (n *Node) ElementsByTag(tag string) []*Node {
	return n.FindAll(func(x *Node) bool {
		return x.Type == ElementNode && x.Tag == tag
	})
}

// ElementPath returns the element-child indices leading from root to n,
// or nil and false if n is not inside root. Text and comment siblings are
// not counted, so the path survives an HTML round trip in which adjacent
// text nodes merge.
func ElementPath(root, n *Node) ([]int, bool) {
	var rev []int
	for cur := n; cur != root; cur = cur.parent {
		p := cur.parent
		if p == nil {
			return nil, false
		}
		idx := 0
		for _, c := range p.children {
			if c == cur {
				break
			}
			if c.Type == ElementNode {
				idx++
			}
		}
		rev = append(rev, idx)
	}
	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path, true
}

// ElementAt follows an element-child index path from n.
func (n *Node) ElementAt(path []int) (*Node, bool) {
	cur := n
	for _, idx := range path {
		els := cur.ChildElements()
		if idx < 0 || idx >= len(els) {
			return nil, false
		}
		cur = els[idx]
	}
	return cur, true
}
