package dom

type Document struct {
	Root  *Node
	index map[string]*Node
}

func NewDocument(root *Node) *Document {
	d := &Document{Root: root}
	d.Reindex()
	return d
}

// Reindex rebuilds the ID index after the tree changed shape.
func (d *Document) Reindex() {
	d.index = make(map[string]*Node)
	d.Root.Walk(func(n *Node) bool {
		if n.ID != "" {
			d.index[n.ID] = n
		}
		return true
	})
}

// Ref returns the mounted node with the given ID, or nil.
func (d *Document) Ref(id string) *Node {
	if d == nil {
		return nil
	}
	n, ok := d.index[id]
	if !ok || !n.Mounted() {
		return nil
	}
	return n
}

// Refs resolves several IDs, keeping nil entries for missing nodes so
// callers can index by position.
func (d *Document) Refs(ids ...string) []*Node {
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = d.Ref(id)
	}
	return out
}

func (d *Document) Height() float64 {
	return d.Root.Box.Height
}

// Hit returns the mounted nodes whose layout box contains the point,
// outermost first.
func (d *Document) Hit(x, y float64) []*Node {
	var out []*Node
	d.Root.Walk(func(n *Node) bool {
		if !n.Mounted() {
			return false
		}
		if n.Box.Contains(x, y) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Mutations sums property writes over the whole tree.
func (d *Document) Mutations() int {
	total := 0
	d.Root.Walk(func(n *Node) bool {
		total += n.mutations
		return true
	})
	return total
}
