package parser

// Root is the node index of the synthetic root above all level 0 rows.
const Root = -1

// Table is a parsed document: the rows in document order plus the
// parent/child index derived from their levels. Node indices are row
// indices, with Root for the synthetic root. Internally slot 0 belongs to
// the root and slot i+1 to row i.
type Table struct {
	rows   []Row
	parent []int // per row
	end    []int // per slot, one past the last row of the subtree
	first  []int // per slot, offset of the slot's children in kids
	count  []int // per slot
	kids   []int // row indices grouped by parent, in document order
}

// link computes the tree index over rows in two linear passes. Rows must
// already satisfy the level invariant.
func link(rows []Row) *Table {
	n := len(rows)
	t := &Table{
		rows:   rows,
		parent: make([]int, n),
		end:    make([]int, n+1),
		first:  make([]int, n+1),
		count:  make([]int, n+1),
		kids:   make([]int, n),
	}

	// Open parents, innermost last. The root never closes.
	stack := []int{Root}
	for i, r := range rows {
		for len(stack) > 1 && rows[stack[len(stack)-1]].Level >= r.Level {
			t.end[stack[len(stack)-1]+1] = i
			stack = stack[:len(stack)-1]
		}
		p := stack[len(stack)-1]
		t.parent[i] = p
		t.count[p+1]++
		stack = append(stack, i)
	}
	for _, s := range stack {
		t.end[s+1] = n
	}

	off := 0
	for s := range t.first {
		t.first[s] = off
		off += t.count[s]
	}
	next := make([]int, n+1)
	copy(next, t.first)
	for i, p := range t.parent {
		t.kids[next[p+1]] = i
		next[p+1]++
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns row i.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows returns the row table. The result must not be modified.
func (t *Table) Rows() []Row { return t.rows }

// Level returns the level of node, -1 for the root.
func (t *Table) Level(node int) int {
	if node == Root {
		return -1
	}
	return t.rows[node].Level
}

// Parent returns the parent of row i, Root for top-level rows.
func (t *Table) Parent(i int) int { return t.parent[i] }

// Children returns the row indices of node's children in document order.
// The result must not be modified.
func (t *Table) Children(node int) []int {
	s := node + 1
	return t.kids[t.first[s] : t.first[s]+t.count[s] : t.first[s]+t.count[s]]
}

// End returns one past the index of the last row in node's subtree.
func (t *Table) End(node int) int { return t.end[node+1] }
