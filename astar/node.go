package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// noParent marks the root of the backpointer tree.
const noParent int32 = -1

// node is one search record. Nodes live in a per-search arena and refer to
// their parent by arena index, so reconstruction is an index-following loop.
type node struct {
	pos    gridgraph.Point
	g, f   Score
	parent int32 // arena index of the parent, noParent for the start
	index  int   // position in the heap, -1 once popped
}

// nodeHeap is a min-heap of arena indices ordered by f ascending. It holds
// a pointer to the arena so Less and Swap can reach the nodes. There is no
// secondary key; equal f-scores come out in heap order.
type nodeHeap struct {
	arena *[]node
	items []int32
}

// Len returns the number of open entries.
func (h *nodeHeap) Len() int { return len(h.items) }

// Less orders by f ascending.
func (h *nodeHeap) Less(i, j int) bool {
	a := *h.arena
	return a[h.items[i]].f < a[h.items[j]].f
}

// Swap swaps two entries and keeps their heap positions current.
func (h *nodeHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	a := *h.arena
	a[h.items[i]].index = i
	a[h.items[j]].index = j
}

// Push appends an arena index; called by heap.Push.
func (h *nodeHeap) Push(x any) {
	id := x.(int32)
	(*h.arena)[id].index = len(h.items)
	h.items = append(h.items, id)
}

// Pop removes the last entry; called by heap.Pop.
func (h *nodeHeap) Pop() any {
	n := len(h.items)
	id := h.items[n-1]
	h.items = h.items[:n-1]
	(*h.arena)[id].index = -1

	return id
}
