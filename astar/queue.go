package astar

import "container/heap"

// queueItem is a worklist entry for one cell.
type queueItem struct {
	idx   int     // cell handle
	total float64 // current TotalEstimate of the cell
	seq   int     // order in which the cell first entered the worklist
	pos   int     // position in the heap, maintained by Swap
}

// worklist is an indexed min-heap ordered by (total, seq). Each cell has at
// most one live entry; re-enqueueing a cell already present only refreshes
// its key, so the first-insertion sequence decides ties. This yields the same
// selection order as a stable sort of an append-only list with visited
// entries skipped at the front.
type worklist struct {
	items  itemHeap
	byCell map[int]*queueItem
	next   int
}

func newWorklist(capacity int) *worklist {
	return &worklist{
		items:  make(itemHeap, 0, capacity),
		byCell: make(map[int]*queueItem, capacity),
	}
}

// Len returns the number of entries, stale ones included.
func (w *worklist) Len() int { return w.items.Len() }

// push adds idx with the given key, or refreshes the key of its live entry.
func (w *worklist) push(idx int, total float64) {
	if it, ok := w.byCell[idx]; ok {
		if total != it.total {
			it.total = total
			heap.Fix(&w.items, it.pos)
		}
		return
	}
	it := &queueItem{idx: idx, total: total, seq: w.next}
	w.next++
	w.byCell[idx] = it
	heap.Push(&w.items, it)
}

// update refreshes the key of idx if it is queued.
func (w *worklist) update(idx int, total float64) {
	if it, ok := w.byCell[idx]; ok && total != it.total {
		it.total = total
		heap.Fix(&w.items, it.pos)
	}
}

// pop removes and returns the handle with the smallest key.
func (w *worklist) pop() int {
	it := heap.Pop(&w.items).(*queueItem)
	delete(w.byCell, it.idx)

	return it.idx
}

type itemHeap []*queueItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].total != h[j].total {
		return h[i].total < h[j].total
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *itemHeap) Push(x interface{}) {
	it := x.(*queueItem)
	it.pos = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}
