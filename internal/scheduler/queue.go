package scheduler

import (
	"container/heap"

	"github.com/dbpibus/dbpibus/internal/view"
)

type item struct {
	view  view.View
	seq   uint64
	index int
}

// queue is a min-heap on (priority, seq). seq grows with every push, so views
// of equal priority come out in the order they went in.
type queue []*item

var _ heap.Interface = (*queue)(nil)

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	pi, pj := q[i].view.Priority(), q[j].view.Priority()
	if pi != pj {
		return pi < pj
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	it := x.(*item)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]
	return it
}
