package internal

type pendingSet struct {
	input *Input
	value any
}

// SetQueue holds input writes issued during a running cascade, in FIFO order.
type SetQueue struct {
	sets []pendingSet
}

func NewSetQueue() *SetQueue {
	return &SetQueue{
		sets: make([]pendingSet, 0),
	}
}

func (q *SetQueue) Enqueue(in *Input, v any) {
	q.sets = append(q.sets, pendingSet{input: in, value: v})
}

func (q *SetQueue) Dequeue() (pendingSet, bool) {
	if len(q.sets) == 0 {
		return pendingSet{}, false
	}

	next := q.sets[0]
	q.sets[0] = pendingSet{}
	q.sets = q.sets[1:]

	return next, true
}

func (q *SetQueue) Len() int {
	return len(q.sets)
}

func (q *SetQueue) Clear() {
	q.sets = q.sets[:0]
}
