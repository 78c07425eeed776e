package skeleton

import "container/heap"

// event is a pending wavefront event. Events are scheduled speculatively
// and re-checked for viability when they reach the front of the queue.
type event interface {
	// when returns the travel at which the event occurs; the queue key.
	when() float64
	// viable reports whether the event's sources are still active (and,
	// for splits, whether a valid target edge still exists).
	viable(w *Wavefront) bool
	// apply mutates the active set and topology and reports consumed
	// nodes through the emit callback.
	apply(w *Wavefront, emit Emit)
}

// eventQueue orders pending events by travel, breaking ties by insertion
// order so that runs are reproducible on symmetric inputs.
//
// The queue deliberately tolerates stale entries: an event is not removed
// when a lower-travel event consumes one of its sources. Liveness is
// re-checked when the entry is popped, which keeps topology mutation O(1)
// instead of requiring a queue update per change.
type eventQueue struct {
	h   eventHeap
	seq uint64
}

// push inserts an event.
func (q *eventQueue) push(e event) {
	q.seq++
	heap.Push(&q.h, queued{ev: e, seq: q.seq})
}

// pop removes and returns the minimum-travel event, or nil when empty.
func (q *eventQueue) pop() event {
	if len(q.h) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(queued).ev
}

type queued struct {
	ev  event
	seq uint64
}

type eventHeap []queued

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	ti, tj := h[i].ev.when(), h[j].ev.when()
	if ti != tj {
		return ti < tj
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(queued)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
