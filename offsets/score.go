package offsets

import "math"

// ringItem pairs a ring position with the hop count at which it was reached.
type ringItem struct {
	pos  int
	hops int
}

// ringWalker holds the reusable BFS state for scoring candidates on Z/n.
// One walker is reused across all candidates of a Select call.
type ringWalker struct {
	n       int
	queue   []ringItem
	seen    []bool
	visited []bool
	minDist []int
}

func newRingWalker(n int) *ringWalker {
	return &ringWalker{
		n:       n,
		queue:   make([]ringItem, 0, n),
		seen:    make([]bool, n),
		visited: make([]bool, n),
		minDist: make([]int, n),
	}
}

// reset clears per-walk state without reallocating.
func (w *ringWalker) reset() {
	w.queue = w.queue[:0]
	for i := 0; i < w.n; i++ {
		w.seen[i] = false
		w.visited[i] = false
		w.minDist[i] = 0
	}
}

// walk runs BFS from position 0. Position 0 itself is not pre-visited: its
// minDist records the shortest cycle back to the origin.
func (w *ringWalker) walk(steps Set) {
	w.reset()
	for _, k := range steps {
		w.push(k%w.n, 1)
	}

	remaining := w.n
	for head := 0; head < len(w.queue) && remaining > 0; head++ {
		item := w.queue[head]
		if !w.visited[item.pos] {
			w.visited[item.pos] = true
			w.minDist[item.pos] = item.hops
			remaining--
		}
		for _, k := range steps {
			w.push((item.pos+k)%w.n, item.hops+1)
		}
	}
}

// push enqueues pos once per walk.
func (w *ringWalker) push(pos, hops int) {
	if w.seen[pos] {
		return
	}
	w.seen[pos] = true
	w.queue = append(w.queue, ringItem{pos: pos, hops: hops})
}

// score computes ⌊D / D0⌋ for steps, or +Inf when steps do not span the ring.
func (w *ringWalker) score(steps Set) float64 {
	if !Reachable(w.n, steps) {
		return math.Inf(1)
	}
	w.walk(steps)

	d0 := w.minDist[0]
	if d0 < 1 {
		// origin never re-reached; treat like an unreachable set
		return math.Inf(1)
	}
	total := 0
	for i := 1; i < w.n; i++ {
		total += w.minDist[i]
	}

	return float64(total / d0)
}

// Score returns the BFS connectivity score of s on a ring of n positions.
// Lower is better. Unreachable sets score +Inf.
//
// The quotient D / D0 is an integer division: scores are whole numbers.
func Score(n int, s Set) float64 {
	if n < 2 || len(s) == 0 {
		return math.Inf(1)
	}
	return newRingWalker(n).score(s)
}

// ReturnDistance returns D0, the fewest hops needed to leave position 0 and
// come back using the offsets in s, or 0 if the walk never returns.
func ReturnDistance(n int, s Set) int {
	if n < 2 || len(s) == 0 {
		return 0
	}
	w := newRingWalker(n)
	w.walk(s)

	return w.minDist[0]
}
