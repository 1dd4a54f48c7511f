package fontheight

import (
	"strings"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Exemplars holds the most extreme words measured for one
// (location, word list) pair.
type Exemplars struct {
	// Lowest is sorted ascending by lowest extent: the word reaching
	// furthest below the baseline comes first.
	Lowest []WordExtremes
	// Highest is sorted descending by highest extent: the word reaching
	// furthest above the baseline comes first.
	Highest []WordExtremes
}

// IsEmpty reports whether no words were retained on either side.
func (e Exemplars) IsEmpty() bool {
	return len(e.Lowest) == 0 && len(e.Highest) == 0
}

// Collector retains the N most extreme words seen so far, bounded on
// both sides. Each side is a binary heap ordered weakest-first, so
// admission against a full collector is a single peek and eviction pops
// the top.
//
// Collector is not safe for concurrent use; each (location, word list)
// unit owns its own and merges afterwards.
type Collector struct {
	n       int
	lowest  *binaryheap.Heap
	highest *binaryheap.Heap
}

// NewCollector creates a collector retaining at most n words per
// extreme. A collector with n <= 0 retains nothing.
func NewCollector(n int) *Collector {
	return &Collector{
		n:       n,
		lowest:  binaryheap.NewWith(byWeakestLowest),
		highest: binaryheap.NewWith(byWeakestHighest),
	}
}

// byWeakestLowest orders candidates for the lowest side so the least
// extreme retained word surfaces first: a larger lowest extent is
// weaker, and on equal extents the lexicographically larger word is
// weaker. The mirror-image comparator below does the same for the
// highest side.
func byWeakestLowest(a, b interface{}) int {
	wa, wb := a.(WordExtremes), b.(WordExtremes)
	switch {
	case wa.Extremes.Lowest > wb.Extremes.Lowest:
		return -1
	case wa.Extremes.Lowest < wb.Extremes.Lowest:
		return 1
	}
	return -strings.Compare(wa.Word, wb.Word)
}

func byWeakestHighest(a, b interface{}) int {
	wa, wb := a.(WordExtremes), b.(WordExtremes)
	switch {
	case wa.Extremes.Highest < wb.Extremes.Highest:
		return -1
	case wa.Extremes.Highest > wb.Extremes.Highest:
		return 1
	}
	return -strings.Compare(wa.Word, wb.Word)
}

// Push offers a measured word to both sides of the collector. The word
// is admitted to a side when the side holds fewer than N words or when
// it is more extreme than the weakest word retained there, evicting
// that word.
func (c *Collector) Push(we WordExtremes) {
	pushBounded(c.lowest, byWeakestLowest, we, c.n)
	pushBounded(c.highest, byWeakestHighest, we, c.n)
}

func pushBounded(h *binaryheap.Heap, weaker func(a, b interface{}) int, we WordExtremes, n int) {
	if n <= 0 {
		return
	}
	if h.Size() < n {
		h.Push(we)
		return
	}
	weakest, _ := h.Peek()
	if weaker(we, weakest) > 0 {
		h.Pop()
		h.Push(we)
	}
}

// Saturated reports whether both sides hold N words. Once a list that
// is pre-sorted by descending extremity saturates the collector, no
// later word can displace a retained one, so the caller may stop.
func (c *Collector) Saturated() bool {
	return c.n <= 0 || (c.lowest.Size() >= c.n && c.highest.Size() >= c.n)
}

// Merge drains another collector into this one, side by side. Both
// collectors must have been created with the same N for the result to
// equal single-threaded collection.
func (c *Collector) Merge(o *Collector) {
	for {
		v, ok := o.lowest.Pop()
		if !ok {
			break
		}
		pushBounded(c.lowest, byWeakestLowest, v.(WordExtremes), c.n)
	}
	for {
		v, ok := o.highest.Pop()
		if !ok {
			break
		}
		pushBounded(c.highest, byWeakestHighest, v.(WordExtremes), c.n)
	}
}

// Build drains the collector into fully sorted exemplars: most extreme
// first on both sides. The collector is empty afterwards.
func (c *Collector) Build() Exemplars {
	return Exemplars{
		Lowest:  drainStrongestFirst(c.lowest),
		Highest: drainStrongestFirst(c.highest),
	}
}

// drainStrongestFirst pops weakest-first and reverses, leaving the most
// extreme entries at the front.
func drainStrongestFirst(h *binaryheap.Heap) []WordExtremes {
	out := make([]WordExtremes, 0, h.Size())
	for {
		v, ok := h.Pop()
		if !ok {
			break
		}
		out = append(out, v.(WordExtremes))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
