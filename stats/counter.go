package stats

import "sort"

// Count is one distinct value and its number of occurrences
type Count[K comparable] struct {
	Value K
	Count int
}

// counter tallies values and remembers the order they first appeared in.
type counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: map[K]int{}}
}

func (c *counter[K]) add(v K) {
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

// mode returns the most frequent value; the earliest seen wins a tie.
func (c *counter[K]) mode() (Count[K], bool) {
	var best Count[K]
	found := false
	for _, v := range c.order {
		if n := c.counts[v]; !found || n > best.Count {
			best = Count[K]{Value: v, Count: n}
			found = true
		}
	}
	return best, found
}

// distribution lists every value by descending count, ties in first-seen order.
func (c *counter[K]) distribution() []Count[K] {
	out := make([]Count[K], 0, len(c.order))
	for _, v := range c.order {
		out = append(out, Count[K]{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
