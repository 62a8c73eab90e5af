package analyzer

import "sort"

// orderedCounter counts string keys while remembering first-seen order, so
// rankings can break count ties deterministically by insertion order.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns entries with count > moreThan, sorted by count descending.
// Ties keep first-seen order. limit <= 0 means no cap.
func (c *orderedCounter) ranked(moreThan, limit int) []ValueCount {
	entries := make([]ValueCount, 0, len(c.order))
	for _, key := range c.order {
		if count := c.counts[key]; count > moreThan {
			entries = append(entries, ValueCount{Value: key, Count: count})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
