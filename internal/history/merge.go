package history

import "sort"

// DefaultLimit caps merged collection output when the caller does not
// specify one.
const DefaultLimit = 1000

// dedupKey identifies records that collapse to one: equal command text with
// timestamps in the same 60-second bucket.
type dedupKey struct {
	command string
	minute  int64
}

// Merge concatenates record lists from heterogeneous sources, deduplicates
// them (first occurrence wins), sorts by timestamp descending (stable), and
// truncates to limit (<= 0 means DefaultLimit). Merging is idempotent:
// running it on its own output removes nothing further.
func Merge(limit int, lists ...[]Record) []Record {
	if limit <= 0 {
		limit = DefaultLimit
	}

	seen := make(map[dedupKey]struct{})
	merged := []Record{}
	for _, list := range lists {
		for _, rec := range list {
			key := dedupKey{command: rec.Command, minute: rec.Timestamp / 60}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, rec)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
