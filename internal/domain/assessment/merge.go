package assessment

import "sort"

// Merge combines the remote collection with locally saved records, keyed by
// id. Remote records go in first, locals replace them on conflict ("local
// wins"), and any id present in the tombstone set is skipped from both sides:
// a deleted assessment never resurfaces, even if the reseeded server still
// carries a copy.
func Merge(remote, local []Assessment, deleted map[string]struct{}) []Assessment {
	byID := make(map[string]Assessment, len(remote)+len(local))
	order := make([]string, 0, len(remote)+len(local))

	insert := func(a Assessment) {
		if a.ID == "" {
			return
		}
		if _, gone := deleted[a.ID]; gone {
			return
		}
		if _, seen := byID[a.ID]; !seen {
			order = append(order, a.ID)
		}
		byID[a.ID] = a
	}

	for _, a := range remote {
		insert(a)
	}
	for _, a := range local {
		insert(a)
	}

	out := make([]Assessment, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// SortByCreated orders assessments newest first.
func SortByCreated(list []Assessment) {
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].CreatedAt > list[b].CreatedAt
	})
}
