package job

import "sort"

// Page is the reconciled, paginated jobs view.
type Page struct {
	Jobs       []Job
	Total      int
	TotalPages int
}

// Overlay merges a locally saved copy and a status override onto a remote
// job. Local fields win over remote fields with the same id; the status
// override wins over everything, including the saved copy's status.
func Overlay(remote Job, saved *Job, override Status) Job {
	merged := remote
	if saved != nil {
		merged = mergeLocal(merged, *saved)
	}
	if override != "" {
		merged.Status = override
	}
	return merged
}

// ReconcilePage produces a single consistent page from a remote page, the
// full local overlay map, and the status-override map.
//
// The server selected the page using statuses it knew at seed time, so jobs
// that an overlay moved out of the filtered status are excluded again here,
// and the advertised total shrinks by the number excluded. Jobs that exist
// only locally (the mock server reseeds on restart) are injected on page 1,
// ahead of server rows, and counted into the total. The corrected total is
// approximate when search, status and overlays interact at once; that is a
// known property of the merge, not something to tighten here.
func ReconcilePage(remote []Job, serverTotal int, saved map[string]Job, overrides map[string]Status, f Filter, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}

	serverIDs := make(map[string]struct{}, len(remote))
	overlaid := make([]Job, 0, len(remote))
	for _, r := range remote {
		serverIDs[r.ID] = struct{}{}
		var local *Job
		if s, ok := saved[r.ID]; ok {
			local = &s
		}
		overlaid = append(overlaid, Overlay(r, local, overrides[r.ID]))
	}

	// Re-apply the filter after the overlay so a page never mixes statuses.
	filtered := overlaid[:0:0]
	for _, j := range overlaid {
		if f.Matches(j) {
			filtered = append(filtered, j)
		}
	}

	excludedByOverlay := len(overlaid) - len(filtered)
	total := serverTotal - excludedByOverlay
	if total < 0 {
		total = 0
	}

	// Created-only jobs: saved locally, unknown to the ephemeral server.
	var createdOnly []Job
	for id, s := range saved {
		if _, ok := serverIDs[id]; ok {
			continue
		}
		if override, ok := overrides[id]; ok && override != "" {
			s.Status = override
		}
		if f.Matches(s) {
			createdOnly = append(createdOnly, s)
		}
	}
	SortByOrder(createdOnly)

	combined := filtered
	if page <= 1 {
		combined = append(append([]Job{}, createdOnly...), filtered...)
		SortByOrder(combined)
		if len(combined) > pageSize {
			combined = combined[:pageSize]
		}
		total += len(createdOnly)
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return Page{Jobs: combined, Total: total, TotalPages: totalPages}
}

// SortByOrder sorts jobs ascending by their order key, stably so equal keys
// keep their relative placement.
func SortByOrder(jobs []Job) {
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].OrderKey() < jobs[b].OrderKey()
	})
}

func mergeLocal(remote, local Job) Job {
	merged := remote
	if local.Title != "" {
		merged.Title = local.Title
	}
	if local.Slug != "" {
		merged.Slug = local.Slug
	}
	if local.Status != "" {
		merged.Status = local.Status
	}
	if local.Department != "" {
		merged.Department = local.Department
	}
	if local.Location != "" {
		merged.Location = local.Location
	}
	if local.Description != "" {
		merged.Description = local.Description
	}
	if local.Type != "" {
		merged.Type = local.Type
	}
	if local.Level != "" {
		merged.Level = local.Level
	}
	if local.Candidates != 0 {
		merged.Candidates = local.Candidates
	}
	if len(local.CandidateAvatars) > 0 {
		merged.CandidateAvatars = local.CandidateAvatars
	}
	if local.MinSalary != nil {
		merged.MinSalary = local.MinSalary
	}
	if local.MaxSalary != nil {
		merged.MaxSalary = local.MaxSalary
	}
	if len(local.Requirements) > 0 {
		merged.Requirements = local.Requirements
	}
	if len(local.Tags) > 0 {
		merged.Tags = local.Tags
	}
	if local.Order != nil {
		merged.Order = local.Order
	}
	return merged
}
