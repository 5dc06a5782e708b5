package mockapi

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ganot/talentflow/internal/domain/candidate"
)

func (s *Server) listCandidates(c *gin.Context) {
	page := queryInt(c, 1, "page")
	limit := queryInt(c, 12, "limit", "pageSize")
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	stage := strings.ToLower(strings.TrimSpace(c.Query("stage")))
	jobParam := c.Query("job")

	s.data.mu.RLock()
	list := make([]candidate.Candidate, 0, len(s.data.candidates))
	for _, cand := range s.data.candidates {
		if search != "" {
			parts := []string{cand.Name, cand.Email, cand.Phone, cand.Location, cand.JobTitle}
			parts = append(parts, cand.Skills...)
			if !strings.Contains(strings.ToLower(strings.Join(parts, " ")), search) {
				continue
			}
		}
		if stage != "" && strings.ToLower(string(cand.Stage)) != stage {
			continue
		}
		if jobParam != "" && jobParam != "All Jobs" {
			if cand.JobTitle != jobParam && cand.JobID != jobParam {
				continue
			}
		}
		list = append(list, cand)
	}
	s.data.mu.RUnlock()

	sort.SliceStable(list, func(a, b int) bool {
		return list[a].AppliedAtTS > list[b].AppliedAtTS
	})
	pageItems := paginate(list, page, limit)
	if pageItems == nil {
		pageItems = []candidate.Candidate{}
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": pageItems,
		"meta":       meta{Total: len(list), Page: page, Limit: limit},
	})
}

func (s *Server) candidateStats(c *gin.Context) {
	counts := make(candidate.StageCounts, len(candidate.Stages))
	for _, st := range candidate.Stages {
		counts[st] = 0
	}

	s.data.mu.RLock()
	for _, cand := range s.data.candidates {
		st := candidate.Stage(strings.ToLower(string(cand.Stage)))
		if _, ok := counts[st]; ok {
			counts[st]++
		}
	}
	s.data.mu.RUnlock()

	c.JSON(http.StatusOK, counts)
}

func (s *Server) getCandidate(c *gin.Context) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	idx, ok := s.data.findCandidate(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	c.JSON(http.StatusOK, s.data.candidates[idx])
}

func (s *Server) patchCandidate(c *gin.Context) {
	id := c.Param("id")

	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	delete(attrs, "id")

	if raw, ok := attrs["stage"].(string); ok {
		stage := strings.ToLower(raw)
		if !candidate.ValidStage(candidate.Stage(stage)) {
			fail(c, http.StatusBadRequest, "Invalid stage")
			return
		}
		attrs["stage"] = stage
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	idx, ok := s.data.findCandidate(id)
	if !ok {
		fail(c, http.StatusNotFound, "Not found")
		return
	}

	// Moving to another job drags the denormalized title along.
	if jobID, ok := attrs["jobId"].(string); ok {
		if jidx, found := s.data.findJob(jobID); found {
			attrs["jobTitle"] = s.data.jobs[jidx].Title
		}
	}
	attrs["updatedAtTS"] = time.Now().UnixMilli()

	updated, err := patchRecord(s.data.candidates[idx], attrs)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.data.candidates[idx] = updated
	c.JSON(http.StatusOK, updated)
}
