package mockapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganot/talentflow/internal/domain/job"
)

func (s *Server) listJobs(c *gin.Context) {
	page := queryInt(c, 1, "page")
	limit := queryInt(c, 10, "limit", "pageSize")
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))

	s.data.mu.RLock()
	list := make([]job.Job, 0, len(s.data.jobs))
	for _, j := range s.data.jobs {
		if search != "" {
			hay := strings.ToLower(j.Title + " " + j.Slug + " " + j.Department + " " + j.Location + " " + strings.Join(j.Tags, " "))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		if status != "" && strings.ToLower(string(j.Status)) != status {
			continue
		}
		list = append(list, j)
	}
	s.data.mu.RUnlock()

	job.SortByOrder(list)
	pageItems := paginate(list, page, limit)
	if pageItems == nil {
		pageItems = []job.Job{}
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs": pageItems,
		"meta": meta{Total: len(list), Page: page, Limit: limit},
	})
}

func (s *Server) getJob(c *gin.Context) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	idx, ok := s.data.findJob(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	c.JSON(http.StatusOK, s.data.jobs[idx])
}

func (s *Server) createJob(c *gin.Context) {
	var attrs job.Job
	if err := c.ShouldBindJSON(&attrs); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	attrs.Title = strings.TrimSpace(attrs.Title)
	if attrs.Title == "" {
		fail(c, http.StatusBadRequest, "Title is required")
		return
	}

	base := job.Slugify(attrs.Slug)
	if base == "" {
		base = job.Slugify(attrs.Title)
	}
	if base == "" {
		base = fmt.Sprintf("job-%d", time.Now().UnixMilli())
	}

	if attrs.Status == "" {
		attrs.Status = job.StatusActive
	}
	if attrs.Location == "" {
		attrs.Location = "Remote"
	}
	if attrs.Type == "" {
		attrs.Type = "full-time"
	}
	if attrs.Level == "" {
		attrs.Level = "mid"
	}
	if attrs.Requirements == nil {
		attrs.Requirements = []string{}
	}
	if attrs.Tags == nil {
		attrs.Tags = []string{}
	}
	if attrs.CandidateAvatars == nil {
		attrs.CandidateAvatars = []string{}
	}

	s.data.mu.Lock()
	attrs.ID = uuid.NewString()
	attrs.Slug = s.data.uniqueSlug(base, "")
	order := s.data.minOrder() - 1
	attrs.Order = &order
	s.data.jobs = append(s.data.jobs, attrs)
	s.data.mu.Unlock()

	s.logger.Info("mock job created", "id", attrs.ID, "slug", attrs.Slug)
	c.JSON(http.StatusOK, attrs)
}

func (s *Server) patchJob(c *gin.Context) {
	id := c.Param("id")

	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	delete(attrs, "id")

	if raw, ok := attrs["slug"].(string); ok {
		slug := job.Slugify(raw)
		if slug == "" {
			delete(attrs, "slug")
		} else {
			attrs["slug"] = slug
		}
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	idx, ok := s.data.findJob(id)
	if !ok {
		fail(c, http.StatusNotFound, "Not found")
		return
	}

	if slug, ok := attrs["slug"].(string); ok && s.data.findJobBySlug(slug, id) {
		fail(c, http.StatusConflict, "Slug must be unique")
		return
	}

	updated, err := patchRecord(s.data.jobs[idx], attrs)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.data.jobs[idx] = updated
	c.JSON(http.StatusOK, updated)
}
