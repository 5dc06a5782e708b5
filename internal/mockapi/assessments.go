package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganot/talentflow/internal/domain/assessment"
)

func (s *Server) listAssessments(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	s.data.mu.RLock()
	list := make([]assessment.Assessment, 0, len(s.data.assessments))
	for _, a := range s.data.assessments {
		if search != "" {
			hay := strings.ToLower(a.Title + " " + a.JobTitle + " " + a.Description)
			if !strings.Contains(hay, search) {
				continue
			}
		}
		list = append(list, a)
	}
	s.data.mu.RUnlock()

	assessment.SortByCreated(list)
	c.JSON(http.StatusOK, gin.H{"assessments": list})
}

func (s *Server) getAssessment(c *gin.Context) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	idx, ok := s.data.findAssessment(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	c.JSON(http.StatusOK, s.data.assessments[idx])
}

func (s *Server) createAssessment(c *gin.Context) {
	var attrs assessment.Assessment
	if err := c.ShouldBindJSON(&attrs); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	attrs.Title = strings.TrimSpace(attrs.Title)
	if attrs.Title == "" {
		fail(c, http.StatusBadRequest, "Title is required")
		return
	}

	attrs.JobTitle = strings.TrimSpace(attrs.JobTitle)
	if attrs.JobTitle == "" {
		attrs.JobTitle = "Unknown Job"
	}
	attrs.Description = strings.TrimSpace(attrs.Description)
	if attrs.Sections == nil {
		attrs.Sections = []assessment.Section{}
	}
	if attrs.Status == "" {
		attrs.Status = assessment.StatusLive
	}
	attrs.Status = assessment.Status(strings.ToLower(string(attrs.Status)))
	attrs.ID = uuid.NewString()
	attrs.CreatedAt = time.Now().UnixMilli()

	s.data.mu.Lock()
	s.data.assessments = append(s.data.assessments, attrs)
	s.data.mu.Unlock()

	s.logger.Info("mock assessment created", "id", attrs.ID, "title", attrs.Title)
	c.JSON(http.StatusOK, attrs)
}

func (s *Server) patchAssessment(c *gin.Context) {
	id := c.Param("id")

	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	delete(attrs, "id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	idx, ok := s.data.findAssessment(id)
	if !ok {
		fail(c, http.StatusNotFound, "Not found")
		return
	}

	updated, err := patchRecord(s.data.assessments[idx], attrs)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.data.assessments[idx] = updated
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteAssessment(c *gin.Context) {
	id := c.Param("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	idx, ok := s.data.findAssessment(id)
	if !ok {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	s.data.assessments = append(s.data.assessments[:idx], s.data.assessments[idx+1:]...)
	c.Status(http.StatusNoContent)
}
