package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ganot/talentflow/internal/domain/assessment"
)

func (s *Server) listAssessments(c *gin.Context) {
	list, err := s.services.Assessments.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []assessment.Assessment{}
	}
	c.JSON(http.StatusOK, gin.H{"assessments": list})
}

func (s *Server) createAssessment(c *gin.Context) {
	var input assessment.Assessment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	input.ID = ""

	result, err := s.services.Assessments.Save(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) updateAssessment(c *gin.Context) {
	var input assessment.Assessment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	input.ID = c.Param("id")

	result, err := s.services.Assessments.Save(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) deleteAssessment(c *gin.Context) {
	if err := s.services.Assessments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) counts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"counts":    s.services.Counts.Snapshot(),
		"updatedAt": s.services.Counts.UpdatedAt(),
	})
}

func (s *Server) refreshCounts(c *gin.Context) {
	counts := s.services.Counts.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}
