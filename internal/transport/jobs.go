package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ganot/talentflow/internal/domain/job"
)

func (s *Server) listJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	f := job.Filter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	result, err := s.services.Jobs.Page(c.Request.Context(), f, page)
	if err != nil {
		writeError(c, err)
		return
	}
	if result.Jobs == nil {
		result.Jobs = []job.Job{}
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":       result.Jobs,
		"page":       page,
		"total":      result.Total,
		"totalPages": result.TotalPages,
	})
}

func (s *Server) createJob(c *gin.Context) {
	var input job.Job
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := s.services.Jobs.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateJob(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	result, err := s.services.Jobs.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) moveJob(c *gin.Context) {
	var body struct {
		Status job.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	result, err := s.services.Jobs.MoveStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
