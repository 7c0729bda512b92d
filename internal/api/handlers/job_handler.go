package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/services"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type createJobRequest struct {
	Position       string           `json:"position" binding:"required"`
	Description    string           `json:"description"`
	Location       string           `json:"location"`
	Vacancies      int              `json:"vacancies"`
	SalaryMin      int              `json:"salaryMin"`
	SalaryMax      int              `json:"salaryMax"`
	Qualifications *json.RawMessage `json:"qualifications,omitempty"`
	Draft          bool             `json:"draft"`
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}

	j := &models.Job{
		EmployerID:  userID,
		Position:    req.Position,
		Description: req.Description,
		Location:    req.Location,
		Vacancies:   req.Vacancies,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
	}
	if req.Qualifications != nil {
		j.Qualifications = datatypes.JSON(*req.Qualifications)
	}
	if req.Draft {
		j.Status = models.JobStatusDraft
	}

	if err := h.svc.Create(c.Request.Context(), j); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": j})
}

// ListPublic serves the jobseeker board: active, unarchived postings only.
func (h *JobHandler) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	jobs, err := h.svc.ListPublic(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	jobs, err := h.svc.ListByEmployer(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) ListAdmin(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	jobs, err := h.svc.ListAll(c.Request.Context(), c.Query("status"), c.Query("includeArchived") == "true", limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

func (h *JobHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.SetStatus", "invalid request body", err))
		return
	}
	j, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

func (h *JobHandler) Archive(c *gin.Context) {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Archive", "invalid request body", err))
		return
	}
	j, err := h.svc.Archive(c.Request.Context(), c.Param("id"), req.Archived)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}
