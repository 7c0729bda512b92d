package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ta1kunjms/GensanWorks/internal/services"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	a, err := h.svc.Apply(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": a})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	apps, err := h.svc.ListByApplicant(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListForJob serves the posting owner; admins see every posting.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	requester := userID
	if role, _ := c.Get("role"); role == "admin" {
		requester = ""
	}
	apps, err := h.svc.ListByJob(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	requester := userID
	if role, _ := c.Get("role"); role == "admin" {
		requester = ""
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Remark string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.SetStatus", "invalid request body", err))
		return
	}
	a, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status, req.Remark, requester)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": a})
}
