package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ta1kunjms/GensanWorks/internal/services"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type ReferralHandler struct {
	svc services.ReferralService
}

func NewReferralHandler(svc services.ReferralService) *ReferralHandler {
	return &ReferralHandler{svc: svc}
}

func (h *ReferralHandler) Issue(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		ApplicantID string `json:"applicantId" binding:"required"`
		JobID       string `json:"jobId" binding:"required"`
		Remark      string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ReferralHandler.Issue", "invalid request body", err))
		return
	}

	ref, err := h.svc.Issue(c.Request.Context(), req.ApplicantID, req.JobID, adminID, req.Remark)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"referral": ref})
}

func (h *ReferralHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	refs, err := h.svc.ListByApplicant(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referrals": refs})
}

func (h *ReferralHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Remark string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ReferralHandler.SetStatus", "invalid request body", err))
		return
	}
	ref, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status, req.Remark)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referral": ref})
}
