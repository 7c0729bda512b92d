package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/Ta1kunjms/GensanWorks/internal/compliance"
	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/services"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type EmployerHandler struct {
	svc   services.EmployerService
	files services.RequirementFileService
}

func NewEmployerHandler(svc services.EmployerService, files services.RequirementFileService) *EmployerHandler {
	return &EmployerHandler{svc: svc, files: files}
}

func employerView(e *models.Employer) services.RosterRow {
	entries := compliance.Build(compliance.ForEmployer(e))
	return services.RosterRow{
		Employer:                e,
		ComplianceEntries:       entries,
		PendingRequirementCount: compliance.PendingCount(entries),
	}
}

func (h *EmployerHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employerView(e))
}

type updateEmployerRequest struct {
	EstablishmentName *string `json:"establishmentName,omitempty"`
	TradeName         *string `json:"tradeName,omitempty"`

	HouseStreetVillage *string `json:"houseStreetVillage,omitempty"`
	Barangay           *string `json:"barangay,omitempty"`
	Municipality       *string `json:"municipality,omitempty"`
	Province           *string `json:"province,omitempty"`

	ContactPerson *models.ContactPerson `json:"contactPerson,omitempty"`
	ContactNumber *string               `json:"contactNumber,omitempty"`

	SRSSubscriber            *bool     `json:"srsSubscriber,omitempty"`
	AdditionalEstablishments *[]string `json:"additionalEstablishments,omitempty"`
}

func (h *EmployerHandler) UpdateMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req updateEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UpdateMe", "invalid request body", err))
		return
	}

	e, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	applyStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyStr(&e.EstablishmentName, req.EstablishmentName)
	applyStr(&e.TradeName, req.TradeName)
	applyStr(&e.HouseStreetVillage, req.HouseStreetVillage)
	applyStr(&e.Barangay, req.Barangay)
	applyStr(&e.Municipality, req.Municipality)
	applyStr(&e.Province, req.Province)
	applyStr(&e.ContactNumber, req.ContactNumber)

	if req.ContactPerson != nil {
		e.ContactPerson = datatypes.NewJSONType(*req.ContactPerson)
	}
	if req.SRSSubscriber != nil {
		e.SRSSubscriber = *req.SRSSubscriber
	}
	if req.AdditionalEstablishments != nil {
		e.AdditionalEstablishments = datatypes.NewJSONSlice(*req.AdditionalEstablishments)
	}

	if err := h.svc.Save(c.Request.Context(), e); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employerView(e))
}

func rosterQuery(c *gin.Context) services.RosterQuery {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return services.RosterQuery{
		Limit:           limit,
		IncludeArchived: c.Query("includeArchived") == "true",
		Filters: compliance.Filters{
			Search:       c.Query("search"),
			Status:       c.Query("status"),
			Subscription: c.Query("subscription"),
			Company:      c.Query("company"),
			Compliance:   c.Query("compliance"),
		},
	}
}

// List is the admin roster: filtered rows plus tab counts, every row
// decorated with its compliance view.
func (h *EmployerHandler) List(c *gin.Context) {
	roster, err := h.svc.List(c.Request.Context(), rosterQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

func (h *EmployerHandler) Approve(c *gin.Context) {
	e, err := h.svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employer": employerView(e)})
}

func (h *EmployerHandler) Reject(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Reject", "invalid request body", err))
		return
	}
	e, err := h.svc.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employer": employerView(e)})
}

func (h *EmployerHandler) Archive(c *gin.Context) {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Archive", "invalid request body", err))
		return
	}
	e, err := h.svc.Archive(c.Request.Context(), c.Param("id"), req.Archived)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employer": employerView(e)})
}

func (h *EmployerHandler) SubmitAllRequirements(c *gin.Context) {
	e, err := h.svc.SubmitAllRequirements(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employer": employerView(e)})
}

func (h *EmployerHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.BulkDelete", "invalid request body", err))
		return
	}
	deleted, err := h.svc.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ExportCompliance streams the compliance report for the filtered roster.
func (h *EmployerHandler) ExportCompliance(c *gin.Context) {
	rows, err := h.svc.ExportRows(c.Request.Context(), rosterQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+compliance.ReportFileName(len(rows))+`"`)
	if err := compliance.WriteReport(c.Writer, rows); err != nil {
		_ = c.Error(err)
	}
}

// UploadRequirementFile stores a compliance document and attaches its URL to
// the named requirement.
func (h *EmployerHandler) UploadRequirementFile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	// employers may only touch their own record; admins may touch any
	if role, _ := c.Get("role"); role == "employer" && c.Param("id") != userID {
		writeError(c, utils.E(utils.CodeForbidden, "EmployerHandler.UploadRequirementFile", "forbidden", nil))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UploadRequirementFile", "file is required", err))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UploadRequirementFile", "failed to read file", err))
		return
	}
	defer f.Close()

	row, e, err := h.files.Upload(
		c.Request.Context(),
		c.Param("id"),
		c.Param("key"),
		fh.Filename,
		fh.Header.Get("Content-Type"),
		int(fh.Size),
		f,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"file": row, "employer": employerView(e)})
}
