package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/Ta1kunjms/GensanWorks/internal/completeness"
	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/services"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type ApplicantHandler struct {
	svc services.ApplicantService
}

func NewApplicantHandler(svc services.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{svc: svc}
}

// applicantView decorates a record with its derived completeness score.
type applicantView struct {
	*models.Applicant
	ProfileCompleteness int                    `json:"profileCompleteness"`
	Checklist           completeness.Checklist `json:"checklist"`
}

func viewOf(a *models.Applicant) applicantView {
	in := completeness.ForApplicant(a)
	return applicantView{
		Applicant:           a,
		ProfileCompleteness: completeness.Score(in),
		Checklist:           completeness.Evaluate(in),
	}
}

func (h *ApplicantHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	a, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(a))
}

type updateApplicantRequest struct {
	Surname       *string `json:"surname,omitempty"`
	FirstName     *string `json:"firstName,omitempty"`
	MiddleName    *string `json:"middleName,omitempty"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty"`
	Sex           *string `json:"sex,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`

	HouseStreetVillage *string `json:"houseStreetVillage,omitempty"`
	Barangay           *string `json:"barangay,omitempty"`
	Municipality       *string `json:"municipality,omitempty"`
	Province           *string `json:"province,omitempty"`

	Education            *json.RawMessage `json:"education,omitempty"`
	WorkExperience       *json.RawMessage `json:"workExperience,omitempty"`
	OtherSkills          *json.RawMessage `json:"otherSkills,omitempty"`
	PreferredOccupations *json.RawMessage `json:"preferredOccupations,omitempty"`
	LanguageProficiency  *json.RawMessage `json:"languageProficiency,omitempty"`
	TechnicalTraining    *json.RawMessage `json:"technicalTraining,omitempty"`
	ProfessionalLicenses *json.RawMessage `json:"professionalLicenses,omitempty"`

	IsOFW *bool `json:"isOfw,omitempty"`
}

func (h *ApplicantHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req updateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicantHandler.Update", "invalid request body", err))
		return
	}

	a, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	applyStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyStr(&a.Surname, req.Surname)
	applyStr(&a.FirstName, req.FirstName)
	applyStr(&a.MiddleName, req.MiddleName)
	applyStr(&a.DateOfBirth, req.DateOfBirth)
	applyStr(&a.Sex, req.Sex)
	applyStr(&a.ContactNumber, req.ContactNumber)
	applyStr(&a.HouseStreetVillage, req.HouseStreetVillage)
	applyStr(&a.Barangay, req.Barangay)
	applyStr(&a.Municipality, req.Municipality)
	applyStr(&a.Province, req.Province)

	applyJSON := func(dst *datatypes.JSON, src *json.RawMessage) {
		if src != nil {
			*dst = datatypes.JSON(*src)
		}
	}
	applyJSON(&a.Education, req.Education)
	applyJSON(&a.WorkExperience, req.WorkExperience)
	applyJSON(&a.OtherSkills, req.OtherSkills)
	applyJSON(&a.PreferredOccupations, req.PreferredOccupations)
	applyJSON(&a.LanguageProficiency, req.LanguageProficiency)
	applyJSON(&a.TechnicalTraining, req.TechnicalTraining)
	applyJSON(&a.ProfessionalLicenses, req.ProfessionalLicenses)

	if req.IsOFW != nil {
		a.IsOFW = *req.IsOFW
	}

	if err := h.svc.Save(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(a))
}

func (h *ApplicantHandler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(a))
}

func (h *ApplicantHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	includeArchived := c.Query("includeArchived") == "true"

	list, err := h.svc.List(c.Request.Context(), limit, includeArchived)
	if err != nil {
		writeError(c, err)
		return
	}

	views := make([]applicantView, 0, len(list))
	for _, a := range list {
		views = append(views, viewOf(a))
	}
	c.JSON(http.StatusOK, gin.H{"applicants": views})
}

func (h *ApplicantHandler) Archive(c *gin.Context) {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicantHandler.Archive", "invalid request body", err))
		return
	}
	a, err := h.svc.Archive(c.Request.Context(), c.Param("id"), req.Archived)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicant": viewOf(a)})
}

func (h *ApplicantHandler) Import(c *gin.Context) {
	var req struct {
		Rows []map[string]any `json:"rows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicantHandler.Import", "invalid request body", err))
		return
	}
	imported, err := h.svc.Import(c.Request.Context(), req.Rows)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}
