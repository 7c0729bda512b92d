package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/services"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type applicantSignupRequest struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Surname       string `json:"surname"`
	FirstName     string `json:"firstName"`
	DateOfBirth   string `json:"dateOfBirth"`
	ContactNumber string `json:"contactNumber"`
}

func (h *AuthHandler) SignupApplicant(c *gin.Context) {
	var req applicantSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.SignupApplicant", "invalid request body", err))
		return
	}

	a := &models.Applicant{
		Email:         req.Email,
		Surname:       req.Surname,
		FirstName:     req.FirstName,
		DateOfBirth:   req.DateOfBirth,
		ContactNumber: req.ContactNumber,
	}
	token, err := h.svc.SignupApplicant(c.Request.Context(), a, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "applicant": a})
}

type employerSignupRequest struct {
	Email             string                `json:"email" binding:"required"`
	Password          string                `json:"password" binding:"required"`
	EstablishmentName string                `json:"establishmentName" binding:"required"`
	TradeName         string                `json:"tradeName"`
	ContactNumber     string                `json:"contactNumber"`
	ContactPerson     *models.ContactPerson `json:"contactPerson"`
}

func (h *AuthHandler) SignupEmployer(c *gin.Context) {
	var req employerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.SignupEmployer", "invalid request body", err))
		return
	}

	e := &models.Employer{
		Email:             req.Email,
		EstablishmentName: req.EstablishmentName,
		TradeName:         req.TradeName,
		ContactNumber:     req.ContactNumber,
	}
	if req.ContactPerson != nil {
		e.ContactPerson = datatypes.NewJSONType(*req.ContactPerson)
	}
	token, err := h.svc.SignupEmployer(c.Request.Context(), e, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "employer": e})
}

func (h *AuthHandler) LoginApplicant(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.LoginApplicant", "invalid request body", err))
		return
	}
	token, a, err := h.svc.LoginApplicant(c.Request.Context(), services.Credentials(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "applicant": a})
}

func (h *AuthHandler) LoginEmployer(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.LoginEmployer", "invalid request body", err))
		return
	}
	token, e, err := h.svc.LoginEmployer(c.Request.Context(), services.Credentials(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "employer": e})
}

func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.LoginAdmin", "invalid request body", err))
		return
	}
	token, a, err := h.svc.LoginAdmin(c.Request.Context(), services.Credentials(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": a})
}
