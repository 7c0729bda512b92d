package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ta1kunjms/GensanWorks/internal/api/handlers"
	"github.com/Ta1kunjms/GensanWorks/internal/api/middleware"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Applicant   *handlers.ApplicantHandler
	Employer    *handlers.EmployerHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Referral    *handlers.ReferralHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Public
	api.POST("/auth/applicants/signup", d.Auth.SignupApplicant)
	api.POST("/auth/applicants/login", d.Auth.LoginApplicant)
	api.POST("/auth/employers/signup", d.Auth.SignupEmployer)
	api.POST("/auth/employers/login", d.Auth.LoginEmployer)
	api.POST("/auth/admins/login", d.Auth.LoginAdmin)
	api.GET("/jobs", d.Job.ListPublic)
	api.GET("/jobs/:id", d.Job.Get)

	// Authenticated
	auth := api.Group("/")
	auth.Use(middleware.JWTAuth())

	applicant := auth.Group("/", middleware.RequireApplicant())
	applicant.GET("/applicants/me", d.Applicant.Me)
	applicant.PUT("/applicants/me", d.Applicant.Update)
	applicant.POST("/jobs/:id/apply", d.Application.Apply)
	applicant.GET("/applications/me", d.Application.ListMine)
	applicant.GET("/referrals/me", d.Referral.ListMine)

	employer := auth.Group("/", middleware.RequireEmployer())
	employer.GET("/employers/me", d.Employer.Me)
	employer.PUT("/employers/me", d.Employer.UpdateMe)
	employer.POST("/jobs", d.Job.Create)
	employer.GET("/employers/me/jobs", d.Job.ListMine)

	ownerOrAdmin := auth.Group("/", middleware.RequireRole("employer", "admin"))
	ownerOrAdmin.GET("/jobs/:id/applications", d.Application.ListForJob)
	ownerOrAdmin.PATCH("/applications/:id/status", d.Application.SetStatus)
	ownerOrAdmin.POST("/employers/:id/requirements/:key/file", d.Employer.UploadRequirementFile)

	admin := auth.Group("/", middleware.RequireAdmin())
	admin.GET("/admin/employers", d.Employer.List)
	admin.GET("/admin/employers/export", d.Employer.ExportCompliance)
	admin.GET("/admin/applicants", d.Applicant.List)
	admin.GET("/admin/applicants/:id", d.Applicant.Get)
	admin.POST("/admin/applicants/import", d.Applicant.Import)
	admin.PATCH("/admin/applicants/:id/archive", d.Applicant.Archive)
	admin.GET("/admin/jobs", d.Job.ListAdmin)

	admin.PATCH("/employers/:id/approve", d.Employer.Approve)
	admin.PATCH("/employers/:id/reject", d.Employer.Reject)
	admin.PATCH("/employers/:id/archive", d.Employer.Archive)
	admin.PATCH("/employers/:id/requirements/submit-all", d.Employer.SubmitAllRequirements)
	admin.POST("/employers/bulk-delete", d.Employer.BulkDelete)

	admin.PATCH("/jobs/:id/status", d.Job.SetStatus)
	admin.PATCH("/jobs/:id/archive", d.Job.Archive)
	admin.POST("/referrals", d.Referral.Issue)
	admin.PATCH("/referrals/:id/status", d.Referral.SetStatus)
}
