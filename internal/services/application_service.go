package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/repositories"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

var applicationStatuses = map[string]bool{
	models.ApplicationStatusPending:     true,
	models.ApplicationStatusShortlisted: true,
	models.ApplicationStatusHired:       true,
	models.ApplicationStatusRejected:    true,
	models.ApplicationStatusWithdrawn:   true,
}

type ApplicationService interface {
	Apply(ctx context.Context, jobID, applicantID string) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID, requesterEmployerID string) ([]*models.Application, error)
	SetStatus(ctx context.Context, id, status, remark, requesterEmployerID string) (*models.Application, error)
}

type applicationService struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
}

func NewApplicationService(applications repositories.ApplicationRepository, jobs repositories.JobRepository) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs}
}

// Apply files one application per applicant per job, and only against live
// postings.
func (s *applicationService) Apply(ctx context.Context, jobID, applicantID string) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	if jobID == "" || applicantID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id and applicant id are required", nil)
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}
	if j.Archived || j.Status != models.JobStatusActive {
		return nil, utils.E(utils.CodeConflict, op, "job is not open for applications", nil)
	}

	exists, err := s.applications.Exists(ctx, jobID, applicantID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing application", err)
	}
	if exists {
		return nil, utils.E(utils.CodeConflict, op, "already applied to this job", nil)
	}

	now := time.Now().UTC()
	a := &models.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.applications.Create(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}
	return a, nil
}

func (s *applicationService) ListByApplicant(ctx context.Context, applicantID string) ([]*models.Application, error) {
	const op = "ApplicationService.ListByApplicant"

	if applicantID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "applicant id is required", nil)
	}
	out, err := s.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return out, nil
}

// ListByJob is restricted to the posting's owner; requesterEmployerID == ""
// bypasses the check for admin callers.
func (s *applicationService) ListByJob(ctx context.Context, jobID, requesterEmployerID string) ([]*models.Application, error) {
	const op = "ApplicationService.ListByJob"

	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}
	if requesterEmployerID != "" && j.EmployerID != requesterEmployerID {
		return nil, utils.E(utils.CodeForbidden, op, "job belongs to another employer", nil)
	}

	out, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return out, nil
}

// SetStatus moves an application through its workflow. A non-empty
// requesterEmployerID must own the posting; admins pass "".
func (s *applicationService) SetStatus(ctx context.Context, id, status, remark, requesterEmployerID string) (*models.Application, error) {
	const op = "ApplicationService.SetStatus"

	if !applicationStatuses[status] {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown application status", nil)
	}
	a, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load application", err)
	}
	if requesterEmployerID != "" {
		j, err := s.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
		}
		if j.EmployerID != requesterEmployerID {
			return nil, utils.E(utils.CodeForbidden, op, "application belongs to another employer", nil)
		}
	}
	a.Status = status
	a.Remark = remark
	a.UpdatedAt = time.Now().UTC()
	if err := s.applications.Save(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update application", err)
	}
	return a, nil
}
