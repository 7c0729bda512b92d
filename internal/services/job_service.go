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

var jobStatuses = map[string]bool{
	models.JobStatusPending:  true,
	models.JobStatusActive:   true,
	models.JobStatusClosed:   true,
	models.JobStatusDraft:    true,
	models.JobStatusRejected: true,
}

type JobService interface {
	Get(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, j *models.Job) error
	Update(ctx context.Context, j *models.Job) error
	ListPublic(ctx context.Context, limit int) ([]*models.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error)
	ListAll(ctx context.Context, status string, includeArchived bool, limit int) ([]*models.Job, error)
	SetStatus(ctx context.Context, id, status, reason string) (*models.Job, error)
	Archive(ctx context.Context, id string, archived bool) (*models.Job, error)
}

type jobService struct {
	jobs      repositories.JobRepository
	employers repositories.EmployerRepository
}

func NewJobService(jobs repositories.JobRepository, employers repositories.EmployerRepository) JobService {
	return &jobService{jobs: jobs, employers: employers}
}

func (s *jobService) Get(ctx context.Context, id string) (*models.Job, error) {
	const op = "JobService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	return j, nil
}

// Create posts a job for moderation. Only active (approved) employers may
// post; new jobs start pending unless saved as draft.
func (s *jobService) Create(ctx context.Context, j *models.Job) error {
	const op = "JobService.Create"

	if j == nil || j.EmployerID == "" || j.Position == "" {
		return utils.E(utils.CodeInvalidArgument, op, "employer id and position are required", nil)
	}

	e, err := s.employers.GetByID(ctx, j.EmployerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "employer not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load employer", err)
	}
	if e.Archived || e.AccountStatus != models.EmployerStatusActive {
		return utils.E(utils.CodeForbidden, op, "employer account is not approved for posting", nil)
	}

	if j.Status != models.JobStatusDraft {
		j.Status = models.JobStatusPending
	}
	now := time.Now().UTC()
	j.ID = uuid.NewString()
	j.CreatedAt = now
	j.UpdatedAt = now

	if err := s.jobs.Create(ctx, j); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create job", err)
	}
	return nil
}

func (s *jobService) Update(ctx context.Context, j *models.Job) error {
	const op = "JobService.Update"

	if j == nil || j.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}
	j.UpdatedAt = time.Now().UTC()
	if err := s.jobs.Save(ctx, j); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save job", err)
	}
	return nil
}

func (s *jobService) ListPublic(ctx context.Context, limit int) ([]*models.Job, error) {
	const op = "JobService.ListPublic"

	out, err := s.jobs.List(ctx, repositories.JobListFilter{Status: models.JobStatusActive, Limit: limit})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return out, nil
}

func (s *jobService) ListByEmployer(ctx context.Context, employerID string) ([]*models.Job, error) {
	const op = "JobService.ListByEmployer"

	if employerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employer id is required", nil)
	}
	out, err := s.jobs.List(ctx, repositories.JobListFilter{EmployerID: employerID, IncludeArchived: true})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return out, nil
}

func (s *jobService) ListAll(ctx context.Context, status string, includeArchived bool, limit int) ([]*models.Job, error) {
	const op = "JobService.ListAll"

	out, err := s.jobs.List(ctx, repositories.JobListFilter{Status: status, IncludeArchived: includeArchived, Limit: limit})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return out, nil
}

func (s *jobService) SetStatus(ctx context.Context, id, status, reason string) (*models.Job, error) {
	const op = "JobService.SetStatus"

	if !jobStatuses[status] {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown job status", nil)
	}
	j, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	j.Status = status
	j.RejectionReason = reason
	j.UpdatedAt = time.Now().UTC()
	if err := s.jobs.Save(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update job status", err)
	}
	return j, nil
}

// Archive flips the soft-delete flag; the workflow status is untouched.
func (s *jobService) Archive(ctx context.Context, id string, archived bool) (*models.Job, error) {
	const op = "JobService.Archive"

	j, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	j.Archived = archived
	j.UpdatedAt = time.Now().UTC()
	if err := s.jobs.Save(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update archive flag", err)
	}
	return j, nil
}
