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

var referralStatuses = map[string]bool{
	models.ReferralStatusIssued:   true,
	models.ReferralStatusHired:    true,
	models.ReferralStatusDeclined: true,
}

type ReferralService interface {
	Issue(ctx context.Context, applicantID, jobID, adminID, remark string) (*models.Referral, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*models.Referral, error)
	SetStatus(ctx context.Context, id, status, remark string) (*models.Referral, error)
}

type referralService struct {
	referrals  repositories.ReferralRepository
	applicants repositories.ApplicantRepository
	jobs       repositories.JobRepository
}

func NewReferralService(
	referrals repositories.ReferralRepository,
	applicants repositories.ApplicantRepository,
	jobs repositories.JobRepository,
) ReferralService {
	return &referralService{referrals: referrals, applicants: applicants, jobs: jobs}
}

// Issue endorses an applicant to a live posting. The employer id is resolved
// from the job so referrals survive posting edits.
func (s *referralService) Issue(ctx context.Context, applicantID, jobID, adminID, remark string) (*models.Referral, error) {
	const op = "ReferralService.Issue"

	if applicantID == "" || jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "applicant id and job id are required", nil)
	}

	if _, err := s.applicants.GetByID(ctx, applicantID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "applicant not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load applicant", err)
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}
	if j.Archived || j.Status != models.JobStatusActive {
		return nil, utils.E(utils.CodeConflict, op, "job is not open for referrals", nil)
	}

	now := time.Now().UTC()
	ref := &models.Referral{
		ID:          uuid.NewString(),
		ApplicantID: applicantID,
		JobID:       jobID,
		EmployerID:  j.EmployerID,
		IssuedBy:    adminID,
		Status:      models.ReferralStatusIssued,
		Remark:      remark,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.referrals.Create(ctx, ref); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create referral", err)
	}
	return ref, nil
}

func (s *referralService) ListByApplicant(ctx context.Context, applicantID string) ([]*models.Referral, error) {
	const op = "ReferralService.ListByApplicant"

	if applicantID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "applicant id is required", nil)
	}
	out, err := s.referrals.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list referrals", err)
	}
	return out, nil
}

func (s *referralService) SetStatus(ctx context.Context, id, status, remark string) (*models.Referral, error) {
	const op = "ReferralService.SetStatus"

	if !referralStatuses[status] {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown referral status", nil)
	}
	ref, err := s.referrals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "referral not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load referral", err)
	}
	ref.Status = status
	ref.Remark = remark
	ref.UpdatedAt = time.Now().UTC()
	if err := s.referrals.Save(ctx, ref); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update referral", err)
	}
	return ref, nil
}
