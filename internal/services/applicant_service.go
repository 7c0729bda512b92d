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

type ApplicantService interface {
	Get(ctx context.Context, id string) (*models.Applicant, error)
	Save(ctx context.Context, a *models.Applicant) error
	List(ctx context.Context, limit int, includeArchived bool) ([]*models.Applicant, error)
	Archive(ctx context.Context, id string, archived bool) (*models.Applicant, error)
	Import(ctx context.Context, rows []map[string]any) (imported int, err error)
}

type applicantService struct {
	applicants repositories.ApplicantRepository
}

func NewApplicantService(applicants repositories.ApplicantRepository) ApplicantService {
	return &applicantService{applicants: applicants}
}

func (s *applicantService) Get(ctx context.Context, id string) (*models.Applicant, error) {
	const op = "ApplicantService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "applicant id is required", nil)
	}
	a, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "applicant not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get applicant", err)
	}
	return a, nil
}

func (s *applicantService) Save(ctx context.Context, a *models.Applicant) error {
	const op = "ApplicantService.Save"

	if a == nil || a.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "applicant id is required", nil)
	}
	a.UpdatedAt = time.Now().UTC()
	if err := s.applicants.Save(ctx, a); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save applicant", err)
	}
	return nil
}

func (s *applicantService) List(ctx context.Context, limit int, includeArchived bool) ([]*models.Applicant, error) {
	const op = "ApplicantService.List"

	out, err := s.applicants.List(ctx, limit, includeArchived)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applicants", err)
	}
	return out, nil
}

func (s *applicantService) Archive(ctx context.Context, id string, archived bool) (*models.Applicant, error) {
	const op = "ApplicantService.Archive"

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Archived = archived
	a.UpdatedAt = time.Now().UTC()
	if err := s.applicants.Save(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update archive flag", err)
	}
	return a, nil
}

// Import takes raw NSRP rows, normalizes them at this one boundary and
// upserts by email. Rows without an email get fresh records. Bad rows are
// skipped, not fatal; the caller sees only the final count.
func (s *applicantService) Import(ctx context.Context, rows []map[string]any) (int, error) {
	const op = "ApplicantService.Import"

	if len(rows) == 0 {
		return 0, utils.E(utils.CodeInvalidArgument, op, "rows are required", nil)
	}

	imported := 0
	now := time.Now().UTC()
	for _, row := range rows {
		a := models.ApplicantFromWire(row)
		if a.Surname == "" && a.FirstName == "" {
			continue
		}

		// re-runs of the same export update by email instead of duplicating
		if a.Email != "" {
			if existing, err := s.applicants.GetByEmail(ctx, a.Email); err == nil {
				a.ID = existing.ID
				a.PasswordHash = existing.PasswordHash
				a.Archived = existing.Archived
				a.CreatedAt = existing.CreatedAt
				a.UpdatedAt = now
				if s.applicants.Save(ctx, &a) == nil {
					imported++
				}
				continue
			}
		}

		a.ID = uuid.NewString()
		a.CreatedAt = now
		a.UpdatedAt = now
		if s.applicants.Create(ctx, &a) == nil {
			imported++
		}
	}
	return imported, nil
}
