package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ta1kunjms/GensanWorks/internal/cache"
	"github.com/Ta1kunjms/GensanWorks/internal/compliance"
	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/repositories"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

const (
	rosterCountsKey = "admin:employers:counts"
	rosterCountsTTL = 30 * time.Second
)

// RosterQuery is the admin list request: fetch bounds plus the in-memory
// filter parameters.
type RosterQuery struct {
	Limit           int
	IncludeArchived bool
	Filters         compliance.Filters
}

// RosterRow is one employer decorated with its derived compliance view.
type RosterRow struct {
	*models.Employer
	ComplianceEntries       []compliance.Entry `json:"complianceEntries"`
	PendingRequirementCount int                `json:"pendingRequirementCount"`
}

type Roster struct {
	Employers []RosterRow       `json:"employers"`
	Counts    compliance.Counts `json:"counts"`
}

type EmployerService interface {
	Get(ctx context.Context, id string) (*models.Employer, error)
	Save(ctx context.Context, e *models.Employer) error
	List(ctx context.Context, q RosterQuery) (*Roster, error)
	Approve(ctx context.Context, id string) (*models.Employer, error)
	Reject(ctx context.Context, id, reason string) (*models.Employer, error)
	Archive(ctx context.Context, id string, archived bool) (*models.Employer, error)
	SubmitAllRequirements(ctx context.Context, id string) (*models.Employer, error)
	BulkDelete(ctx context.Context, ids []string) (deleted int, err error)
	ExportRows(ctx context.Context, q RosterQuery) ([]*models.Employer, error)
}

type employerService struct {
	employers repositories.EmployerRepository
	stats     cache.Cache // nil means uncached
	log       *logrus.Logger
}

func NewEmployerService(employers repositories.EmployerRepository, stats cache.Cache, log *logrus.Logger) EmployerService {
	if log == nil {
		log = logrus.New()
	}
	return &employerService{employers: employers, stats: stats, log: log}
}

func (s *employerService) Get(ctx context.Context, id string) (*models.Employer, error) {
	const op = "EmployerService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employer id is required", nil)
	}
	e, err := s.employers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "employer not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get employer", err)
	}
	return e, nil
}

func (s *employerService) Save(ctx context.Context, e *models.Employer) error {
	const op = "EmployerService.Save"

	if e == nil || e.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "employer id is required", nil)
	}
	e.UpdatedAt = time.Now().UTC()
	if err := s.employers.Save(ctx, e); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save employer", err)
	}
	s.invalidateStats(ctx)
	return nil
}

// List loads the live roster, applies the compound filter in memory and
// decorates each row with its compliance entries. Counts are cached briefly;
// per-row pending counts never are.
func (s *employerService) List(ctx context.Context, q RosterQuery) (*Roster, error) {
	const op = "EmployerService.List"

	all, err := s.employers.List(ctx, q.Limit, true)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list employers", err)
	}

	counts := s.counts(ctx, all)

	// includeArchived lifts the default archived exclusion when no status
	// tab is selected
	if q.IncludeArchived && (q.Filters.Status == "" || q.Filters.Status == "all") {
		q.Filters.Status = "any"
	}
	filtered := compliance.Apply(all, q.Filters)

	rows := make([]RosterRow, 0, len(filtered))
	for _, e := range filtered {
		entries := compliance.Build(compliance.ForEmployer(e))
		rows = append(rows, RosterRow{
			Employer:                e,
			ComplianceEntries:       entries,
			PendingRequirementCount: compliance.PendingCount(entries),
		})
	}
	return &Roster{Employers: rows, Counts: counts}, nil
}

func (s *employerService) counts(ctx context.Context, all []*models.Employer) compliance.Counts {
	if s.stats != nil {
		var cached compliance.Counts
		if hit, err := s.stats.GetJSON(ctx, rosterCountsKey, &cached); err == nil && hit {
			return cached
		}
	}
	counts := compliance.CountAll(all)
	if s.stats != nil {
		if err := s.stats.SetJSON(ctx, rosterCountsKey, counts, rosterCountsTTL); err != nil {
			s.log.WithError(err).Warn("roster counts cache write failed")
		}
	}
	return counts
}

func (s *employerService) invalidateStats(ctx context.Context) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Del(ctx, rosterCountsKey); err != nil {
		s.log.WithError(err).Warn("roster counts cache invalidation failed")
	}
}

func (s *employerService) Approve(ctx context.Context, id string) (*models.Employer, error) {
	return s.setStatus(ctx, "EmployerService.Approve", id, models.EmployerStatusActive, "")
}

func (s *employerService) Reject(ctx context.Context, id, reason string) (*models.Employer, error) {
	return s.setStatus(ctx, "EmployerService.Reject", id, models.EmployerStatusRejected, reason)
}

func (s *employerService) setStatus(ctx context.Context, op, id, status, reason string) (*models.Employer, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.AccountStatus = status
	e.RejectionReason = reason
	e.UpdatedAt = time.Now().UTC()
	if err := s.employers.Save(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update account status", err)
	}
	s.invalidateStats(ctx)
	return e, nil
}

func (s *employerService) Archive(ctx context.Context, id string, archived bool) (*models.Employer, error) {
	const op = "EmployerService.Archive"

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Archived = archived
	e.UpdatedAt = time.Now().UTC()
	if err := s.employers.Save(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update archive flag", err)
	}
	s.invalidateStats(ctx)
	return e, nil
}

// SubmitAllRequirements flags every required structured entry submitted.
// Legacy-shaped records have nothing to flip and pass through unchanged.
func (s *employerService) SubmitAllRequirements(ctx context.Context, id string) (*models.Employer, error) {
	const op = "EmployerService.SubmitAllRequirements"

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, ok := compliance.MarkAllSubmitted([]byte(e.Requirements))
	if !ok {
		return e, nil
	}
	e.Requirements = []byte(updated)
	e.UpdatedAt = time.Now().UTC()
	if err := s.employers.Save(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update requirements", err)
	}
	s.invalidateStats(ctx)
	return e, nil
}

// BulkDelete issues one delete per record concurrently. There is no
// transaction across the batch: a failure partway leaves earlier deletes in
// place, and only the final count reports what happened.
func (s *employerService) BulkDelete(ctx context.Context, ids []string) (int, error) {
	const op = "EmployerService.BulkDelete"

	if len(ids) == 0 {
		return 0, utils.E(utils.CodeInvalidArgument, op, "ids are required", nil)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		deleted int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.employers.Delete(ctx, id); err != nil {
				s.log.WithError(err).WithField("employer_id", id).Warn("bulk delete item failed")
				return
			}
			mu.Lock()
			deleted++
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	s.invalidateStats(ctx)
	return deleted, nil
}

// ExportRows returns the filtered roster rows for the compliance report.
func (s *employerService) ExportRows(ctx context.Context, q RosterQuery) ([]*models.Employer, error) {
	const op = "EmployerService.ExportRows"

	all, err := s.employers.List(ctx, q.Limit, true)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list employers", err)
	}
	if q.IncludeArchived && (q.Filters.Status == "" || q.Filters.Status == "all") {
		q.Filters.Status = "any"
	}
	return compliance.Apply(all, q.Filters), nil
}
