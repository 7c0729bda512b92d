package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ta1kunjms/GensanWorks/internal/compliance"
	"github.com/Ta1kunjms/GensanWorks/internal/models"
	"github.com/Ta1kunjms/GensanWorks/internal/utils"
)

type fakeEmployerRepo struct {
	mu        sync.Mutex
	employers map[string]*models.Employer
	failIDs   map[string]bool
}

func newFakeEmployerRepo(list ...*models.Employer) *fakeEmployerRepo {
	r := &fakeEmployerRepo{employers: map[string]*models.Employer{}, failIDs: map[string]bool{}}
	for _, e := range list {
		r.employers[e.ID] = e
	}
	return r
}

func (r *fakeEmployerRepo) GetByID(_ context.Context, id string) (*models.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employers[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployerRepo) GetByEmail(_ context.Context, email string) (*models.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employers {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeEmployerRepo) Create(_ context.Context, e *models.Employer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employers[e.ID] = e
	return nil
}

func (r *fakeEmployerRepo) Save(_ context.Context, e *models.Employer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employers[e.ID] = e
	return nil
}

func (r *fakeEmployerRepo) List(_ context.Context, limit int, _ bool) ([]*models.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Employer, 0, len(r.employers))
	for _, e := range r.employers {
		out = append(out, e)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeEmployerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIDs[id] {
		return utils.ErrNotFound
	}
	if _, ok := r.employers[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.employers, id)
	return nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	dels int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.dels++
	return nil
}

func TestEmployerListDecoratesRows(t *testing.T) {
	repo := newFakeEmployerRepo(&models.Employer{
		ID:                "e1",
		EstablishmentName: "Sarangani Foods",
		AccountStatus:     models.EmployerStatusActive,
		Requirements: []byte(`{
			"businessPermit": {"submitted": true, "fileUrl": "https://files/permit.pdf"},
			"birRegistration": {"submitted": false}
		}`),
	})
	svc := NewEmployerService(repo, nil, nil)

	roster, err := svc.List(context.Background(), RosterQuery{})
	require.NoError(t, err)
	require.Len(t, roster.Employers, 1)

	row := roster.Employers[0]
	require.Len(t, row.ComplianceEntries, 2)
	assert.Equal(t, "businessPermit", row.ComplianceEntries[0].Key)
	assert.Equal(t, 1, row.PendingRequirementCount)
	assert.Equal(t, compliance.Counts{All: 1, Active: 1}, roster.Counts)
}

func TestEmployerListCountsCached(t *testing.T) {
	repo := newFakeEmployerRepo(&models.Employer{ID: "e1", AccountStatus: models.EmployerStatusPending})
	stats := newFakeCache()
	svc := NewEmployerService(repo, stats, nil)

	roster, err := svc.List(context.Background(), RosterQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, roster.Counts.Pending)

	// second employer appears but the cached counts still serve
	require.NoError(t, repo.Create(context.Background(), &models.Employer{ID: "e2"}))
	roster, err = svc.List(context.Background(), RosterQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, roster.Counts.Pending)
	assert.Len(t, roster.Employers, 2)
}

func TestEmployerApproveInvalidatesCounts(t *testing.T) {
	repo := newFakeEmployerRepo(&models.Employer{ID: "e1", AccountStatus: models.EmployerStatusPending})
	stats := newFakeCache()
	svc := NewEmployerService(repo, stats, nil)

	_, err := svc.List(context.Background(), RosterQuery{})
	require.NoError(t, err)
	assert.Contains(t, stats.data, "admin:employers:counts")

	e, err := svc.Approve(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, models.EmployerStatusActive, e.AccountStatus)
	assert.NotContains(t, stats.data, "admin:employers:counts")

	roster, err := svc.List(context.Background(), RosterQuery{})
	require.NoError(t, err)
	assert.Equal(t, compliance.Counts{All: 1, Active: 1}, roster.Counts)
}

func TestEmployerReject(t *testing.T) {
	repo := newFakeEmployerRepo(&models.Employer{ID: "e1", AccountStatus: models.EmployerStatusPending})
	svc := NewEmployerService(repo, nil, nil)

	e, err := svc.Reject(context.Background(), "e1", "expired business permit")
	require.NoError(t, err)
	assert.Equal(t, models.EmployerStatusRejected, e.AccountStatus)
	assert.Equal(t, "expired business permit", e.RejectionReason)
}

func TestEmployerSubmitAllRequirements(t *testing.T) {
	repo := newFakeEmployerRepo(&models.Employer{
		ID: "e1",
		Requirements: []byte(`{
			"businessPermit": {"submitted": false},
			"optionalCert": {"submitted": false, "required": false}
		}`),
	})
	svc := NewEmployerService(repo, nil, nil)

	e, err := svc.SubmitAllRequirements(context.Background(), "e1")
	require.NoError(t, err)

	entries := compliance.Build(compliance.ForEmployer(e))
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Submitted)
	assert.False(t, entries[1].Submitted, "optional entries stay untouched")
	assert.Equal(t, 0, compliance.PendingCount(entries))
}

func TestEmployerSubmitAllLegacyNoop(t *testing.T) {
	repo := newFakeEmployerRepo(&models.Employer{
		ID:                 "e1",
		BusinessPermitFile: []byte(`"https://files/permit.pdf"`),
	})
	svc := NewEmployerService(repo, nil, nil)

	e, err := svc.SubmitAllRequirements(context.Background(), "e1")
	require.NoError(t, err)
	assert.Empty(t, []byte(e.Requirements))
}

func TestEmployerBulkDelete(t *testing.T) {
	repo := newFakeEmployerRepo(
		&models.Employer{ID: "e1"},
		&models.Employer{ID: "e2"},
		&models.Employer{ID: "e3"},
	)
	repo.failIDs["e2"] = true
	stats := newFakeCache()
	svc := NewEmployerService(repo, stats, nil)

	deleted, err := svc.BulkDelete(context.Background(), []string{"e1", "e2", "e3", "missing"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, 1, stats.dels)

	_, err = svc.Get(context.Background(), "e2")
	require.NoError(t, err, "failed delete leaves the record in place")
}

func TestEmployerBulkDeleteRequiresIDs(t *testing.T) {
	svc := NewEmployerService(newFakeEmployerRepo(), nil, nil)
	_, err := svc.BulkDelete(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestEmployerGetNotFound(t *testing.T) {
	svc := NewEmployerService(newFakeEmployerRepo(), nil, nil)
	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
