package compliance

import (
	"sort"
	"strings"
	"time"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

// Filters are the admin roster filter parameters. Zero values (or "all") mean
// no filtering on that axis. The filters hold no state of their own; every
// request re-derives the view from the live employer list.
type Filters struct {
	Search       string // substring over name/trade/municipality/province/contact/email
	Status       string // all|pending|active|rejected|archived
	Subscription string // all|subscriber|non-subscriber
	Company      string // all|multi|solo
	Compliance   string // all|pending|clear
}

// Counts are the roster tab badges. Every bucket except Archived excludes
// archived employers.
type Counts struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Active   int `json:"active"`
	Rejected int `json:"rejected"`
	Archived int `json:"archived"`
}

// StatusOf normalizes an employer's account status: trimmed, lowercased,
// defaulting to pending when blank.
func StatusOf(e *models.Employer) string {
	s := strings.ToLower(strings.TrimSpace(e.AccountStatus))
	if s == "" {
		return models.EmployerStatusPending
	}
	return s
}

func CountAll(list []*models.Employer) Counts {
	var c Counts
	for _, e := range list {
		if e.Archived {
			c.Archived++
			continue
		}
		c.All++
		switch StatusOf(e) {
		case models.EmployerStatusActive:
			c.Active++
		case models.EmployerStatusRejected:
			c.Rejected++
		default:
			c.Pending++
		}
	}
	return c
}

// Apply filters with AND semantics and sorts most recently touched first.
// The input slice is not mutated.
func Apply(list []*models.Employer, f Filters) []*models.Employer {
	out := make([]*models.Employer, 0, len(list))
	for _, e := range list {
		if matches(e, f) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return touchedAt(out[i]).After(touchedAt(out[j]))
	})
	return out
}

func matches(e *models.Employer, f Filters) bool {
	if !matchesStatus(e, f.Status) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		cp := e.ContactPerson.Data()
		haystacks := []string{
			e.EstablishmentName, e.TradeName,
			e.Municipality, e.Province,
			cp.Name, e.Email,
		}
		found := false
		for _, h := range haystacks {
			if h != "" && strings.Contains(strings.ToLower(h), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch f.Subscription {
	case "subscriber":
		if !e.SRSSubscriber {
			return false
		}
	case "non-subscriber":
		if e.SRSSubscriber {
			return false
		}
	}

	switch f.Company {
	case "multi":
		if len(e.AdditionalEstablishments) == 0 {
			return false
		}
	case "solo":
		if len(e.AdditionalEstablishments) > 0 {
			return false
		}
	}

	switch f.Compliance {
	case "pending":
		if PendingCount(Build(ForEmployer(e))) == 0 {
			return false
		}
	case "clear":
		if PendingCount(Build(ForEmployer(e))) > 0 {
			return false
		}
	}

	return true
}

// matchesStatus: "archived" selects archived rows regardless of account
// status, "any" skips the axis entirely, every other value implies
// archived=false.
func matchesStatus(e *models.Employer, status string) bool {
	switch status {
	case "archived":
		return e.Archived
	case "any":
		return true
	}
	if e.Archived {
		return false
	}
	if status == "" || status == "all" {
		return true
	}
	return StatusOf(e) == status
}

func touchedAt(e *models.Employer) time.Time {
	if !e.UpdatedAt.IsZero() {
		return e.UpdatedAt
	}
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt
	}
	return time.Unix(0, 0)
}
