package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

func ts(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func roster() []*models.Employer {
	return []*models.Employer{
		{
			ID: "e1", EstablishmentName: "GenSan Tuna Packers",
			AccountStatus: "active", Municipality: "General Santos",
			SRSSubscriber: true,
			UpdatedAt:     ts(3),
		},
		{
			ID: "e2", EstablishmentName: "Sarangani Agri Corp",
			AccountStatus: " Pending ",
			ContactPerson: datatypes.NewJSONType(models.ContactPerson{Name: "Ana Lim"}),
			UpdatedAt:     ts(5),
		},
		{
			ID: "e3", EstablishmentName: "Dole Skyland",
			AccountStatus:            "rejected",
			AdditionalEstablishments: datatypes.NewJSONSlice([]string{"Polomolok Branch"}),
			UpdatedAt:                ts(1),
		},
		{
			ID: "e4", EstablishmentName: "Closed Trading",
			AccountStatus: "active", Archived: true,
			UpdatedAt: ts(4),
		},
		{
			ID: "e5", TradeName: "Kalye Kainan",
			// blank status defaults to pending; only CreatedAt set
			Requirements: []byte(`{"permit": {"submitted": true, "required": true}}`),
			CreatedAt:    ts(2),
		},
	}
}

func ids(list []*models.Employer) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.ID
	}
	return out
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, "pending", StatusOf(&models.Employer{}))
	assert.Equal(t, "pending", StatusOf(&models.Employer{AccountStatus: "  "}))
	assert.Equal(t, "active", StatusOf(&models.Employer{AccountStatus: " Active "}))
}

func TestCountAll(t *testing.T) {
	c := CountAll(roster())
	assert.Equal(t, Counts{All: 4, Pending: 2, Active: 1, Rejected: 1, Archived: 1}, c)
}

func TestApplyDefaultSort(t *testing.T) {
	got := Apply(roster(), Filters{})
	// non-archived only, most recently touched first; e5 falls back to CreatedAt
	assert.Equal(t, []string{"e2", "e1", "e5", "e3"}, ids(got))
}

func TestApplyStatus(t *testing.T) {
	assert.Equal(t, []string{"e2", "e5"}, ids(Apply(roster(), Filters{Status: "pending"})))
	assert.Equal(t, []string{"e1"}, ids(Apply(roster(), Filters{Status: "active"})))
	assert.Equal(t, []string{"e4"}, ids(Apply(roster(), Filters{Status: "archived"})))
	assert.Equal(t, []string{"e2", "e1", "e5", "e3"}, ids(Apply(roster(), Filters{Status: "all"})))
}

func TestApplySearch(t *testing.T) {
	// establishment name, case-insensitive
	assert.Equal(t, []string{"e1"}, ids(Apply(roster(), Filters{Search: "tuna"})))
	// contact person name
	assert.Equal(t, []string{"e2"}, ids(Apply(roster(), Filters{Search: "ana lim"})))
	// trade name
	assert.Equal(t, []string{"e5"}, ids(Apply(roster(), Filters{Search: "kainan"})))
	// archived rows stay hidden even when they match
	assert.Empty(t, ids(Apply(roster(), Filters{Search: "closed trading"})))
}

func TestApplySubscriptionAndCompany(t *testing.T) {
	assert.Equal(t, []string{"e1"}, ids(Apply(roster(), Filters{Subscription: "subscriber"})))
	assert.Equal(t, []string{"e2", "e5", "e3"}, ids(Apply(roster(), Filters{Subscription: "non-subscriber"})))
	assert.Equal(t, []string{"e3"}, ids(Apply(roster(), Filters{Company: "multi"})))
	assert.Equal(t, []string{"e2", "e1", "e5"}, ids(Apply(roster(), Filters{Company: "solo"})))
}

func TestApplyCompliance(t *testing.T) {
	// e5 has its single required entry submitted; everyone else is on the
	// four-pending legacy default
	assert.Equal(t, []string{"e5"}, ids(Apply(roster(), Filters{Compliance: "clear"})))
	assert.Equal(t, []string{"e2", "e1", "e3"}, ids(Apply(roster(), Filters{Compliance: "pending"})))
}

func TestApplyCombined(t *testing.T) {
	got := Apply(roster(), Filters{Status: "pending", Compliance: "clear"})
	require.Len(t, got, 1)
	assert.Equal(t, "e5", got[0].ID)
}
