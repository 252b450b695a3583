package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvpwelfare/portal/internal/client/access"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/client/services"
	"github.com/nvpwelfare/portal/internal/timex"
)

func contentOf(a *App) *fakeContent {
	return a.content.(*fakeContent)
}

func TestCampaigns_ShowProgress(t *testing.T) {
	out := capturePrintln(t)
	a, _, _, _ := newTestApp(&fakeSession{})

	require.NoError(t, a.Campaigns(context.Background()))
	assert.Contains(t, out.String(), "No active campaigns.")

	contentOf(a).campaigns = []models.Campaign{{Title: "Winter Relief", GoalAmount: 100000, CurrentAmount: 40000}}
	require.NoError(t, a.Campaigns(context.Background()))
	assert.Contains(t, out.String(), "Winter Relief")
	assert.Contains(t, out.String(), "(40%)")
}

func TestEvents_ShowDateAndSeats(t *testing.T) {
	out := capturePrintln(t)
	a, _, _, _ := newTestApp(&fakeSession{})
	limit := 50
	contentOf(a).events = []models.Event{{
		Title:           "Health Camp",
		Location:        "Dausa",
		EventDate:       timex.Timestamp{Time: time.Date(2024, time.December, 5, 9, 30, 0, 0, time.UTC)},
		MaxParticipants: &limit,
		RegisteredCount: 12,
	}}

	require.NoError(t, a.Events(context.Background()))
	assert.Contains(t, out.String(), "5/12/2024")
	assert.Contains(t, out.String(), "Health Camp")
	assert.Contains(t, out.String(), "38 seats left")
}

func TestContact_PrefillsAndSubmits(t *testing.T) {
	out := capturePrintln(t)
	a, _, _, _ := newTestApp(&fakeSession{state: access.State{Principal: member()}})
	stubTexts(t, "", "", "", "How can I volunteer?")

	require.NoError(t, a.Contact(context.Background()))
	assert.Equal(t, models.Enquiry{
		Name:    "Asha Devi",
		Email:   "asha@example.org",
		Phone:   "78776",
		Message: "How can I volunteer?",
	}, contentOf(a).enquiry)
	assert.Contains(t, out.String(), "78776 43155")
	assert.Contains(t, out.String(), "Enquiry submitted successfully")
}

func TestContact_InvalidEnquiryIsReturned(t *testing.T) {
	capturePrintln(t)
	a, _, _, _ := newTestApp(&fakeSession{})
	contentOf(a).enquiryErr = services.ErrInvalidEnquiry
	stubTexts(t, "Ravi", "ravi@example.org", "98290", "")

	assert.ErrorIs(t, a.Contact(context.Background()), services.ErrInvalidEnquiry)
}
