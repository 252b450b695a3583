package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/logging"
	"github.com/nvpwelfare/portal/internal/timex"
)

func at(day int) timex.Timestamp {
	return timex.Timestamp{Time: time.Date(2024, time.December, day, 10, 0, 0, 0, time.UTC)}
}

func TestContentService_EventsOrderedByDate(t *testing.T) {
	fc := &fakeClient{Events: []models.Event{
		{ID: "late", EventDate: at(20)},
		{ID: "early", EventDate: at(2)},
		{ID: "mid", EventDate: at(9)},
	}}
	svc := NewContentService(fc, logging.Nop())

	events, err := svc.Events(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"early", "mid", "late"}, ids)
}

func TestContentService_ListsPassThrough(t *testing.T) {
	fc := &fakeClient{
		Campaigns:   []models.Campaign{{ID: "k1"}},
		NewsItems:   []models.News{{ID: "n1"}},
		Activities:  []models.Activity{{ID: "a1"}},
		StatsResult: models.Stats{TotalMembers: 42},
	}
	svc := NewContentService(fc, logging.Nop())
	ctx := context.Background()

	campaigns, err := svc.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, fc.Campaigns, campaigns)

	news, err := svc.News(ctx)
	require.NoError(t, err)
	assert.Equal(t, fc.NewsItems, news)

	acts, err := svc.Activities(ctx)
	require.NoError(t, err)
	assert.Equal(t, fc.Activities, acts)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, st.TotalMembers)

	fc.ContentErr = client.ErrUnavailable
	_, err = svc.Events(ctx)
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestContentService_Enquire(t *testing.T) {
	valid := models.Enquiry{Name: "Meera", Email: "meera@example.in", Phone: "9876543210", Message: "How can I volunteer?"}

	tests := []struct {
		name   string
		mutate func(*models.Enquiry)
		want   string
	}{
		{name: "missing name", mutate: func(e *models.Enquiry) { e.Name = " " }, want: "name is required"},
		{name: "missing email", mutate: func(e *models.Enquiry) { e.Email = "" }, want: "email is required"},
		{name: "missing phone", mutate: func(e *models.Enquiry) { e.Phone = "" }, want: "phone is required"},
		{name: "missing message", mutate: func(e *models.Enquiry) { e.Message = "\n" }, want: "message is required"},
		{name: "bad email", mutate: func(e *models.Enquiry) { e.Email = "meera" }, want: "is not valid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{}
			e := valid
			tt.mutate(&e)

			_, err := NewContentService(fc, logging.Nop()).Enquire(context.Background(), e)
			require.ErrorIs(t, err, ErrInvalidEnquiry)
			assert.Contains(t, err.Error(), tt.want)
			assert.Nil(t, fc.LastEnquiry)
		})
	}

	t.Run("submitted", func(t *testing.T) {
		fc := &fakeClient{EnquiryAck: "Enquiry submitted successfully"}
		msg, err := NewContentService(fc, logging.Nop()).Enquire(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, "Enquiry submitted successfully", msg)
		require.NotNil(t, fc.LastEnquiry)
		assert.Equal(t, valid, *fc.LastEnquiry)
	})

	t.Run("backend failure", func(t *testing.T) {
		fc := &fakeClient{EnquiryErr: client.ErrUnavailable}
		_, err := NewContentService(fc, logging.Nop()).Enquire(context.Background(), valid)
		require.ErrorIs(t, err, client.ErrUnavailable)
	})
}
