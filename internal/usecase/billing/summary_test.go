package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/reports"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func row(date time.Time, name string, price float64) reports.RevenueRow {
	return reports.RevenueRow{Date: date, ServiceName: name, Price: price}
}

func TestSummarizePeriods(t *testing.T) {
	loc := timezone.Location("Europe/Lisbon")
	// quinta-feira, 12/06/2025
	now := time.Date(2025, 6, 12, 16, 0, 0, 0, loc)

	rows := []reports.RevenueRow{
		row(time.Date(2025, 6, 12, 10, 0, 0, 0, loc), "Nail Art", 35),
		row(time.Date(2025, 6, 12, 18, 30, 0, 0, loc), "Gel Simples", 25), // ainda hoje
		row(time.Date(2025, 6, 9, 11, 0, 0, 0, loc), "Gel Simples", 25),   // segunda
		row(time.Date(2025, 6, 2, 9, 0, 0, 0, loc), "Pedicure Básica", 30),
		row(time.Date(2025, 5, 30, 9, 0, 0, 0, loc), "Nail Art", 35),
		row(time.Date(2025, 1, 15, 9, 0, 0, 0, loc), "Nail Art", 35),
		row(time.Date(2025, 6, 13, 9, 0, 0, 0, loc), "Nail Art", 35), // futuro, fora
	}

	s := Summarize(rows, now, loc)

	assert.Equal(t, Totals{Revenue: 60, Count: 2}, s.Today)
	assert.Equal(t, Totals{Revenue: 85, Count: 3}, s.Week)
	assert.Equal(t, Totals{Revenue: 115, Count: 4}, s.Month)

	require.Len(t, s.Last7Days, 7)
	assert.Equal(t, "Sex", s.Last7Days[0].Label)
	assert.Equal(t, "Qui", s.Last7Days[6].Label)
	assert.Equal(t, 60.0, s.Last7Days[6].Value)
	assert.Equal(t, 25.0, s.Last7Days[3].Value)

	require.Len(t, s.Last4Weeks, 4)
	assert.Equal(t, "Semana atual", s.Last4Weeks[3].Label)
	assert.Equal(t, 85.0, s.Last4Weeks[3].Value)
	assert.Equal(t, 30.0, s.Last4Weeks[2].Value)
	assert.Equal(t, 35.0, s.Last4Weeks[1].Value)

	require.Len(t, s.Last6Months, 6)
	assert.Equal(t, "Jan", s.Last6Months[0].Label)
	assert.Equal(t, "Jun", s.Last6Months[5].Label)
	assert.Equal(t, 35.0, s.Last6Months[0].Value)
	assert.Equal(t, 35.0, s.Last6Months[4].Value)
	assert.Equal(t, 115.0, s.Last6Months[5].Value)

	require.NotEmpty(t, s.ByService)
	assert.Equal(t, Point{Label: "Nail Art", Value: 105}, s.ByService[0])
	assert.Equal(t, Point{Label: "Gel Simples", Value: 50}, s.ByService[1])
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC), time.UTC)

	assert.Zero(t, s.Today)
	assert.Len(t, s.Last7Days, 7)
	assert.NotNil(t, s.ByService)
	assert.Empty(t, s.ByService)
}

func TestGetSummaryCountsOnlyConfirmed(t *testing.T) {
	ctx := context.Background()
	loc := timezone.Location("Europe/Lisbon")
	now := time.Date(2025, 6, 12, 16, 0, 0, 0, loc)
	store := memory.NewStore()

	require.NoError(t, store.CreateService(ctx, &models.Service{ID: 3, Name: "Nail Art", Price: 35}))
	for _, st := range []string{"confirmed", "pending", "canceled"} {
		require.NoError(t, store.CreateAppointment(ctx, &models.Appointment{
			ClientID: 1, ServiceID: 3, Status: st, Date: time.Date(2025, 6, 12, 10, 0, 0, 0, loc),
		}))
	}

	s, err := NewGetSummary(store, timezone.Fixed(now)).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{Revenue: 35, Count: 1}, s.Today)
}
