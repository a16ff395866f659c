package seed

import (
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsAgo(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		months int
		day    int
		want   domain.Date
	}{
		{name: "same month", now: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), months: 0, day: 3, want: "2024-03-03"},
		{name: "across year", now: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), months: 5, day: 12, want: "2023-09-12"},
		{name: "clamped to february", now: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), months: 1, day: 30, want: "2024-02-29"},
		{name: "clamped to thirty days", now: time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC), months: 1, day: 31, want: "2023-06-30"},
		{name: "many months back", now: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), months: 20, day: 7, want: "2022-07-07"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsAgo(tt.now, tt.months, tt.day))
		})
	}
}

func TestSampleSnapshot_IsValid(t *testing.T) {
	snap := SampleSnapshot(time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC))

	require.Len(t, snap.Clients, 5)
	require.Len(t, snap.Expenses, 5)
	require.Len(t, snap.Employees, 4)

	for _, c := range snap.Clients {
		assert.NoError(t, c.Validate(), "client %d", c.ID)
	}
	for _, e := range snap.Expenses {
		assert.NoError(t, e.Validate(), "expense %d", e.ID)
		if e.ClientID != nil {
			assert.Contains(t, []int64{101, 103, 105}, *e.ClientID)
		}
	}
	for _, e := range snap.Employees {
		assert.NoError(t, e.Validate(), "employee %d", e.ID)
	}
	assert.Equal(t, domain.Date("2024-03-03"), snap.Clients[4].AddedDate)
}
