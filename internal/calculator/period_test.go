package calculator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/paycycle/internal/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestComputePeriod(t *testing.T) {
	tests := []struct {
		name          string
		payday        int
		today         string
		wantStart     string
		wantEnd       string
		wantRemaining int
		wantResets    string
	}{
		{
			name:          "payday 25 mid-period",
			payday:        25,
			today:         "2026-02-08",
			wantStart:     "2026-01-25",
			wantEnd:       "2026-02-24",
			wantRemaining: 16,
			wantResets:    "2026-02-25",
		},
		{
			name:          "payday 31 clamps to short February",
			payday:        31,
			today:         "2026-02-08",
			wantStart:     "2026-01-31",
			wantEnd:       "2026-02-27",
			wantRemaining: 19,
			wantResets:    "2026-02-28",
		},
		{
			name:          "last day of month in a leap year",
			payday:        models.PaydayLastDay,
			today:         "2028-02-29",
			wantStart:     "2028-02-29",
			wantEnd:       "2028-03-30",
			wantRemaining: 30,
			wantResets:    "2028-03-31",
		},
		{
			name:          "payday on today starts the new period",
			payday:        25,
			today:         "2026-02-25",
			wantStart:     "2026-02-25",
			wantEnd:       "2026-03-24",
			wantRemaining: 27,
			wantResets:    "2026-03-25",
		},
		{
			name:          "last day of period has zero days remaining",
			payday:        25,
			today:         "2026-02-24",
			wantStart:     "2026-01-25",
			wantEnd:       "2026-02-24",
			wantRemaining: 0,
			wantResets:    "2026-02-25",
		},
		{
			name:          "period started in previous year",
			payday:        25,
			today:         "2026-01-10",
			wantStart:     "2025-12-25",
			wantEnd:       "2026-01-24",
			wantRemaining: 14,
			wantResets:    "2026-01-25",
		},
		{
			name:          "period ends in next year",
			payday:        15,
			today:         "2025-12-20",
			wantStart:     "2025-12-15",
			wantEnd:       "2026-01-14",
			wantRemaining: 25,
			wantResets:    "2026-01-15",
		},
		{
			name:          "clamped payday reached on the last day of February",
			payday:        31,
			today:         "2026-02-28",
			wantStart:     "2026-02-28",
			wantEnd:       "2026-03-30",
			wantRemaining: 30,
			wantResets:    "2026-03-31",
		},
		{
			name:          "payday 30 in leap February",
			payday:        30,
			today:         "2028-02-29",
			wantStart:     "2028-02-29",
			wantEnd:       "2028-03-29",
			wantRemaining: 29,
			wantResets:    "2028-03-30",
		},
		{
			name:          "last day sentinel before month end",
			payday:        models.PaydayLastDay,
			today:         "2026-02-10",
			wantStart:     "2026-01-31",
			wantEnd:       "2026-02-27",
			wantRemaining: 17,
			wantResets:    "2026-02-28",
		},
		{
			name:          "payday 1",
			payday:        1,
			today:         "2026-03-01",
			wantStart:     "2026-03-01",
			wantEnd:       "2026-03-31",
			wantRemaining: 30,
			wantResets:    "2026-04-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePeriod(tt.payday, date(t, tt.today))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStart, models.FormatDate(got.Start), "start")
			assert.Equal(t, tt.wantEnd, models.FormatDate(got.End), "end")
			assert.Equal(t, tt.wantRemaining, got.DaysRemaining, "days remaining")
			assert.Equal(t, tt.wantResets, models.FormatDate(got.ResetsOn), "resets on")
		})
	}
}

func TestComputePeriod_InvalidPayday(t *testing.T) {
	for _, payday := range []int{0, 32, -2, 100} {
		_, err := ComputePeriod(payday, date(t, "2026-02-08"))
		require.Error(t, err, "payday %d", payday)
		assert.True(t, errors.Is(err, models.ErrValidation), "payday %d: %v", payday, err)
	}
}

func TestComputePeriod_IgnoresTimeOfDayAndZone(t *testing.T) {
	late := time.Date(2026, 2, 24, 23, 59, 0, 0, time.FixedZone("UTC-5", -5*3600))

	got, err := ComputePeriod(25, late)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-24", models.FormatDate(got.End))
	assert.Equal(t, 0, got.DaysRemaining)
}

// Every valid payday over every day of three years, leap year included.
func TestComputePeriod_Invariants(t *testing.T) {
	paydays := []int{models.PaydayLastDay}
	for d := 1; d <= 31; d++ {
		paydays = append(paydays, d)
	}

	first := date(t, "2027-01-01")
	last := date(t, "2029-12-31")

	for _, payday := range paydays {
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			p, err := ComputePeriod(payday, day)
			require.NoError(t, err)

			if p.Start.After(day) || p.End.Before(day) {
				t.Fatalf("payday %d, today %s: period [%s, %s] does not contain today",
					payday, models.FormatDate(day), models.FormatDate(p.Start), models.FormatDate(p.End))
			}
			if p.DaysRemaining < 0 {
				t.Fatalf("payday %d, today %s: negative days remaining", payday, models.FormatDate(day))
			}
			if !p.ResetsOn.Equal(p.End.AddDate(0, 0, 1)) {
				t.Fatalf("payday %d, today %s: resets on %s, want end+1", payday,
					models.FormatDate(day), models.FormatDate(p.ResetsOn))
			}

			next, err := ComputePeriod(payday, p.ResetsOn)
			require.NoError(t, err)
			if !next.Start.Equal(p.ResetsOn) {
				t.Fatalf("payday %d, today %s: next period starts %s, want %s", payday,
					models.FormatDate(day), models.FormatDate(next.Start), models.FormatDate(p.ResetsOn))
			}
		}
	}
}
