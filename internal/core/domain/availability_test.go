package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

var (
	today    = domain.Date{Year: 2026, Month: time.April, Day: 1}
	saturday = domain.Date{Year: 2026, Month: time.May, Day: 2}
	sunday   = domain.Date{Year: 2026, Month: time.May, Day: 3}
	monday   = domain.Date{Year: 2026, Month: time.May, Day: 4}
)

func bookingAt(postal string) domain.Booking {
	return domain.Booking{EventDate: saturday, VenuePostalCode: postal, Status: domain.BookingConfirmed}
}

func TestClassifyDate_ClosedDaysAlwaysBlocked(t *testing.T) {
	for _, d := range []domain.Date{sunday, monday} {
		for n := 0; n <= 3; n++ {
			bookings := make([]domain.Booking, n)
			res := domain.ClassifyDate(domain.DateInput{Date: d, Today: today, ActiveBookings: bookings, CandidateArea: "Stellenbosch"})

			assert.Equal(t, domain.StateBlocked, res.State)
			assert.True(t, res.HasConflict)
			assert.False(t, res.CanProceed)
		}
	}
}

func TestClassifyDate_BlockedAndPast(t *testing.T) {
	res := domain.ClassifyDate(domain.DateInput{Date: saturday, Today: today, Blocked: true})
	assert.Equal(t, domain.StateBlocked, res.State)

	res = domain.ClassifyDate(domain.DateInput{Date: saturday, Today: saturday.AddDays(1)})
	assert.Equal(t, domain.StateBlocked, res.State)
	assert.False(t, res.CanProceed)
}

func TestClassifyDate_NoBookings(t *testing.T) {
	res := domain.ClassifyDate(domain.DateInput{Date: saturday, Today: today, CandidateArea: "Paarl"})

	assert.Equal(t, domain.StateFree, res.State)
	assert.False(t, res.HasConflict)
	assert.True(t, res.CanProceed)
	assert.True(t, res.Available)
}

func TestClassifyDate_TwoBookingsIsFull(t *testing.T) {
	res := domain.ClassifyDate(domain.DateInput{
		Date:           saturday,
		Today:          today,
		ActiveBookings: []domain.Booking{bookingAt("7600"), bookingAt("8001")},
		CandidateArea:  "Stellenbosch",
	})

	assert.Equal(t, domain.StateAtCapacity, res.State)
	assert.True(t, res.HasConflict)
	assert.False(t, res.CanProceed)
	assert.Equal(t, 2, res.ExistingBookings)
}

func TestClassifyDate_RecordCapOverridesDefault(t *testing.T) {
	res := domain.ClassifyDate(domain.DateInput{
		Date:           saturday,
		Today:          today,
		ActiveBookings: []domain.Booking{bookingAt("7600"), bookingAt("7600")},
		MaxEvents:      3,
		CandidateArea:  "Stellenbosch",
	})

	assert.Equal(t, domain.StateSameArea, res.State)
	assert.True(t, res.CanProceed)
}

func TestClassifyDate_SoftConflicts(t *testing.T) {
	tests := []struct {
		name      string
		existing  string
		candidate string
		want      domain.DateState
		conflict  bool
	}{
		{"different area", "8001", "Stellenbosch", domain.StateCrossArea, true},
		{"unknown candidate", "7600", "", domain.StateCrossArea, true},
		{"existing without location", "", "Stellenbosch", domain.StateMissingLocation, true},
		{"same area", "7602", "Stellenbosch", domain.StateSameArea, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := domain.ClassifyDate(domain.DateInput{
				Date:           saturday,
				Today:          today,
				ActiveBookings: []domain.Booking{bookingAt(tt.existing)},
				CandidateArea:  tt.candidate,
			})

			assert.Equal(t, tt.want, res.State)
			assert.Equal(t, tt.conflict, res.HasConflict)
			assert.True(t, res.CanProceed)
		})
	}
}

func TestFailOpen(t *testing.T) {
	res := domain.FailOpen(saturday, today)

	assert.False(t, res.HasConflict)
	assert.True(t, res.CanProceed)
	assert.Equal(t, domain.MsgVerifyManually, res.Message)
}

func TestFailOpen_KeepsStaticRules(t *testing.T) {
	past := domain.Date{Year: 2020, Month: time.January, Day: 4}
	for _, d := range []domain.Date{sunday, monday, past} {
		res := domain.FailOpen(d, today)

		assert.Equal(t, domain.StateBlocked, res.State, d.String())
		assert.False(t, res.CanProceed)
		assert.Equal(t, domain.MsgBlocked, res.Message)
	}
}

func TestClassifyCalendarDay(t *testing.T) {
	day := domain.ClassifyCalendarDay(saturday, today, false, 1, nil)
	assert.Equal(t, domain.StateFree, day.State)
	assert.Equal(t, domain.DefaultMaxEvents, day.MaxEvents)

	rec := &domain.AvailabilityRecord{Date: saturday, BookedEvents: 2, MaxEvents: 2, ExternalEvents: []domain.ExternalEvent{{ID: "a"}, {ID: "b"}}}
	day = domain.ClassifyCalendarDay(saturday, today, false, 1, rec)
	assert.Equal(t, domain.StateAtCapacity, day.State)
	assert.Equal(t, 2, day.BookedEvents)
	assert.Equal(t, 2, day.ExternalEvents)

	day = domain.ClassifyCalendarDay(sunday, today, false, 0, nil)
	assert.Equal(t, domain.StateBlocked, day.State)
	assert.False(t, day.Available)
}
