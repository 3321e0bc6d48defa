package domain

import (
	"time"
)

const DefaultMaxEvents = 2

type ExternalEvent struct {
	ID      string    `json:"id"`
	Summary string    `json:"summary"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

type AvailabilityRecord struct {
	Date           Date            `json:"date"`
	IsAvailable    bool            `json:"isAvailable"`
	BookedEvents   int             `json:"bookedEvents"`
	MaxEvents      int             `json:"maxEvents"`
	ExternalEvents []ExternalEvent `json:"externalEvents"`
	Notes          string          `json:"notes,omitempty"`
}

func (r AvailabilityRecord) EffectiveMaxEvents() int {
	if r.MaxEvents < 1 {
		return DefaultMaxEvents
	}
	return r.MaxEvents
}

type BlockedDate struct {
	Date   Date   `json:"date"`
	Reason string `json:"reason,omitempty"`
}

type SyncState string

const (
	SyncSuccess SyncState = "success"
	SyncError   SyncState = "error"
	SyncPending SyncState = "pending"
)

type SyncStatus struct {
	LastSync     time.Time `json:"lastSync"`
	Status       SyncState `json:"status"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	EventsSynced int       `json:"eventsSynced"`
}

type DateState string

const (
	StateBlocked         DateState = "blocked"
	StateAtCapacity      DateState = "at_capacity"
	StateCrossArea       DateState = "cross_area_conflict"
	StateMissingLocation DateState = "missing_location_conflict"
	StateSameArea        DateState = "same_area"
	StateFree            DateState = "available"
)

const (
	MsgBlocked         = "This date is not available for bookings."
	MsgAtCapacity      = "The daily maximum of events has been reached for this date."
	MsgCrossArea       = "Another event is booked in a different area on this date. We will review your booking manually."
	MsgMissingLocation = "Another event on this date has no confirmed location. We will confirm availability with you."
	MsgSameArea        = "This date is available."
	MsgFree            = "This date is available."
	MsgVerifyManually  = "We could not verify availability right now. Please contact us to verify this date."
)

// DateInput is everything the classifier needs about one date.
type DateInput struct {
	Date           Date
	Today          Date
	Blocked        bool
	ActiveBookings []Booking
	MaxEvents      int
	// CandidateArea is the service area of the booking being considered,
	// empty when unknown.
	CandidateArea string
}

type DateAssessment struct {
	Date             Date      `json:"date"`
	State            DateState `json:"state"`
	Available        bool      `json:"available"`
	HasConflict      bool      `json:"hasConflict"`
	CanProceed       bool      `json:"canProceed"`
	Message          string    `json:"message"`
	ExistingBookings int       `json:"existingBookings"`
}

// IsClosedDay reports the weekdays the business never caters.
func IsClosedDay(d Date) bool {
	wd := d.Weekday()
	return wd == time.Sunday || wd == time.Monday
}

// Unbookable reports dates that are rejected without consulting any
// store: past dates and closed days.
func Unbookable(d, today Date) bool {
	return d.Before(today) || IsClosedDay(d)
}

func blockedAssessment(d Date, existing int) DateAssessment {
	return DateAssessment{
		Date:             d,
		State:            StateBlocked,
		HasConflict:      true,
		Message:          MsgBlocked,
		ExistingBookings: existing,
	}
}

// ClassifyDate evaluates the availability states in precedence order.
func ClassifyDate(in DateInput) DateAssessment {
	if in.Blocked || Unbookable(in.Date, in.Today) {
		return blockedAssessment(in.Date, len(in.ActiveBookings))
	}
	out := DateAssessment{Date: in.Date, ExistingBookings: len(in.ActiveBookings)}

	limit := in.MaxEvents
	if limit < 1 {
		limit = DefaultMaxEvents
	}
	if len(in.ActiveBookings) >= limit {
		out.State = StateAtCapacity
		out.HasConflict = true
		out.Message = MsgAtCapacity
		return out
	}

	if len(in.ActiveBookings) == 0 {
		out.State = StateFree
		out.Available = true
		out.CanProceed = true
		out.Message = MsgFree
		return out
	}

	missing := false
	crossArea := false
	for _, b := range in.ActiveBookings {
		area, ok := AreaNameByPostalCode(b.VenuePostalCode)
		if !ok {
			missing = true
			continue
		}
		if in.CandidateArea == "" || area != in.CandidateArea {
			crossArea = true
		}
	}

	switch {
	case crossArea:
		out.State = StateCrossArea
		out.HasConflict = true
		out.CanProceed = true
		out.Message = MsgCrossArea
	case missing:
		out.State = StateMissingLocation
		out.HasConflict = true
		out.CanProceed = true
		out.Message = MsgMissingLocation
	default:
		out.State = StateSameArea
		out.Available = true
		out.CanProceed = true
		out.Message = MsgSameArea
	}
	return out
}

// FailOpen is the assessment returned when availability data can't be read.
// Past dates and closed days stay blocked.
func FailOpen(d, today Date) DateAssessment {
	if Unbookable(d, today) {
		return blockedAssessment(d, 0)
	}
	return DateAssessment{
		Date:       d,
		State:      StateFree,
		Available:  true,
		CanProceed: true,
		Message:    MsgVerifyManually,
	}
}

// CalendarDay is one cell of the month view.
type CalendarDay struct {
	Date           Date      `json:"date"`
	State          DateState `json:"state"`
	Available      bool      `json:"available"`
	BookedEvents   int       `json:"bookedEvents"`
	MaxEvents      int       `json:"maxEvents"`
	ExternalEvents int       `json:"externalEvents"`
}

// ClassifyCalendarDay builds the month-view cell. Occupancy is the larger
// of the active booking count and the synced event count.
func ClassifyCalendarDay(d, today Date, blocked bool, activeBookings int, rec *AvailabilityRecord) CalendarDay {
	day := CalendarDay{Date: d, MaxEvents: DefaultMaxEvents, BookedEvents: activeBookings}
	if rec != nil {
		day.MaxEvents = rec.EffectiveMaxEvents()
		day.ExternalEvents = len(rec.ExternalEvents)
		if rec.BookedEvents > day.BookedEvents {
			day.BookedEvents = rec.BookedEvents
		}
	}

	switch {
	case blocked || Unbookable(d, today):
		day.State = StateBlocked
	case day.BookedEvents >= day.MaxEvents:
		day.State = StateAtCapacity
	default:
		day.State = StateFree
		day.Available = true
	}
	return day
}
