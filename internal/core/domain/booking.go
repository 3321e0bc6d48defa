package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending        BookingStatus = "pending"
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingCompleted      BookingStatus = "completed"
	BookingCancelled      BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that count toward the daily cap.
var ActiveStatuses = []BookingStatus{BookingConfirmed, BookingPendingPayment, BookingPending}

var validNext = map[BookingStatus]map[BookingStatus]bool{
	BookingPending:        {BookingPendingPayment: true, BookingConfirmed: true, BookingCancelled: true},
	BookingPendingPayment: {BookingConfirmed: true, BookingCancelled: true},
	BookingConfirmed:      {BookingCompleted: true, BookingCancelled: true},
	BookingCompleted:      {},
	BookingCancelled:      {},
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	st := BookingStatus(s)
	_, ok := validNext[st]
	return st, ok
}

func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s BookingStatus) CanTransition(to BookingStatus) bool {
	return validNext[s][to]
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Booking struct {
	ID              uuid.UUID     `json:"id"`
	EventDate       Date          `json:"eventDate"`
	VenuePostalCode string        `json:"venuePostalCode,omitempty"`
	Status          BookingStatus `json:"status"`
	TotalPrice      int64         `json:"totalPrice"`
	GuestCount      int           `json:"guestCount"`
	EventType       string        `json:"eventType"`
	MenuSelection   MenuSelection `json:"menuSelection"`
	Customer        Customer      `json:"customer"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// BookingStats feeds the admin dashboard.
type BookingStats struct {
	Revenue        int64 `json:"revenue"`
	PendingCount   int   `json:"pendingCount"`
	ConfirmedCount int   `json:"confirmedCount"`
	TotalCount     int   `json:"totalCount"`
}
