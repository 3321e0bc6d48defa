package domain

import "time"

// WebhookPayload is the flat shape the intake automation expects.
type WebhookPayload struct {
	BookingID       string    `json:"booking_id"`
	Status          string    `json:"status"`
	EventDate       string    `json:"event_date"`
	EventType       string    `json:"event_type"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	VenuePostalCode string    `json:"venue_postal_code"`
	ServiceArea     string    `json:"service_area"`
	Menu            string    `json:"menu"`
	GuestCount      int       `json:"guest_count"`
	Season          string    `json:"season,omitempty"`
	Starters        string    `json:"starters,omitempty"`
	Sides           string    `json:"sides,omitempty"`
	Desserts        string    `json:"desserts,omitempty"`
	Extras          string    `json:"extras,omitempty"`
	ExtraSaladType  string    `json:"extra_salad_type,omitempty"`
	IncludeCutlery  bool      `json:"include_cutlery"`
	MenuSubtotal    int64     `json:"menu_subtotal"`
	TravelFee       int64     `json:"travel_fee"`
	TotalPrice      int64     `json:"total_price"`
	DiscountApplied bool      `json:"discount_applied"`
	RequiresReview  bool      `json:"requires_review"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

const MaxWebhookAttempts = 3

type QueuedWebhook struct {
	Payload   WebhookPayload `json:"payload"`
	Attempts  int            `json:"attempts"`
	LastError string         `json:"lastError,omitempty"`
	QueuedAt  time.Time      `json:"queuedAt"`
}

type BookingEmail struct {
	To          string
	BookingID   string
	Customer    Customer
	EventDate   string
	EventType   string
	MenuName    string
	GuestCount  int
	ServiceArea string
	Quote       Quote
	NeedsReview bool
}

// PaymentForm is the auto-submitting form posted to the hosted payment page.
type PaymentForm struct {
	Action string      `json:"action"`
	Fields []FormField `json:"fields"`
}

type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PaymentNotification struct {
	Fields        []FormField
	PaymentStatus string
	BookingID     string
	AmountGross   string
}
