package domain

type Quote struct {
	PricePerPerson  int64  `json:"pricePerPerson"`
	Guests          int    `json:"guests"`
	MenuSubtotal    int64  `json:"menuSubtotal"`
	TravelFee       int64  `json:"travelFee"`
	TravelKnown     bool   `json:"travelKnown"`
	ServiceArea     string `json:"serviceArea,omitempty"`
	Total           int64  `json:"total"`
	DiscountApplied bool   `json:"discountApplied"`
}

type QuoteLine struct {
	Label  string
	Amount int64
}

type QuoteDocument struct {
	Reference string
	EventDate string
	EventType string
	MenuName  string
	Customer  Customer
	Lines     []QuoteLine
	Quote     Quote
}
