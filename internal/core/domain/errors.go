package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDateUnavailable   = errors.New("date is not available")
	ErrDateFull          = errors.New("daily maximum reached")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotConfigured     = errors.New("not configured")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrAmountMismatch    = errors.New("amount mismatch")
	ErrUnauthorized      = errors.New("unauthorized")
)

// Field keys in the order the booking form scans them.
const (
	FieldMenu       = "menu"
	FieldGuests     = "guests"
	FieldSeason     = "season"
	FieldStarters   = "starters"
	FieldSides      = "sides"
	FieldDesserts   = "desserts"
	FieldPostalCode = "postalCode"
)

var fieldOrder = []string{FieldMenu, FieldGuests, FieldSeason, FieldStarters, FieldSides, FieldDesserts, FieldPostalCode}

// ValidationErrors maps a form field to a user-facing message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FirstField returns the first failing field in form order, or "".
func (v ValidationErrors) FirstField() string {
	for _, k := range fieldOrder {
		if _, ok := v[k]; ok {
			return k
		}
	}
	for k := range v {
		return k
	}
	return ""
}

func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
