package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

const maxBodyBytes = 1 << 20

var (
	validate     = newValidator()
	queryDecoder = newQueryDecoder()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "schema"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type customerRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=7,max=20"`
}

func (c customerRequest) toDomain() domain.Customer {
	return domain.Customer{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}

type createBookingRequest struct {
	EventDate string               `json:"eventDate" validate:"required,datetime=2006-01-02"`
	Customer  customerRequest      `json:"customer"`
	Selection domain.MenuSelection `json:"selection"`
}

type quotePDFRequest struct {
	EventDate string               `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	Customer  domain.Customer      `json:"customer"`
	Selection domain.MenuSelection `json:"selection"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending pending_payment confirmed completed cancelled"`
}

type blockDateRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"max=200"`
}

type travelFeeQuery struct {
	PostalCode string `schema:"postal_code" validate:"required,max=10"`
}

type menuOptionsQuery struct {
	EventType string `schema:"event_type" validate:"max=50"`
}

type monthQuery struct {
	Month string `schema:"month" validate:"required,datetime=2006-01"`
}

type checkDateQuery struct {
	Date       string `schema:"date" validate:"required,datetime=2006-01-02"`
	PostalCode string `schema:"postal_code" validate:"max=10"`
}

type bookingListQuery struct {
	Status []string `schema:"status"`
}

type dateRangeQuery struct {
	From string `schema:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `schema:"to" validate:"omitempty,datetime=2006-01-02"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return badRequest("invalid json body")
	}
	return validateStruct(dst)
}

func decodeQuery(values url.Values, dst any) error {
	if err := queryDecoder.Decode(dst, values); err != nil {
		return badRequest("invalid query parameters")
	}
	return validateStruct(dst)
}

// validateStruct reports tag failures as field-keyed validation errors,
// using the json or query name of each field.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := domain.ValidationErrors{}
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out[field] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "datetime":
		if fe.Param() == "2006-01" {
			return "Use the YYYY-MM format."
		}
		return "Use the YYYY-MM-DD format."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "min", "max":
		return "Length is out of range."
	default:
		return "Invalid value."
	}
}

// splitList accepts both repeated and comma-separated query values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseOrderedForm decodes a urlencoded body keeping the posted field order,
// which the payment signature depends on.
func parseOrderedForm(body string) ([]domain.FormField, error) {
	var fields []domain.FormField
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(k)
		if err != nil {
			return nil, badRequest("invalid form body")
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, badRequest("invalid form body")
		}
		fields = append(fields, domain.FormField{Name: name, Value: value})
	}
	return fields, nil
}
