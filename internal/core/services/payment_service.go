package services

import (
	"context"
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

const PayFastComplete = "COMPLETE"

type PayFastConfig struct {
	MerchantID  string
	MerchantKey string
	Passphrase  string
	ProcessURL  string
	ReturnURL   string
	CancelURL   string
	NotifyURL   string
}

func (c PayFastConfig) Configured() bool {
	return c.MerchantID != "" && c.MerchantKey != "" && c.ProcessURL != ""
}

type PaymentService struct {
	cfg      PayFastConfig
	bookings *BookingService
	logger   *zap.Logger
}

func NewPaymentService(cfg PayFastConfig, bookings *BookingService, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		cfg:      cfg,
		bookings: bookings,
		logger:   logger,
	}
}

// BuildForm returns the signed hosted-payment form for a booking. A pending
// booking moves to pending_payment.
func (s *PaymentService) BuildForm(ctx context.Context, id uuid.UUID) (*domain.PaymentForm, error) {
	if !s.cfg.Configured() {
		return nil, domain.ErrNotConfigured
	}

	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	switch booking.Status {
	case domain.BookingPending:
		if booking, err = s.bookings.UpdateStatus(ctx, id, domain.BookingPendingPayment); err != nil {
			return nil, err
		}
	case domain.BookingPendingPayment:
	default:
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, booking.Status)
	}

	first, last := splitName(booking.Customer.Name)
	candidates := []domain.FormField{
		{Name: "merchant_id", Value: s.cfg.MerchantID},
		{Name: "merchant_key", Value: s.cfg.MerchantKey},
		{Name: "return_url", Value: s.cfg.ReturnURL},
		{Name: "cancel_url", Value: s.cfg.CancelURL},
		{Name: "notify_url", Value: s.cfg.NotifyURL},
		{Name: "name_first", Value: first},
		{Name: "name_last", Value: last},
		{Name: "email_address", Value: booking.Customer.Email},
		{Name: "m_payment_id", Value: booking.ID.String()},
		{Name: "amount", Value: FormatAmount(booking.TotalPrice)},
		{Name: "item_name", Value: fmt.Sprintf("Catering booking %s", booking.EventDate)},
	}

	fields := make([]domain.FormField, 0, len(candidates)+1)
	for _, f := range candidates {
		if strings.TrimSpace(f.Value) != "" {
			fields = append(fields, f)
		}
	}
	fields = append(fields, domain.FormField{Name: "signature", Value: Signature(fields, s.cfg.Passphrase, false)})

	return &domain.PaymentForm{Action: s.cfg.ProcessURL, Fields: fields}, nil
}

// HandleNotification verifies an ITN post and confirms the booking when the
// payment is complete. Fields must be in the order they were received.
func (s *PaymentService) HandleNotification(ctx context.Context, fields []domain.FormField) (*domain.PaymentNotification, error) {
	if !s.cfg.Configured() {
		return nil, domain.ErrNotConfigured
	}

	n, err := VerifyNotification(fields, s.cfg.Passphrase, s.cfg.MerchantID)
	if err != nil {
		s.logger.Warn("payfast notification rejected", zap.Error(err))
		return nil, err
	}

	id, err := uuid.Parse(n.BookingID)
	if err != nil {
		return nil, domain.ValidationErrors{"m_payment_id": "Unknown payment reference."}
	}
	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.AmountGross != FormatAmount(booking.TotalPrice) {
		s.logger.Warn("payfast amount mismatch",
			zap.String("booking_id", n.BookingID),
			zap.String("amount_gross", n.AmountGross),
			zap.Int64("expected", booking.TotalPrice),
		)
		return nil, domain.ErrAmountMismatch
	}

	s.logger.Info("payfast notification",
		zap.String("booking_id", n.BookingID),
		zap.String("payment_status", n.PaymentStatus),
	)
	if n.PaymentStatus != PayFastComplete {
		return n, nil
	}
	if _, err := s.bookings.UpdateStatus(ctx, id, domain.BookingConfirmed); err != nil {
		return nil, err
	}
	return n, nil
}

// VerifyNotification recomputes the signature over every posted field
// except the signature itself.
func VerifyNotification(fields []domain.FormField, passphrase, merchantID string) (*domain.PaymentNotification, error) {
	n := &domain.PaymentNotification{}
	var signature string
	signed := make([]domain.FormField, 0, len(fields))
	for _, f := range fields {
		switch f.Name {
		case "signature":
			signature = f.Value
			continue
		case "payment_status":
			n.PaymentStatus = f.Value
		case "m_payment_id":
			n.BookingID = f.Value
		case "amount_gross":
			n.AmountGross = f.Value
		case "merchant_id":
			if merchantID != "" && f.Value != merchantID {
				return nil, fmt.Errorf("%w: merchant mismatch", domain.ErrInvalidSignature)
			}
		}
		signed = append(signed, f)
	}
	n.Fields = signed

	if signature == "" {
		return nil, domain.ErrInvalidSignature
	}
	expected := Signature(signed, passphrase, true)
	if subtle.ConstantTimeCompare([]byte(strings.ToLower(signature)), []byte(expected)) != 1 {
		return nil, domain.ErrInvalidSignature
	}
	return n, nil
}

// Signature is the lowercase MD5 of the URL-encoded parameter string with
// the passphrase appended. Notifications sign empty values too.
func Signature(fields []domain.FormField, passphrase string, includeEmpty bool) string {
	parts := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" && !includeEmpty {
			continue
		}
		parts = append(parts, f.Name+"="+url.QueryEscape(v))
	}
	if passphrase != "" {
		parts = append(parts, "passphrase="+url.QueryEscape(strings.TrimSpace(passphrase)))
	}
	sum := md5.Sum([]byte(strings.Join(parts, "&")))
	return hex.EncodeToString(sum[:])
}

// FormatAmount renders whole Rand with two decimals.
func FormatAmount(rand int64) string {
	return strconv.FormatInt(rand, 10) + ".00"
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	if i := strings.LastIndex(full, " "); i > 0 {
		return strings.TrimSpace(full[:i]), strings.TrimSpace(full[i+1:])
	}
	return full, ""
}
