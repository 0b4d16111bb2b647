package domain

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/davidbz/lawra/internal/observability"
)

const (
	MinConsultationHours = 1
	MaxConsultationHours = 3

	bookingDateLayout = "2006-01-02"
)

// PaymentMethod identifies how a booking is paid.
type PaymentMethod string

const (
	PaymentCard      PaymentMethod = "card"
	PaymentPromptPay PaymentMethod = "promptpay"
	PaymentTrueMoney PaymentMethod = "truemoney"
)

// TimeSlots are the bookable consultation start times.
//
//nolint:gochecknoglobals // read-only list
var TimeSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentPromptPay, PaymentTrueMoney:
		return true
	default:
		return false
	}
}

// Quote is the price of a consultation.
type Quote struct {
	LawyerID       string  `json:"lawyer_id"`
	LawyerName     string  `json:"lawyer_name"`
	HourlyRate     float64 `json:"hourly_rate"`
	Hours          int     `json:"hours"`
	Subtotal       float64 `json:"subtotal"`
	ServiceFeeRate float64 `json:"service_fee_rate"`
	ServiceFee     float64 `json:"service_fee"`
	Total          float64 `json:"total"`
}

// BookingRequest is a checkout submission.
type BookingRequest struct {
	LawyerID      string        `json:"lawyer_id"`
	Date          string        `json:"date"`
	TimeSlot      string        `json:"time_slot"`
	Hours         int           `json:"hours"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Booking is a confirmed consultation.
type Booking struct {
	ID            string        `json:"id"`
	Status        string        `json:"status"`
	Date          string        `json:"date"`
	TimeSlot      string        `json:"time_slot"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Quote         Quote         `json:"quote"`
	Demo          bool          `json:"demo"`
	ConfirmedAt   time.Time     `json:"confirmed_at"`
}

// CheckoutService prices and books consultations.
type CheckoutService struct {
	catalog        ProviderCatalog
	payments       PaymentProcessor
	serviceFeeRate float64
	events         EventPublisher
	now            func() time.Time
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	catalog ProviderCatalog,
	payments PaymentProcessor,
	serviceFeeRate float64,
	events EventPublisher,
) *CheckoutService {
	return &CheckoutService{
		catalog:        catalog,
		payments:       payments,
		serviceFeeRate: serviceFeeRate,
		events:         events,
		now:            time.Now,
	}
}

// Quote prices hours of consultation with a lawyer.
func (c *CheckoutService) Quote(ctx context.Context, lawyerID string, hours int) (*Quote, error) {
	if lawyerID == "" {
		return nil, fmt.Errorf("%w: lawyer_id is required", ErrInvalidBooking)
	}

	if hours < MinConsultationHours || hours > MaxConsultationHours {
		return nil, fmt.Errorf("%w: hours must be between %d and %d",
			ErrInvalidBooking, MinConsultationHours, MaxConsultationHours)
	}

	lawyer, err := c.catalog.Get(ctx, lawyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lawyer %q: %w", lawyerID, err)
	}

	subtotal := lawyer.HourlyRate * float64(hours)
	fee := roundBaht(subtotal * c.serviceFeeRate)

	return &Quote{
		LawyerID:       lawyer.ID,
		LawyerName:     lawyer.DisplayName,
		HourlyRate:     lawyer.HourlyRate,
		Hours:          hours,
		Subtotal:       roundBaht(subtotal),
		ServiceFeeRate: c.serviceFeeRate,
		ServiceFee:     fee,
		Total:          roundBaht(subtotal + fee),
	}, nil
}

// Book validates req, prices it and settles payment.
func (c *CheckoutService) Book(ctx context.Context, req *BookingRequest) (*Booking, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}

	quote, err := c.Quote(ctx, req.LawyerID, req.Hours)
	if err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)
	logger.Info("processing booking payment",
		observability.String("lawyer_id", quote.LawyerID),
		observability.String("payment_method", string(req.PaymentMethod)),
		observability.Float64("total", quote.Total),
	)

	booking, err := c.payments.Process(ctx, req, quote)
	if err != nil {
		logger.Error("booking payment failed", observability.Error(err))
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	if c.events != nil {
		c.events.Publish(ctx, "booking.confirmed", map[string]any{
			"booking_id": booking.ID,
			"lawyer_id":  quote.LawyerID,
			"total":      quote.Total,
			"demo":       booking.Demo,
		})
	}

	return booking, nil
}

func (c *CheckoutService) validate(req *BookingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request cannot be nil", ErrInvalidBooking)
	}

	if req.LawyerID == "" {
		return fmt.Errorf("%w: lawyer_id is required", ErrInvalidBooking)
	}

	date, err := time.Parse(bookingDateLayout, req.Date)
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidBooking)
	}

	today := c.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidBooking, req.Date)
	}

	if !slices.Contains(TimeSlots, req.TimeSlot) {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidBooking, req.TimeSlot)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidBooking, req.PaymentMethod)
	}

	return nil
}

func roundBaht(amount float64) float64 {
	return math.Round(amount*100) / 100
}
