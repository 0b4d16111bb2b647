// Package checkout contains the demo payment processor. No money moves:
// payment is simulated by waiting a fixed delay and then confirming.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/lawra/internal/domain"
	"github.com/davidbz/lawra/internal/observability"
)

const statusConfirmed = "confirmed"

// DemoPaymentSimulator implements domain.PaymentProcessor with a timer.
type DemoPaymentSimulator struct {
	delay time.Duration
	now   func() time.Time
}

// NewDemoPaymentSimulator creates a simulator that confirms after delay.
func NewDemoPaymentSimulator(delay time.Duration) *DemoPaymentSimulator {
	return &DemoPaymentSimulator{
		delay: delay,
		now:   time.Now,
	}
}

// Process waits for the simulated delay and returns a confirmed demo booking.
func (s *DemoPaymentSimulator) Process(
	ctx context.Context,
	req *domain.BookingRequest,
	quote *domain.Quote,
) (*domain.Booking, error) {
	if req == nil || quote == nil {
		return nil, errors.New("request and quote cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Info("simulating demo payment",
		observability.Duration("delay", s.delay),
		observability.Float64("total", quote.Total))

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("payment simulation interrupted: %w", ctx.Err())
		case <-timer.C:
		}
	}

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		Status:        statusConfirmed,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		PaymentMethod: req.PaymentMethod,
		Quote:         *quote,
		Demo:          true,
		ConfirmedAt:   s.now(),
	}

	logger.Info("demo payment confirmed",
		observability.String("booking_id", booking.ID))

	return booking, nil
}
