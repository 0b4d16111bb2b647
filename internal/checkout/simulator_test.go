package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/lawra/internal/checkout"
	"github.com/davidbz/lawra/internal/domain"
)

func bookingFixture() (*domain.BookingRequest, *domain.Quote) {
	req := &domain.BookingRequest{
		LawyerID:      "1",
		Date:          "2099-01-15",
		TimeSlot:      "10:00",
		Hours:         2,
		PaymentMethod: domain.PaymentPromptPay,
	}
	quote := &domain.Quote{
		LawyerID:   "1",
		HourlyRate: 2500,
		Hours:      2,
		Subtotal:   5000,
		ServiceFee: 250,
		Total:      5250,
	}
	return req, quote
}

func TestDemoPaymentSimulator_Process(t *testing.T) {
	simulator := checkout.NewDemoPaymentSimulator(10 * time.Millisecond)
	req, quote := bookingFixture()

	start := time.Now()
	booking, err := simulator.Process(context.Background(), req, quote)

	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	require.Equal(t, "confirmed", booking.Status)
	require.True(t, booking.Demo)
	require.Equal(t, "2099-01-15", booking.Date)
	require.Equal(t, "10:00", booking.TimeSlot)
	require.Equal(t, domain.PaymentPromptPay, booking.PaymentMethod)
	require.InDelta(t, 5250.0, booking.Quote.Total, 0.001)

	_, parseErr := uuid.Parse(booking.ID)
	require.NoError(t, parseErr)
}

func TestDemoPaymentSimulator_ContextCanceled(t *testing.T) {
	simulator := checkout.NewDemoPaymentSimulator(time.Hour)
	req, quote := bookingFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	booking, err := simulator.Process(ctx, req, quote)

	require.Nil(t, booking)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDemoPaymentSimulator_NilInput(t *testing.T) {
	simulator := checkout.NewDemoPaymentSimulator(0)

	booking, err := simulator.Process(context.Background(), nil, nil)

	require.Nil(t, booking)
	require.Error(t, err)
}
