package payment

import (
	"context"
	"errors"
	"testing"

	"aspcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(43000), ToMinorUnits(430))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}

func TestStripeIntents_Create(t *testing.T) {
	var got *stripe.PaymentIntentParams
	s := &StripeIntents{
		logger: zap.NewNop(),
		newIntent: func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			got = p
			return &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "cs_1", Amount: *p.Amount}, nil
		},
	}

	intent, err := s.Create(context.Background(), models.PaymentRequest{
		Amount:      430,
		Currency:    "INR",
		Idempotency: "checkout:s1",
		Metadata:    map[string]string{"phone": "9876543210"},
	})
	require.NoError(t, err)
	assert.True(t, intent.Required)
	assert.Equal(t, "pi_1", intent.IntentID)
	assert.Equal(t, "cs_1", intent.ClientSecret)

	require.NotNil(t, got)
	assert.Equal(t, int64(43000), *got.Amount)
	assert.Equal(t, "inr", *got.Currency)
	assert.Equal(t, "checkout:s1", *got.IdempotencyKey)
	assert.Equal(t, "9876543210", got.Metadata["phone"])
}

func TestStripeIntents_NothingToCollect(t *testing.T) {
	called := false
	s := &StripeIntents{
		logger: zap.NewNop(),
		newIntent: func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			called = true
			return nil, nil
		},
	}
	intent, err := s.Create(context.Background(), models.PaymentRequest{Amount: 0, Currency: "INR"})
	require.NoError(t, err)
	assert.False(t, intent.Required)
	assert.False(t, called)
}

func TestStripeIntents_ProviderError(t *testing.T) {
	s := &StripeIntents{
		logger: zap.NewNop(),
		newIntent: func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return nil, errors.New("card_declined")
		},
	}
	_, err := s.Create(context.Background(), models.PaymentRequest{Amount: 10, Currency: "INR"})
	assert.Error(t, err)
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Create(context.Background(), models.PaymentRequest{Amount: 10, Currency: "INR"})
	assert.ErrorIs(t, err, ErrPaymentsDisabled)

	intent, err := Disabled{}.Create(context.Background(), models.PaymentRequest{Amount: 0, Currency: "INR"})
	require.NoError(t, err)
	assert.False(t, intent.Required)
}
