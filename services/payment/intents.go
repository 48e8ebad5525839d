package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"aspcare/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ErrPaymentsDisabled is returned when no payment provider key is configured.
var ErrPaymentsDisabled = errors.New("payments are not configured")

// IntentCreator creates a payment intent for an amount.
type IntentCreator interface {
	Create(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error)
}

// ToMinorUnits converts rupees to paise.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// StripeIntents creates Stripe PaymentIntents.
type StripeIntents struct {
	logger    *zap.Logger
	newIntent func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewStripeIntents(logger *zap.Logger) *StripeIntents {
	return &StripeIntents{
		logger:    logger,
		newIntent: paymentintent.New,
	}
}

func (s *StripeIntents) Create(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error) {
	if req.Amount <= 0 {
		return &models.PaymentIntent{Required: false, Currency: req.Currency}, nil
	}
	if req.Currency == "" {
		return nil, errors.New("payment currency is required")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ToMinorUnits(req.Amount)),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := s.newIntent(params)
	if err != nil {
		s.logger.Error("stripe payment intent failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.Info("Payment intent created",
		zap.String("intent", pi.ID),
		zap.Int64("amount", pi.Amount))
	return &models.PaymentIntent{
		Required:     true,
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       req.Amount,
		Currency:     strings.ToUpper(req.Currency),
	}, nil
}

// Disabled is used when STRIPE_KEY is empty.
type Disabled struct{}

func (Disabled) Create(_ context.Context, req models.PaymentRequest) (*models.PaymentIntent, error) {
	if req.Amount <= 0 {
		return &models.PaymentIntent{Required: false, Currency: req.Currency}, nil
	}
	return nil, ErrPaymentsDisabled
}
