package mocks

import (
	"context"

	"aspcare/models"

	"github.com/stretchr/testify/mock"
)

// MockBookingService is a mock implementation of booking.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) QuoteRate(ctx context.Context, sess *models.Session, sel models.RateSelection) (*models.RateQuote, error) {
	args := m.Called(ctx, sess, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RateQuote), args.Error(1)
}

func (m *MockBookingService) ResolveSlots(ctx context.Context, sess *models.Session, date, serviceType string) (*models.SlotBoard, error) {
	args := m.Called(ctx, sess, date, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlotBoard), args.Error(1)
}

func (m *MockBookingService) StartCheckout(ctx context.Context, sess *models.Session, req models.CheckoutRequest) (*models.CheckoutView, error) {
	args := m.Called(ctx, sess, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutView), args.Error(1)
}

func (m *MockBookingService) GetCheckout(ctx context.Context, sess *models.Session) (*models.CheckoutView, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutView), args.Error(1)
}

func (m *MockBookingService) ApplyPromo(ctx context.Context, sess *models.Session, code string) (*models.CheckoutView, error) {
	args := m.Called(ctx, sess, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutView), args.Error(1)
}

func (m *MockBookingService) RemovePromo(ctx context.Context, sess *models.Session) (*models.CheckoutView, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutView), args.Error(1)
}

func (m *MockBookingService) CreatePaymentIntent(ctx context.Context, sess *models.Session) (*models.PaymentIntent, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentIntent), args.Error(1)
}

func (m *MockBookingService) ListOrders(ctx context.Context, sess *models.Session) ([]models.OrderView, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderView), args.Error(1)
}

func (m *MockBookingService) GetOrder(ctx context.Context, sess *models.Session, id int64) (*models.OrderView, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderView), args.Error(1)
}

func (m *MockBookingService) FindUpgradeable(ctx context.Context, sess *models.Session) (*models.OrderView, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderView), args.Error(1)
}

func (m *MockBookingService) Reschedule(ctx context.Context, sess *models.Session, id int64, req models.RescheduleRequest) (*models.OrderView, error) {
	args := m.Called(ctx, sess, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderView), args.Error(1)
}

func (m *MockBookingService) Upgrade(ctx context.Context, sess *models.Session, id int64, washType string) (*models.OrderView, error) {
	args := m.Called(ctx, sess, id, washType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderView), args.Error(1)
}

func (m *MockBookingService) CancelQuote(ctx context.Context, sess *models.Session, id int64) (*models.CancelQuote, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CancelQuote), args.Error(1)
}

func (m *MockBookingService) ConfirmCancel(ctx context.Context, sess *models.Session, id int64) (*models.CancelConfirmation, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CancelConfirmation), args.Error(1)
}

func (m *MockBookingService) Rewards(ctx context.Context, sess *models.Session) (*models.RewardsSummary, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewardsSummary), args.Error(1)
}
