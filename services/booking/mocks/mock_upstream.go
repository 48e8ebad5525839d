package mocks

import (
	"context"

	"aspcare/models"

	"github.com/stretchr/testify/mock"
)

// MockUpstream is a mock implementation of booking.UpstreamAPI
type MockUpstream struct {
	mock.Mock
}

func (m *MockUpstream) GetRate(ctx context.Context, token, vehicleType, washLevel string) (*models.Rate, error) {
	args := m.Called(ctx, token, vehicleType, washLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rate), args.Error(1)
}

func (m *MockUpstream) GetAvailability(ctx context.Context, token, date, serviceType string) (map[string]bool, error) {
	args := m.Called(ctx, token, date, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockUpstream) ListBookingsByPhone(ctx context.Context, token, phone string) ([]models.Booking, error) {
	args := m.Called(ctx, token, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockUpstream) HasBookings(ctx context.Context, token, phone string) (bool, error) {
	args := m.Called(ctx, token, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockUpstream) RescheduleBooking(ctx context.Context, token string, id int64, req models.RescheduleRequest) (*models.Booking, error) {
	args := m.Called(ctx, token, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockUpstream) UpgradeBooking(ctx context.Context, token string, id int64, washType string) (*models.Booking, error) {
	args := m.Called(ctx, token, id, washType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockUpstream) GetCancelQuote(ctx context.Context, token string, id int64) (*models.CancelQuote, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CancelQuote), args.Error(1)
}

func (m *MockUpstream) ConfirmCancel(ctx context.Context, token string, id int64) (*models.CancelConfirmation, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CancelConfirmation), args.Error(1)
}

func (m *MockUpstream) GetActiveMembership(ctx context.Context, token, phone string) (*models.Membership, error) {
	args := m.Called(ctx, token, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Membership), args.Error(1)
}

func (m *MockUpstream) ListMemberships(ctx context.Context, token, phone string) ([]models.Membership, error) {
	args := m.Called(ctx, token, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Membership), args.Error(1)
}

func (m *MockUpstream) CreateMembership(ctx context.Context, token string, req models.MembershipRequest) (*models.Membership, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Membership), args.Error(1)
}

func (m *MockUpstream) ActivateMembership(ctx context.Context, token string, id int64) (*models.Membership, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Membership), args.Error(1)
}

func (m *MockUpstream) ValidateCoupon(ctx context.Context, token string, req models.CouponValidateRequest) (*models.CouponValidation, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CouponValidation), args.Error(1)
}

func (m *MockUpstream) GenerateCoupon(ctx context.Context, token string, req models.CouponGenerateRequest) (*models.Coupon, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (m *MockUpstream) GetReferralDetails(ctx context.Context, token, phone string) (*models.ReferralDetails, error) {
	args := m.Called(ctx, token, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReferralDetails), args.Error(1)
}

func (m *MockUpstream) ListAreas(ctx context.Context, token string) ([]string, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUpstream) SearchCentres(ctx context.Context, token, area string) ([]models.Centre, error) {
	args := m.Called(ctx, token, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Centre), args.Error(1)
}

func (m *MockUpstream) ListDeals(ctx context.Context, token string) ([]models.Deal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Deal), args.Error(1)
}

func (m *MockUpstream) GetGreeting(ctx context.Context, token, phone string) (*models.Greeting, error) {
	args := m.Called(ctx, token, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Greeting), args.Error(1)
}
