package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"aspcare/models"
	"aspcare/services/booking"
	"aspcare/services/booking/mocks"
	"aspcare/services/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// 18 Jan 2026, 08:30 IST.
var now = time.Date(2026, 1, 18, 8, 30, 0, 0, time.FixedZone("IST", 19800))

var sess = &models.Session{ID: "s1", Phone: "9876543210", UpstreamToken: "tok"}

func newBookingService(up *mocks.MockUpstream) (*booking.DefaultBookingService, *mocks.MemoryCheckoutStore, *mocks.MockIntentCreator) {
	store := mocks.NewMemoryCheckoutStore()
	payments := new(mocks.MockIntentCreator)
	svc := &booking.DefaultBookingService{
		Upstream:  up,
		Rates:     booking.NewRateResolver(up, "INR", zap.NewNop()),
		Checkouts: store,
		Payments:  payments,
		Clock:     fixedClock{now},
		Logger:    zap.NewNop(),
		Currency:  "INR",
	}
	return svc, store, payments
}

func checkoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		VehicleType:   "sedan",
		VehicleNumber: "ka01ab1234",
		WashType:      "Foam",
		WaterOption:   "give-water",
		BookingDate:   "2026-01-19",
		TimeSlot:      "09:00-10:00",
	}
}

func TestStartCheckout_PromoAndPayment(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, store, payments := newBookingService(up)
	ctx := context.Background()

	up.On("GetAvailability", mock.Anything, "tok", "2026-01-19", "HOME").
		Return(map[string]bool{"09:00-10:00": true, "10:00-11:00": false}, nil)
	up.On("GetRate", mock.Anything, "tok", "SEDAN", "FOAM").Return(&models.Rate{Amount: 600}, nil)
	up.On("GetActiveMembership", mock.Anything, "tok", sess.Phone).
		Return(&models.Membership{Status: "ACTIVE", DiscountPercent: 10}, nil)
	up.On("HasBookings", mock.Anything, "tok", sess.Phone).Return(false, remote.ErrNotFound)

	view, err := svc.StartCheckout(ctx, sess, checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, "KA01AB1234", view.Request.VehicleNumber)
	assert.Equal(t, "HOME", view.Request.ServiceType)
	assert.Equal(t, 500.0, view.Breakdown.SubTotal)
	assert.Equal(t, 50.0, view.Breakdown.MembershipDiscount)
	assert.Equal(t, 20.0, view.Breakdown.SignupBonus)
	assert.Equal(t, 430.0, view.Breakdown.GrandTotal)

	up.On("ValidateCoupon", mock.Anything, "tok", models.CouponValidateRequest{
		CouponCode: "SAVE30", UserPhone: sess.Phone, OrderAmount: 500,
	}).Return(&models.CouponValidation{Valid: true, DiscountAmount: 30}, nil)

	view, err = svc.ApplyPromo(ctx, sess, "save30")
	require.NoError(t, err)
	assert.True(t, view.Promo.Applied)
	assert.Equal(t, 400.0, view.Breakdown.GrandTotal)

	stored, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.PromoApplied)

	payments.On("Create", mock.Anything, mock.MatchedBy(func(r models.PaymentRequest) bool {
		return r.Amount == 400 && r.Currency == "INR" && r.Metadata["promoCode"] == "SAVE30"
	})).Return(&models.PaymentIntent{Required: true, IntentID: "pi_1", ClientSecret: "secret"}, nil)

	intent, err := svc.CreatePaymentIntent(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.IntentID)
	assert.Equal(t, 400.0, intent.Amount)
	assert.NotEmpty(t, intent.Display)

	up.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestStartCheckout_BookedSlotIsRefused(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)

	up.On("GetAvailability", mock.Anything, "tok", "2026-01-19", "HOME").
		Return(map[string]bool{"09:00-10:00": false}, nil)

	_, err := svc.StartCheckout(context.Background(), sess, checkoutRequest())

	var ve *booking.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "This time slot is already booked", ve.Message)
	up.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStartCheckout_LocalValidationMakesNoCalls(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)

	req := checkoutRequest()
	req.VehicleNumber = "KA01"
	_, err := svc.StartCheckout(context.Background(), sess, req)

	assert.True(t, booking.IsValidation(err))
	up.AssertExpectations(t)
}

func TestStartCheckout_SignupBonus(t *testing.T) {
	tests := []struct {
		name      string
		exists    bool
		err       error
		wantBonus float64
	}{
		{"first booking", false, nil, 20},
		{"returning customer", true, nil, 0},
		{"no history on record", false, remote.ErrNotFound, 20},
		{"history unavailable fails open", false, &remote.NetworkError{Op: "GET", Err: errors.New("offline")}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := new(mocks.MockUpstream)
			svc, _, _ := newBookingService(up)

			up.On("GetAvailability", mock.Anything, "tok", "2026-01-19", "HOME").Return(nil, remote.ErrNotFound)
			up.On("GetRate", mock.Anything, "tok", "SEDAN", "FOAM").Return(&models.Rate{Amount: 600}, nil)
			up.On("GetActiveMembership", mock.Anything, "tok", sess.Phone).Return(nil, remote.ErrNotFound)
			up.On("HasBookings", mock.Anything, "tok", sess.Phone).Return(tt.exists, tt.err)

			view, err := svc.StartCheckout(context.Background(), sess, checkoutRequest())
			require.NoError(t, err)
			assert.Equal(t, tt.wantBonus, view.Breakdown.SignupBonus)
			assert.Zero(t, view.Breakdown.MembershipDiscount)
		})
	}
}

func TestGetCheckout_NoneInProgress(t *testing.T) {
	svc, _, _ := newBookingService(new(mocks.MockUpstream))
	_, err := svc.GetCheckout(context.Background(), sess)
	assert.ErrorIs(t, err, booking.ErrCheckoutNotFound)
}

func TestResolveSlots_FallbackOnFailure(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	up.On("GetAvailability", mock.Anything, "tok", "2026-01-19", "SELFDRIVE").
		Return(nil, &remote.RequestFailedError{Status: 500})

	board, err := svc.ResolveSlots(context.Background(), sess, "2026-01-19", "selfdrive")
	require.NoError(t, err)
	assert.True(t, board.Fallback)
	assert.Len(t, board.Slots, len(booking.CanonicalSlots))
}

func TestResolveSlots_CancelledPropagates(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	up.On("GetAvailability", mock.Anything, "tok", "2026-01-19", "HOME").Return(nil, remote.ErrCancelled)

	_, err := svc.ResolveSlots(context.Background(), sess, "2026-01-19", "")
	assert.True(t, remote.IsCancelled(err))
}

func futureBooking(id int64, wash string) models.Booking {
	return models.Booking{ID: id, WashType: wash, BookingDate: "2026-01-20", TimeSlot: "10:00-11:00", Status: "CONFIRMED"}
}

func TestListOrders(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	up.On("ListBookingsByPhone", mock.Anything, "tok", sess.Phone).Return([]models.Booking{
		futureBooking(1, "Basic"),
		{ID: 2, WashType: "Foam", BookingDate: "2026-01-10", TimeSlot: "10:00-11:00"},
	}, nil)

	orders, err := svc.ListOrders(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "Scheduled", orders[0].DisplayStatus)
	assert.Equal(t, "Scheduled: 10:00-11:00", orders[0].StatusLabel)
	assert.Equal(t, "20-JAN-2026, 10:00-11:00", orders[0].Schedule)
	assert.Equal(t, []string{"Foam", "Premium"}, orders[0].UpgradeTargets)
	assert.Equal(t, "Completed", orders[1].DisplayStatus)
	assert.Empty(t, orders[1].UpgradeTargets)
}

func TestListOrders_EmptyAndNoPhone(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	up.On("ListBookingsByPhone", mock.Anything, "tok", sess.Phone).Return(nil, remote.ErrNotFound)

	orders, err := svc.ListOrders(context.Background(), sess)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = svc.ListOrders(context.Background(), &models.Session{ID: "s2"})
	assert.ErrorIs(t, err, booking.ErrPhoneRequired)
}

func TestReschedule(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	req := models.RescheduleRequest{BookingDate: "2026-01-21", TimeSlot: "11:00-12:00", RescheduledReason: "Out of town"}

	up.On("ListBookingsByPhone", mock.Anything, "tok", sess.Phone).Return([]models.Booking{futureBooking(7, "Foam")}, nil)
	up.On("GetAvailability", mock.Anything, "tok", "2026-01-21", "HOME").Return(map[string]bool{"11:00-12:00": true}, nil)
	up.On("RescheduleBooking", mock.Anything, "tok", int64(7), req).Return(nil, nil)

	view, err := svc.Reschedule(context.Background(), sess, 7, req)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-21", view.Booking.BookingDate)
	assert.Equal(t, "11:00-12:00", view.Booking.TimeSlot)
	up.AssertExpectations(t)
}

func TestReschedule_Refusals(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	cancelled := futureBooking(8, "Foam")
	cancelled.Status = "Cancelled"
	up.On("ListBookingsByPhone", mock.Anything, "tok", sess.Phone).Return([]models.Booking{cancelled}, nil)

	req := models.RescheduleRequest{BookingDate: "2026-01-21", TimeSlot: "11:00-12:00"}

	_, err := svc.Reschedule(context.Background(), sess, 8, req)
	assert.True(t, booking.IsValidation(err))

	_, err = svc.Reschedule(context.Background(), sess, 99, req)
	assert.True(t, remote.IsNotFound(err))

	req.BookingDate = "2026-01-01"
	_, err = svc.Reschedule(context.Background(), sess, 8, req)
	assert.True(t, booking.IsValidation(err))
}

func TestUpgrade(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	up.On("ListBookingsByPhone", mock.Anything, "tok", sess.Phone).Return([]models.Booking{futureBooking(7, "Foam")}, nil)

	_, err := svc.Upgrade(context.Background(), sess, 7, "Basic")
	var ve *booking.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "This booking can be upgraded to Premium", ve.Message)

	up.On("UpgradeBooking", mock.Anything, "tok", int64(7), "Premium").Return(nil, nil)
	view, err := svc.Upgrade(context.Background(), sess, 7, "premium")
	require.NoError(t, err)
	assert.Equal(t, "Premium", view.Booking.WashType)
	assert.Empty(t, view.UpgradeTargets)
}

func TestConfirmCancel(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	up.On("ListBookingsByPhone", mock.Anything, "tok", sess.Phone).
		Return([]models.Booking{futureBooking(7, "Foam"), futureBooking(8, "Basic")}, nil)
	up.On("GetCancelQuote", mock.Anything, "tok", int64(7)).
		Return(&models.CancelQuote{Eligible: false, Message: "Cancellation window closed"}, nil)
	up.On("GetCancelQuote", mock.Anything, "tok", int64(8)).
		Return(&models.CancelQuote{Eligible: true, RefundPercent: 100, RefundAmount: 499}, nil)
	up.On("ConfirmCancel", mock.Anything, "tok", int64(8)).
		Return(&models.CancelConfirmation{Message: "Booking cancelled successfully"}, nil)

	_, err := svc.ConfirmCancel(context.Background(), sess, 7)
	var ve *booking.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Cancellation window closed", ve.Message)
	up.AssertNotCalled(t, "ConfirmCancel", mock.Anything, "tok", int64(7))

	conf, err := svc.ConfirmCancel(context.Background(), sess, 8)
	require.NoError(t, err)
	assert.Equal(t, "Booking cancelled successfully", conf.Message)
}

func TestRewards(t *testing.T) {
	up := new(mocks.MockUpstream)
	svc, _, _ := newBookingService(up)
	premium := futureBooking(1, "Premium")
	premium.WaterOption = "self-drive"
	up.On("ListBookingsByPhone", mock.Anything, "tok", sess.Phone).Return([]models.Booking{premium, futureBooking(2, "Foam")}, nil)

	summary, err := svc.Rewards(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, 390, summary.TotalDrops)
	require.NotNil(t, summary.Tier)
	assert.Equal(t, "Car Keychain", summary.Tier.Product)
	assert.Equal(t, "Car Seat Cover", summary.NextTier.Product)
	assert.Len(t, summary.Orders, 2)
}
