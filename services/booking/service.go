package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aspcare/models"
	"aspcare/services/remote"
	"aspcare/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) QuoteRate(ctx context.Context, sess *models.Session, sel models.RateSelection) (*models.RateQuote, error) {
	return s.Rates.Resolve(ctx, sess.ID, sess.UpstreamToken, sel)
}

func (s *DefaultBookingService) ResolveSlots(ctx context.Context, sess *models.Session, date, serviceType string) (*models.SlotBoard, error) {
	st, ok := NormalizeServiceType(serviceType)
	if !ok {
		return nil, NewValidationError("serviceType", "Unknown service type")
	}
	if err := ValidateBookingDate(date, s.Clock.Now()); err != nil {
		return nil, err
	}
	return s.slotBoard(ctx, sess, strings.TrimSpace(date), st)
}

// slotBoard resolves availability; any upstream failure other than cancellation
// falls back to every slot being open.
func (s *DefaultBookingService) slotBoard(ctx context.Context, sess *models.Session, date, serviceType string) (*models.SlotBoard, error) {
	availability, err := s.Upstream.GetAvailability(ctx, sess.UpstreamToken, date, serviceType)
	if err != nil {
		if remote.IsCancelled(err) {
			return nil, err
		}
		s.Logger.Warn("availability lookup failed, offering all slots",
			zap.String("date", date),
			zap.String("serviceType", serviceType),
			zap.Error(err))
		availability = nil
	}
	if unknown := UnknownSlotKeys(availability); len(unknown) > 0 {
		s.Logger.Warn("availability contains unknown slots", zap.Strings("slots", unknown))
	}

	slots, fallback := ResolveSlots(availability)
	return &models.SlotBoard{
		Date:        date,
		ServiceType: serviceType,
		Slots:       slots,
		Fallback:    fallback,
	}, nil
}

func (s *DefaultBookingService) StartCheckout(ctx context.Context, sess *models.Session, req models.CheckoutRequest) (*models.CheckoutView, error) {
	now := s.Clock.Now()
	if err := ValidateVehicleNumber(req.VehicleNumber); err != nil {
		return nil, err
	}
	vehicleType, ok := NormalizeVehicleType(req.VehicleType)
	if !ok {
		return nil, NewValidationError("vehicleType", "Please select a vehicle type")
	}
	washType, ok := ParseWashType(req.WashType)
	if !ok {
		return nil, NewValidationError("washType", "Please select a wash type")
	}
	serviceType, ok := NormalizeServiceType(req.ServiceType)
	if !ok {
		return nil, NewValidationError("serviceType", "Unknown service type")
	}
	if NormalizeWaterOption(req.WaterOption) == WaterUnknown {
		return nil, NewValidationError("waterOption", "Unknown water option")
	}
	if err := ValidateBookingDate(req.BookingDate, now); err != nil {
		return nil, err
	}
	if err := ValidateTimeSlot(req.TimeSlot); err != nil {
		return nil, err
	}

	req.VehicleType = vehicleType
	req.VehicleNumber = strings.ToUpper(strings.TrimSpace(req.VehicleNumber))
	req.WashType = string(washType)
	req.ServiceType = serviceType
	req.BookingDate = strings.TrimSpace(req.BookingDate)

	board, err := s.slotBoard(ctx, sess, req.BookingDate, serviceType)
	if err != nil {
		return nil, err
	}
	var selection SlotSelection
	selection.ChangeDate(req.BookingDate, board.Slots)
	if err := selection.Select(req.TimeSlot); err != nil {
		return nil, err
	}

	rate, err := s.Upstream.GetRate(ctx, sess.UpstreamToken, vehicleType, washType.Level())
	if err != nil {
		if remote.IsNotFound(err) {
			return nil, NewValidationError("washType", "Rate not found")
		}
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(rate.Currency))
	if currency == "" {
		currency = s.currency()
	}

	st := &models.CheckoutState{
		SessionID:                 sess.ID,
		Phone:                     sess.Phone,
		Request:                   req,
		SubTotal:                  FinalPrice(rate.Amount, req.WaterOption),
		Currency:                  currency,
		MembershipDiscountPercent: s.membershipPercent(ctx, sess),
		SignupBonus:               SignupBonusFor(s.historyCheck(ctx, sess)),
		CreatedAt:                 now,
	}
	if err := s.Checkouts.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save checkout: %w", err)
	}

	s.Logger.Info("Checkout started",
		zap.String("session", sess.ID),
		zap.String("washType", req.WashType),
		zap.Float64("subTotal", st.SubTotal))
	return checkoutView(st), nil
}

// membershipPercent is the ACTIVE membership's discount; absent or unreadable memberships give 0.
func (s *DefaultBookingService) membershipPercent(ctx context.Context, sess *models.Session) float64 {
	if sess.Phone == "" {
		return 0
	}
	m, err := s.Upstream.GetActiveMembership(ctx, sess.UpstreamToken, sess.Phone)
	if err != nil {
		if !remote.IsNotFound(err) {
			s.Logger.Warn("membership lookup failed, no membership discount", zap.Error(err))
		}
		return 0
	}
	if !strings.EqualFold(m.Status, "ACTIVE") || m.DiscountPercent < 0 {
		return 0
	}
	return m.DiscountPercent
}

func (s *DefaultBookingService) historyCheck(ctx context.Context, sess *models.Session) HistoryCheck {
	if sess.Phone == "" {
		return HistoryUnknown
	}
	exists, err := s.Upstream.HasBookings(ctx, sess.UpstreamToken, sess.Phone)
	if err != nil {
		if remote.IsNotFound(err) {
			return HistoryEmpty
		}
		s.Logger.Warn("booking history lookup failed, granting signup bonus", zap.Error(err))
		return HistoryUnknown
	}
	if exists {
		return HistoryExists
	}
	return HistoryEmpty
}

func (s *DefaultBookingService) loadCheckout(ctx context.Context, sess *models.Session) (*models.CheckoutState, error) {
	st, err := s.Checkouts.Get(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout: %w", err)
	}
	if st == nil {
		return nil, ErrCheckoutNotFound
	}
	return st, nil
}

func (s *DefaultBookingService) GetCheckout(ctx context.Context, sess *models.Session) (*models.CheckoutView, error) {
	st, err := s.loadCheckout(ctx, sess)
	if err != nil {
		return nil, err
	}
	return checkoutView(st), nil
}

func (s *DefaultBookingService) ApplyPromo(ctx context.Context, sess *models.Session, code string) (*models.CheckoutView, error) {
	st, err := s.loadCheckout(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := ApplyPromo(ctx, s.Upstream, sess.UpstreamToken, st, code); err != nil {
		return nil, err
	}
	if err := s.Checkouts.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save checkout: %w", err)
	}
	return checkoutView(st), nil
}

func (s *DefaultBookingService) RemovePromo(ctx context.Context, sess *models.Session) (*models.CheckoutView, error) {
	st, err := s.loadCheckout(ctx, sess)
	if err != nil {
		return nil, err
	}
	RemovePromo(st)
	if err := s.Checkouts.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save checkout: %w", err)
	}
	return checkoutView(st), nil
}

func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, sess *models.Session) (*models.PaymentIntent, error) {
	st, err := s.loadCheckout(ctx, sess)
	if err != nil {
		return nil, err
	}
	b := BreakdownOf(st)

	intent, err := s.Payments.Create(ctx, models.PaymentRequest{
		Amount:      b.GrandTotal,
		Currency:    st.Currency,
		Description: fmt.Sprintf("%s wash, %s %s", st.Request.WashType, st.Request.BookingDate, st.Request.TimeSlot),
		Idempotency: fmt.Sprintf("checkout:%s:%d:%.2f", st.SessionID, st.CreatedAt.Unix(), b.GrandTotal),
		Metadata: map[string]string{
			"phone":       st.Phone,
			"vehicleType": st.Request.VehicleType,
			"washType":    st.Request.WashType,
			"bookingDate": st.Request.BookingDate,
			"timeSlot":    st.Request.TimeSlot,
			"promoCode":   st.PromoCode,
		},
	})
	if err != nil {
		return nil, err
	}
	intent.Amount = b.GrandTotal
	intent.Currency = st.Currency
	intent.Display = utils.FormatAmount(b.GrandTotal, st.Currency)
	return intent, nil
}

// history lists the session's bookings; a 404 is an empty history.
func (s *DefaultBookingService) history(ctx context.Context, sess *models.Session) ([]models.Booking, error) {
	if sess.Phone == "" {
		return nil, ErrPhoneRequired
	}
	bookings, err := s.Upstream.ListBookingsByPhone(ctx, sess.UpstreamToken, sess.Phone)
	if err != nil {
		if remote.IsNotFound(err) {
			return []models.Booking{}, nil
		}
		return nil, err
	}
	return bookings, nil
}

func (s *DefaultBookingService) findBooking(ctx context.Context, sess *models.Session, id int64) (models.Booking, error) {
	bookings, err := s.history(ctx, sess)
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, fmt.Errorf("booking %d: %w", id, remote.ErrNotFound)
}

func (s *DefaultBookingService) ListOrders(ctx context.Context, sess *models.Session) ([]models.OrderView, error) {
	bookings, err := s.history(ctx, sess)
	if err != nil {
		return nil, err
	}
	now := s.Clock.Now()
	views := make([]models.OrderView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, s.orderView(b, now))
	}
	return views, nil
}

func (s *DefaultBookingService) GetOrder(ctx context.Context, sess *models.Session, id int64) (*models.OrderView, error) {
	b, err := s.findBooking(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	view := s.orderView(b, s.Clock.Now())
	return &view, nil
}

// FindUpgradeable returns the first upgrade-eligible order, or nil when there is none.
func (s *DefaultBookingService) FindUpgradeable(ctx context.Context, sess *models.Session) (*models.OrderView, error) {
	bookings, err := s.history(ctx, sess)
	if err != nil {
		return nil, err
	}
	now := s.Clock.Now()
	b, ok := FirstUpgradeable(bookings, now)
	if !ok {
		return nil, nil
	}
	view := s.orderView(b, now)
	return &view, nil
}

func (s *DefaultBookingService) Reschedule(ctx context.Context, sess *models.Session, id int64, req models.RescheduleRequest) (*models.OrderView, error) {
	now := s.Clock.Now()
	req.BookingDate = strings.TrimSpace(req.BookingDate)
	req.RescheduledReason = strings.TrimSpace(req.RescheduledReason)
	if err := ValidateReschedule(req, now); err != nil {
		return nil, err
	}

	b, err := s.findBooking(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if DeriveDisplayStatus(b.BookingDate, b.TimeSlot, b.Status, b.UpgradeStatus, now).Status == StatusCancelled {
		return nil, NewValidationError("status", "A cancelled booking cannot be rescheduled")
	}

	serviceType, _ := NormalizeServiceType(b.ServiceType)
	board, err := s.slotBoard(ctx, sess, req.BookingDate, serviceType)
	if err != nil {
		return nil, err
	}
	var selection SlotSelection
	selection.ChangeDate(req.BookingDate, board.Slots)
	if err := selection.Select(req.TimeSlot); err != nil {
		return nil, err
	}

	updated, err := s.Upstream.RescheduleBooking(ctx, sess.UpstreamToken, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		b.BookingDate = req.BookingDate
		b.TimeSlot = req.TimeSlot
		b.RescheduledReason = req.RescheduledReason
		updated = &b
	}

	s.Logger.Info("Booking rescheduled",
		zap.Int64("booking", id),
		zap.String("date", req.BookingDate),
		zap.String("slot", req.TimeSlot))
	view := s.orderView(*updated, s.Clock.Now())
	return &view, nil
}

func (s *DefaultBookingService) Upgrade(ctx context.Context, sess *models.Session, id int64, washType string) (*models.OrderView, error) {
	if strings.TrimSpace(washType) == "" {
		return nil, NewValidationError("washType", "Please select a wash type to upgrade.")
	}
	b, err := s.findBooking(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	target, ok := ParseWashType(washType)
	targets := UpgradeTargets(b, s.Clock.Now())
	if !ok || !containsWashType(targets, target) {
		if len(targets) == 0 {
			return nil, NewValidationError("washType", "No upgrade available for this booking.")
		}
		return nil, NewValidationError("washType",
			fmt.Sprintf("This booking can be upgraded to %s", strings.Join(washTypeNames(targets), " or ")))
	}

	updated, err := s.Upstream.UpgradeBooking(ctx, sess.UpstreamToken, id, string(target))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		b.WashType = string(target)
		b.UpgradeStatus = "upgraded"
		updated = &b
	}

	s.Logger.Info("Booking upgraded", zap.Int64("booking", id), zap.String("washType", string(target)))
	view := s.orderView(*updated, s.Clock.Now())
	return &view, nil
}

func (s *DefaultBookingService) CancelQuote(ctx context.Context, sess *models.Session, id int64) (*models.CancelQuote, error) {
	if _, err := s.findBooking(ctx, sess, id); err != nil {
		return nil, err
	}
	return s.Upstream.GetCancelQuote(ctx, sess.UpstreamToken, id)
}

// ConfirmCancel re-reads the server's quote and refuses when it is not eligible.
func (s *DefaultBookingService) ConfirmCancel(ctx context.Context, sess *models.Session, id int64) (*models.CancelConfirmation, error) {
	quote, err := s.CancelQuote(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if !quote.Eligible {
		msg := quote.Message
		if msg == "" {
			msg = "This booking cannot be cancelled"
		}
		return nil, NewValidationError("booking", msg)
	}

	conf, err := s.Upstream.ConfirmCancel(ctx, sess.UpstreamToken, id)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking cancelled", zap.Int64("booking", id), zap.Float64("refund", quote.RefundAmount))
	return conf, nil
}

func (s *DefaultBookingService) Rewards(ctx context.Context, sess *models.Session) (*models.RewardsSummary, error) {
	bookings, err := s.history(ctx, sess)
	if err != nil {
		return nil, err
	}
	now := s.Clock.Now()

	summary := &models.RewardsSummary{
		Orders: make([]models.OrderDrops, 0, len(bookings)),
		Tiers:  RewardTiers(),
	}
	for _, b := range bookings {
		drops := BookingDrops(b, now)
		summary.TotalDrops += drops
		summary.Orders = append(summary.Orders, models.OrderDrops{
			BookingID: b.ID,
			WashType:  string(NormalizeWashType(b.WashLabel())),
			Drops:     drops,
		})
	}
	summary.Tier = RewardTierFor(summary.TotalDrops)
	summary.NextTier = NextRewardTier(summary.TotalDrops)
	return summary, nil
}

func (s *DefaultBookingService) currency() string {
	if s.Currency == "" {
		return utils.DefaultCurrency
	}
	return s.Currency
}

func (s *DefaultBookingService) orderView(b models.Booking, now time.Time) models.OrderView {
	return buildOrderView(b, now, s.currency())
}
