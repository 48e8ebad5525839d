package booking

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"aspcare/models"
	"aspcare/services/remote"
	"aspcare/utils"

	"go.uber.org/zap"
)

// Referral coupon terms.
const (
	referralDiscountType  = "FLAT"
	referralDiscountValue = 20
	referralMaxUses       = 5
	referralValidDays     = 30
	referralMinOrder      = 100
)

// ReferralShareText is the message shared along with a referral coupon.
func ReferralShareText(code string) string {
	return fmt.Sprintf("Hey! I'm using ASP Car Care.\n\n"+
		"Use my coupon code *%s* to get ₹%d discount\n"+
		"(Apply coupon at checkout)", code, referralDiscountValue)
}

func (s *DefaultDirectoryService) currency() string {
	if s.Currency == "" {
		return utils.DefaultCurrency
	}
	return s.Currency
}

func (s *DefaultDirectoryService) GenerateReferral(ctx context.Context, sess *models.Session) (*models.Coupon, error) {
	if sess.Phone == "" {
		return nil, ErrPhoneRequired
	}
	coupon, err := s.Upstream.GenerateCoupon(ctx, sess.UpstreamToken, models.CouponGenerateRequest{
		CreatedByPhone: sess.Phone,
		DiscountType:   referralDiscountType,
		DiscountValue:  referralDiscountValue,
		MaxUses:        referralMaxUses,
		ValidDays:      referralValidDays,
		MinOrderAmount: referralMinOrder,
	})
	if err != nil {
		return nil, err
	}
	coupon.ShareText = ReferralShareText(coupon.CouponCode)
	return coupon, nil
}

func (s *DefaultDirectoryService) ReferralDetails(ctx context.Context, sess *models.Session) (*models.ReferralDetails, error) {
	if sess.Phone == "" {
		return nil, ErrPhoneRequired
	}
	details, err := s.Upstream.GetReferralDetails(ctx, sess.UpstreamToken, sess.Phone)
	if err != nil {
		if remote.IsNotFound(err) {
			return &models.ReferralDetails{Referrals: []models.Referral{}}, nil
		}
		return nil, err
	}
	return details, nil
}

func (s *DefaultDirectoryService) Areas(ctx context.Context, sess *models.Session) ([]string, error) {
	areas, err := s.Upstream.ListAreas(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, err
	}
	if areas == nil {
		areas = []string{}
	}
	return areas, nil
}

func (s *DefaultDirectoryService) SearchCentres(ctx context.Context, sess *models.Session, area string) ([]models.Centre, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return nil, NewValidationError("area", "Please select an area")
	}
	centres, err := s.Upstream.SearchCentres(ctx, sess.UpstreamToken, area)
	if err != nil {
		if remote.IsNotFound(err) {
			return []models.Centre{}, nil
		}
		return nil, err
	}
	if centres == nil {
		centres = []models.Centre{}
	}
	return centres, nil
}

func parseDealPrice(n fmt.Stringer) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(n.String()), 64)
	if err != nil {
		return 0
	}
	return f
}

// DealDiscountPercent is the whole-number discount of discounted against original.
func DealDiscountPercent(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((original - discounted) / original * 100))
}

// DealViewOf derives the display fields of a deal.
func DealViewOf(d models.Deal, currency string) models.DealView {
	original := parseDealPrice(d.DealActualPrice)
	discounted := parseDealPrice(d.DealFinalPrice)
	return models.DealView{
		ID:                d.ID,
		WashType:          d.DealWashType,
		ServiceType:       d.DealServiceType,
		OriginalPrice:     original,
		DiscountedPrice:   discounted,
		DiscountPercent:   DealDiscountPercent(original, discounted),
		WaterRequired:     d.DealWaterProviding == "Y",
		OriginalDisplay:   utils.FormatAmount(original, currency),
		DiscountedDisplay: utils.FormatAmount(discounted, currency),
	}
}

// Deals lists deals whose wash type contains query (case-insensitive; empty matches all).
func (s *DefaultDirectoryService) Deals(ctx context.Context, sess *models.Session, query string) ([]models.DealView, error) {
	deals, err := s.Upstream.ListDeals(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	views := make([]models.DealView, 0, len(deals))
	for _, d := range deals {
		if query != "" && !strings.Contains(strings.ToLower(d.DealWashType), query) {
			continue
		}
		views = append(views, DealViewOf(d, s.currency()))
	}
	return views, nil
}

// localGreeting is used when the greeting service is unavailable.
func localGreeting(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// Profile collects the greeting, total drops and active membership. Only the
// booking history is required; the other lookups degrade.
func (s *DefaultDirectoryService) Profile(ctx context.Context, sess *models.Session) (*models.Profile, error) {
	if sess.Phone == "" {
		return nil, ErrPhoneRequired
	}
	now := s.Clock.Now()
	profile := &models.Profile{
		Phone:     sess.Phone,
		FirstName: sess.FirstName,
		Greeting:  localGreeting(now.Hour()),
	}

	if g, err := s.Upstream.GetGreeting(ctx, sess.UpstreamToken, sess.Phone); err != nil {
		if remote.IsCancelled(err) {
			return nil, err
		}
		s.Logger.Debug("greeting lookup failed", zap.Error(err))
	} else {
		if g.Greeting != "" {
			profile.Greeting = g.Greeting
		}
		if g.FirstName != "" {
			profile.FirstName = g.FirstName
		}
	}

	bookings, err := s.Upstream.ListBookingsByPhone(ctx, sess.UpstreamToken, sess.Phone)
	if err != nil && !remote.IsNotFound(err) {
		return nil, err
	}
	profile.TotalDrops = TotalDrops(bookings, now)

	if m, err := s.Upstream.GetActiveMembership(ctx, sess.UpstreamToken, sess.Phone); err == nil {
		profile.Membership = m
	} else if !remote.IsNotFound(err) {
		s.Logger.Debug("membership lookup failed", zap.Error(err))
	}
	return profile, nil
}
