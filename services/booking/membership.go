package booking

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"aspcare/models"
	"aspcare/services/remote"
	"aspcare/utils"

	"go.uber.org/zap"
)

// Purchase modes understood by POST /memberships.
const (
	PurchaseNew     = "NEW"
	PurchaseUpgrade = "UPGRADE"
)

var membershipPlans = []models.MembershipPlan{
	{
		Code:            "BASIC",
		Name:            "Basic",
		Subtitle:        "Perfect if you wash twice a month",
		Price:           499,
		DiscountPercent: 10,
		Features: []string{
			"1 booking free – Foam (Exterior)",
			"10% discount on every wash for next 2 months",
			"Air check",
		},
	},
	{
		Code:            "PREMIUM",
		Name:            "Premium",
		Subtitle:        "For regular care and extra savings",
		Price:           799,
		DiscountPercent: 10,
		MostPopular:     true,
		Features: []string{
			"First 2 bookings free – Foam (Exterior)",
			"10% discount on every wash for next 3 months",
			"Wheel polish",
			"Air check",
		},
	},
	{
		Code:            "ULTRA",
		Name:            "Ultra",
		Subtitle:        "Max benefits for frequent washers",
		Price:           1599,
		DiscountPercent: 15,
		Features: []string{
			"1 Premium wash free",
			"Next 2 bookings free – Foam (Exterior)",
			"15% discount on every wash for next 6 months",
			"Wheel polish",
			"Air check",
			"Premium service checks",
		},
	},
}

var planUpgrades = map[string][]string{
	"BASIC":   {"PREMIUM", "ULTRA"},
	"PREMIUM": {"ULTRA"},
}

// MembershipPlans returns the plan catalogue.
func MembershipPlans() []models.MembershipPlan {
	return append([]models.MembershipPlan(nil), membershipPlans...)
}

// PlanByCode looks a plan up case-insensitively.
func PlanByCode(code string) (models.MembershipPlan, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, p := range membershipPlans {
		if p.Code == code {
			return p, true
		}
	}
	return models.MembershipPlan{}, false
}

// CanUpgradePlan reports whether current may be upgraded to target.
func CanUpgradePlan(current, target string) bool {
	current = strings.ToUpper(strings.TrimSpace(current))
	target = strings.ToUpper(strings.TrimSpace(target))
	for _, t := range planUpgrades[current] {
		if t == target {
			return true
		}
	}
	return false
}

// activePrice is what the active membership was bought for, falling back to its catalogue price.
func activePrice(m *models.Membership) float64 {
	if m.Price > 0 {
		return m.Price
	}
	if p, ok := PlanByCode(m.PlanCode); ok {
		return p.Price
	}
	return 0
}

// BuildMembershipRequest prices a purchase of target given the active membership (nil when none).
func BuildMembershipRequest(phone string, target models.MembershipPlan, active *models.Membership) (models.MembershipRequest, error) {
	req := models.MembershipRequest{
		Phone:             phone,
		PlanCode:          target.Code,
		PlanName:          target.Name,
		OriginalPlanPrice: target.Price,
		PaidAmount:        target.Price,
		PurchaseMode:      PurchaseNew,
	}
	if active == nil {
		return req, nil
	}

	if strings.EqualFold(active.PlanCode, target.Code) {
		return req, NewValidationError("planCode", "You already have this plan")
	}
	if !CanUpgradePlan(active.PlanCode, target.Code) {
		return req, NewValidationError("planCode", fmt.Sprintf("%s cannot be changed to %s", active.PlanCode, target.Code))
	}

	diff := math.Max(0, target.Price-activePrice(active))
	sourceID := active.ID
	req.PurchaseMode = PurchaseUpgrade
	req.SourceMembershipDbID = &sourceID
	req.PreviousPlanCode = strings.ToUpper(active.PlanCode)
	req.UpgradeDifferenceAmount = &diff
	req.PaidAmount = diff
	return req, nil
}

func (s *DefaultMembershipService) currency() string {
	if s.Currency == "" {
		return utils.DefaultCurrency
	}
	return s.Currency
}

// active returns the active membership or nil when the server has none.
func (s *DefaultMembershipService) active(ctx context.Context, sess *models.Session) (*models.Membership, error) {
	if sess.Phone == "" {
		return nil, ErrPhoneRequired
	}
	m, err := s.Upstream.GetActiveMembership(ctx, sess.UpstreamToken, sess.Phone)
	if err != nil {
		if remote.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// ActiveMembership returns remote.ErrNotFound when the session has no active membership.
func (s *DefaultMembershipService) ActiveMembership(ctx context.Context, sess *models.Session) (*models.Membership, error) {
	m, err := s.active(ctx, sess)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("active membership: %w", remote.ErrNotFound)
	}
	return m, nil
}

// MembershipHistory lists every membership, newest first.
func (s *DefaultMembershipService) MembershipHistory(ctx context.Context, sess *models.Session) ([]models.Membership, error) {
	if sess.Phone == "" {
		return nil, ErrPhoneRequired
	}
	list, err := s.Upstream.ListMemberships(ctx, sess.UpstreamToken, sess.Phone)
	if err != nil {
		if remote.IsNotFound(err) {
			return []models.Membership{}, nil
		}
		return nil, err
	}
	SortNewestFirst(list)
	return list, nil
}

var membershipTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func parseCreatedAt(v string) time.Time {
	for _, layout := range membershipTimeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortNewestFirst orders memberships by createdAt descending; unparsable dates sort last.
func SortNewestFirst(list []models.Membership) {
	sort.SliceStable(list, func(i, j int) bool {
		return parseCreatedAt(list[i].CreatedAt).After(parseCreatedAt(list[j].CreatedAt))
	})
}

func (s *DefaultMembershipService) Plans(ctx context.Context, sess *models.Session) ([]models.PlanView, error) {
	var active *models.Membership
	if sess.Phone != "" {
		m, err := s.active(ctx, sess)
		if err != nil {
			if remote.IsCancelled(err) {
				return nil, err
			}
			s.Logger.Warn("membership lookup failed, showing plans without upgrade state", zap.Error(err))
		}
		active = m
	}

	views := make([]models.PlanView, 0, len(membershipPlans))
	for _, p := range membershipPlans {
		v := models.PlanView{
			MembershipPlan: p,
			PriceDisplay:   utils.FormatAmount(p.Price, s.currency()),
			PayNow:         p.Price,
		}
		if active != nil {
			v.Current = strings.EqualFold(active.PlanCode, p.Code)
			v.Upgradeable = CanUpgradePlan(active.PlanCode, p.Code)
			if v.Upgradeable {
				v.PayNow = math.Max(0, p.Price-activePrice(active))
			}
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *DefaultMembershipService) PurchaseMembership(ctx context.Context, sess *models.Session, planCode string) (*models.MembershipPurchase, error) {
	plan, ok := PlanByCode(planCode)
	if !ok {
		return nil, NewValidationError("planCode", "Unknown membership plan")
	}
	active, err := s.active(ctx, sess)
	if err != nil {
		return nil, err
	}
	req, err := BuildMembershipRequest(sess.Phone, plan, active)
	if err != nil {
		return nil, err
	}

	created, err := s.Upstream.CreateMembership(ctx, sess.UpstreamToken, req)
	if err != nil {
		return nil, err
	}
	purchase := &models.MembershipPurchase{
		Membership: *created,
		Mode:       req.PurchaseMode,
		PaidAmount: req.PaidAmount,
		Activated:  strings.EqualFold(created.Status, "ACTIVE"),
	}

	if strings.EqualFold(created.Status, "HOLD") {
		activated, err := s.Upstream.ActivateMembership(ctx, sess.UpstreamToken, created.ID)
		if err != nil {
			s.Logger.Warn("membership activation failed",
				zap.Int64("membership", created.ID),
				zap.Error(err))
		} else {
			purchase.Activated = true
			if activated != nil {
				purchase.Membership = *activated
			} else {
				purchase.Membership.Status = "ACTIVE"
			}
		}
	}

	if s.Payments != nil && req.PaidAmount > 0 {
		intent, err := s.Payments.Create(ctx, models.PaymentRequest{
			Amount:      req.PaidAmount,
			Currency:    s.currency(),
			Description: fmt.Sprintf("%s membership (%s)", plan.Name, strings.ToLower(req.PurchaseMode)),
			Idempotency: fmt.Sprintf("membership:%d", created.ID),
			Metadata: map[string]string{
				"phone":        sess.Phone,
				"planCode":     plan.Code,
				"purchaseMode": req.PurchaseMode,
				"membershipId": fmt.Sprintf("%d", created.ID),
			},
		})
		if err != nil {
			s.Logger.Warn("membership payment intent failed", zap.Int64("membership", created.ID), zap.Error(err))
		} else {
			intent.Display = utils.FormatAmount(req.PaidAmount, s.currency())
			purchase.Payment = intent
		}
	}

	s.Logger.Info("Membership purchased",
		zap.String("plan", plan.Code),
		zap.String("mode", req.PurchaseMode),
		zap.Float64("paid", req.PaidAmount))
	return purchase, nil
}
