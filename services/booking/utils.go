package booking

import (
	"strings"
	"time"

	"aspcare/models"
	"aspcare/utils"
)

func containsWashType(ws []WashType, w WashType) bool {
	for _, x := range ws {
		if x == w {
			return true
		}
	}
	return false
}

// formatSchedule renders "18-JAN-2026, 07:00-08:00".
func formatSchedule(date, slot string) string {
	date, slot = strings.TrimSpace(date), strings.TrimSpace(slot)
	if date == "" || slot == "" {
		return string(StatusUnscheduled)
	}
	if len(date) > 10 {
		date = date[:10]
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date + ", " + slot
	}
	return strings.ToUpper(d.Format("02-Jan-2006")) + ", " + slot
}

func buildOrderView(b models.Booking, now time.Time, defaultCurrency string) models.OrderView {
	upgradeStatus := b.UpgradeStatus
	if b.Upgraded() {
		upgradeStatus = "upgraded"
	}
	info := DeriveDisplayStatus(b.BookingDate, b.TimeSlot, b.Status, upgradeStatus, now)

	label := string(info.Status)
	if info.Status == StatusScheduled {
		label = "Scheduled: " + b.TimeSlot
	}
	currency := b.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return models.OrderView{
		Booking:         b,
		DisplayStatus:   string(info.Status),
		StatusLabel:     label,
		Schedule:        formatSchedule(b.BookingDate, b.TimeSlot),
		UpgradeTargets:  washTypeNames(UpgradeTargets(b, now)),
		Drops:           BookingDrops(b, now),
		PayableDisplay:  utils.FormatAmount(b.PayableAmount, currency),
		OriginalDisplay: utils.FormatAmount(b.OriginalAmount, currency),
	}
}

func checkoutView(st *models.CheckoutState) *models.CheckoutView {
	b := BreakdownOf(st)
	return &models.CheckoutView{
		Request:   st.Request,
		Currency:  st.Currency,
		Breakdown: b,
		Display: models.BreakdownDisplay{
			SubTotal:           utils.FormatAmount(b.SubTotal, st.Currency),
			MembershipDiscount: utils.FormatAmount(b.MembershipDiscount, st.Currency),
			SignupBonus:        utils.FormatAmount(b.SignupBonus, st.Currency),
			PromoDiscount:      utils.FormatAmount(b.PromoDiscount, st.Currency),
			GrandTotal:         utils.FormatAmount(b.GrandTotal, st.Currency),
			Savings:            utils.FormatAmount(b.Savings, st.Currency),
		},
		Promo: models.PromoView{
			Code:    st.PromoCode,
			Applied: st.PromoApplied,
			Message: st.PromoMessage,
		},
	}
}
