package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayLocale = language.MustParse("en-IN")

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatAmount renders an amount for display in the en-IN locale, e.g. "₹1,299.00".
// Unknown currency codes fall back to "<currency> <amount>".
func FormatAmount(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", code, FormatMoney(amount))
	}

	p := message.NewPrinter(displayLocale)
	symbol := p.Sprint(currency.Symbol(unit))
	digits := p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
	return symbol + digits
}
