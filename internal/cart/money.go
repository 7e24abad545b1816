package cart

import (
	"math/big"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shopgrip/internal/domain"
)

var printer = message.NewPrinter(language.English)

// hasAmount reports whether m carries a non-blank amount
func hasAmount(m *domain.Money) bool {
	return m != nil && strings.TrimSpace(m.Amount) != ""
}

// FormatMoney renders an amount with its narrow currency symbol, rounded to
// the currency's standard scale. Amounts that do not parse, or carry an
// unknown currency, are shown as given.
func FormatMoney(m *domain.Money) string {
	if m == nil {
		return ""
	}
	raw := strings.TrimSpace(m.Amount)
	asGiven := strings.TrimSpace(raw + " " + m.CurrencyCode)

	unit, err := currency.ParseISO(m.CurrencyCode)
	if err != nil {
		return asGiven
	}
	amount, ok := new(big.Rat).SetString(raw)
	if !ok || strings.Contains(raw, "/") {
		return asGiven
	}

	scale, _ := currency.Standard.Rounding(unit)
	digits := amount.FloatString(scale)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	return sign + printer.Sprint(currency.NarrowSymbol(unit)) + groupThousands(digits)
}

// groupThousands inserts commas into the integer part of a plain decimal
func groupThousands(digits string) string {
	whole, frac, hasFrac := strings.Cut(digits, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
