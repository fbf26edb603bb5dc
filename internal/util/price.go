package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PriceSymbol is appended to every formatted price.
const PriceSymbol = "$"

// FormatPrice renders an amount as "1 234.50 $": two decimals, thousands grouped by spaces.
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	b.WriteByte(' ')
	b.WriteString(PriceSymbol)

	return b.String()
}
