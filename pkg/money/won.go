// Package money formatea montos en wones con la convención ko-KR.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// maxFraction dígitos decimales visibles como máximo (el IVA puede no ser entero).
const maxFraction = 3

// FormatNumber separa miles con coma: 2376000 → "2,376,000", 1.5 → "1.5".
func FormatNumber(d decimal.Decimal) string {
	r := d.Round(maxFraction)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	whole := r.Truncate(0)
	out := sign + printer.Sprintf("%d", whole.IntPart())
	if frac := r.Sub(whole); !frac.IsZero() {
		out += strings.TrimPrefix(frac.String(), "0")
	}
	return out
}

// FormatWon FormatNumber con el sufijo 원.
func FormatWon(d decimal.Decimal) string {
	return FormatNumber(d) + "원"
}
