package reporting

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inr prints with Indian digit grouping: groups of two after the first
// group of three, e.g. 12,34,567. Fixed policy, never the ambient locale.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a rupee amount for display, rounded to whole rupees:
// FormatINR(123456) == "₹1,23,456". Amounts in this domain are whole-unit;
// fractions only appear transiently from arithmetic and are rounded away.
func FormatINR(amount float64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
