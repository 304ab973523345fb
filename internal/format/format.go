// Package format renders amounts and dates the way donation documents print them.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale used for every amount printed on receipts and reports.
var Locale = language.MustParse("en-IN")

const (
	RupeeSymbol  = "₹"
	NotAvailable = "N/A"

	LongDate  = "2 January 2006"
	ShortDate = "02/01/2006"
)

var printer = message.NewPrinter(Locale)

// Number formats v with locale grouping and exactly two decimals ("1,234.50").
func Number(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// Currency prefixes Number with the rupee symbol ("₹ 1,234.50").
func Currency(v float64) string {
	return RupeeSymbol + " " + Number(v)
}

// CurrencyPtr treats a nil amount as zero.
func CurrencyPtr(v *float64) string {
	if v == nil {
		return Currency(0)
	}
	return Currency(*v)
}

// Count formats an integer with locale grouping.
func Count(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

// Date formats t with layout, or returns "N/A" for the zero time.
func Date(t time.Time, layout string) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Format(layout)
}

// Or returns the first non-empty value, falling back to "N/A".
func Or(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return NotAvailable
}
