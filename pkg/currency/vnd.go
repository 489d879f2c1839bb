// Package currency renders booking amounts for display. Prices are
// whole Vietnamese dong end to end, so formatting is digit grouping
// plus the dong sign, using the vi locale conventions guests expect.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount in dong with Vietnamese digit grouping,
// e.g. 150000 becomes "150.000 ₫".
func FormatVND(amount int64) string {
	return printer.Sprintf("%d ₫", amount)
}
