package utils

import (
	"fmt"
	"strconv"
)

// FormatCLP renders an amount the way the ledger sheet expects it,
// es-CL style with dot thousand separators: 1531000 -> "$1.531.000 CLP".
// CLP has no minor unit; fractions are truncated.
func FormatCLP(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(int64(amount), 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s CLP", sign, grouped)
}
