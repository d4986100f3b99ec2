// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a dollar amount, dropping cents once values get large.
// e.g., 1234567.89 -> "$1,234,568", 45.5 -> "$45.50"
func FormatMoney(amount float64) string {
	neg := amount < 0
	abs := math.Abs(amount)

	var s string
	if abs >= 1000 {
		s = "$" + FormatNumber(int64(math.Round(abs)))
	} else {
		s = fmt.Sprintf("$%.2f", abs)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value (already on the 0-100 scale).
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDays renders a signed days-remaining value. Negative means the
// period already ended.
func FormatDays(days int) string {
	if days < 0 {
		return fmt.Sprintf("ended %dd ago", -days)
	}
	return fmt.Sprintf("%dd left", days)
}

// FormatDate renders a date in the compact form used throughout the tables.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDelta formats a money difference with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}

// FormatMonth renders a month bucket as "Jan 06".
func FormatMonth(t time.Time) string {
	return t.Format("Jan 06")
}
