// Package money formats minor-unit (cent) amounts for display.
// Amounts are stored as int64 cents everywhere; floating point is never
// used for stored monetary values.
package money

import (
	"fmt"
	"strings"
)

// FormatCents renders an amount in cents as an Indian-formatted rupee
// string, e.g. 123456789 -> "₹12,34,567.89". Negative amounts keep the
// sign ahead of the currency symbol.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	rupees := cents / 100
	paise := cents % 100
	return fmt.Sprintf("%s₹%s.%02d", sign, groupIndian(rupees), paise)
}

// groupIndian applies en-IN digit grouping: the last three digits form one
// group, every two digits after that form another (12,34,567).
func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
