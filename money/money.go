// Package money formats monetary amounts for display on invoices using the
// Indian digit grouping convention.
package money

import (
	"strconv"
	"strings"
)

// Format renders an amount in rupees with exactly two decimal places and
// Indian grouping: the last three integer digits form one group, every group
// before it has two digits.
//
//	Format(1234567) == "Rs. 12,34,567.00"
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	// NaN and the infinities format without a decimal point.
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return "Rs. " + sign + s
	}
	intPart, fracPart := s[:dot], s[dot:]

	return "Rs. " + sign + group(intPart) + fracPart
}

// group inserts Indian-convention separators into a string of digits.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := digits[:n-3]
	// Two-digit groups, working from the left; the first group may be shorter.
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(digits[n-3:])
	return b.String()
}
