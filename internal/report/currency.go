package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a dollar amount for display. Values of a thousand or
// more round to whole dollars with thousands separators; smaller values keep
// two decimal places. Negative amounts carry a leading minus before the
// currency sign: FormatAmount(-1500) == "-$1,500".
func FormatAmount(v float64) string {
	sign := ""
	abs := v
	if v < 0 {
		sign = "-"
		abs = -v
	}

	if abs >= 1000 {
		whole := strconv.FormatFloat(math.Round(abs), 'f', 0, 64)
		return sign + "$" + groupThousands(whole)
	}
	return sign + "$" + fmt.Sprintf("%.2f", abs)
}

// ParseAmount parses a raw report cell value. It tolerates currency signs,
// thousands separators and surrounding whitespace, and treats parenthesized
// values as negative (the QuickBooks convention). Empty or unparsable input
// returns (0, false).
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// groupThousands inserts commas into a non-negative integer string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
