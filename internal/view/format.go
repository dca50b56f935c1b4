// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"strconv"
	"strings"
)

// notAvailable is the display value for metrics that have no defined value
// on an empty record set.
const notAvailable = "n/a"

// comma formats n with thousands separators.
func comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func f3(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func signed3(v float64) string {
	return fmt.Sprintf("%+.3f", v)
}
