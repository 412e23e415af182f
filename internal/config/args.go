package config

import (
	"fmt"
	"math"
	"strconv"
)

// ParseNonNegative parses a decimal count made of ASCII digits only.
// Signs, spaces and any other characters are rejected. Values too large for
// an int saturate at math.MaxInt so callers can clamp them.
func ParseNonNegative(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid number %q: only digits allowed", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt, nil
	}
	return n, nil
}
