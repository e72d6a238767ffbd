package numeric

import (
	"errors"
	"strconv"
	"strings"
)

// Cast classifies a raw string as a whole number, a floating-point number,
// or plain text, and returns int, float64, or the original string
// accordingly.
//
// Strings containing a decimal point or exponent marker always become
// float64, regardless of magnitude. Whole-number strings are normalized
// (sign split off, leading zeros stripped) and range-checked against the
// platform int; on overflow the value falls back to a float64
// approximation rather than failing.
// Examples:
//   - "042" → int 42
//   - "1e3" → float64 1000
//   - "9223372036854775808" → float64 (one past the signed 64-bit max)
//   - "123abc" → string "123abc"
func Cast(s string) any {
	if !IsNumeric(s) {
		return s
	}

	trimmed := strings.TrimSpace(s)

	if strings.ContainsAny(trimmed, ".eE") {
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				// Out-of-range magnitudes saturate to ±Inf/0, same as a
				// native float literal would.
				return f
			}
			return s
		}
		return f
	}

	normalized := normalizeWhole(trimmed)
	if n, err := strconv.ParseInt(normalized, 10, strconv.IntSize); err == nil {
		return int(n)
	}

	// Exceeds the platform int range: approximate as float instead of
	// truncating or failing.
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return s
	}
	return f
}

// IsNumeric reports whether s denotes a number: optional surrounding
// whitespace, optional sign, a digit run with an optional fractional part
// (or a bare fractional part), and an optional e/E exponent with its own
// optional sign.
func IsNumeric(s string) bool {
	i, n := 0, len(s)

	for i < n && isSpace(s[i]) {
		i++
	}
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := 0
	for i < n && isDigit(s[i]) {
		i++
		intDigits++
	}

	fracDigits := 0
	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
			fracDigits++
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return false
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < n && isDigit(s[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}

	for i < n && isSpace(s[i]) {
		i++
	}

	return i == n
}

// normalizeWhole rewrites a whole-number string into its canonical form:
// sign preserved, leading zeros stripped, an all-zero digit run collapsed
// to "0".
func normalizeWhole(s string) string {
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return sign + s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
