package cmdopt

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpaces(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func isDigitInBase(c byte, base int) bool {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return false
	}
	return d < base
}

// scanLeadingInt finds the integer at the beginning of `s` the way strtol does:
// leading spaces and a sign are skipped, base 0 means auto-detection
// ("0x" - hex, leading "0" - octal, decimal otherwise).
// Returns the digits without sign and prefix
func scanLeadingInt(s string, base int) (digits string, detectedBase int, negative bool, ok bool) {
	rest := skipSpaces(s)
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		negative = rest[0] == '-'
		rest = rest[1:]
	}
	if base == 0 {
		switch {
		case len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') && isDigitInBase(rest[2], 16):
			base = 16
			rest = rest[2:]
		case len(rest) > 0 && rest[0] == '0':
			base = 8
		default:
			base = 10
		}
	}
	n := 0
	for n < len(rest) && isDigitInBase(rest[n], base) {
		n++
	}
	if n == 0 {
		return "", base, negative, false
	}
	return rest[:n], base, negative, true
}

// parseStrictInt parses the leading integer of `s` with base auto-detection.
// Anything after the number is ignored. Fails if there is no number or it
// doesn't fit into 32-bit signed integer
func parseStrictInt(s string) (int, bool) {
	digits, base, negative, ok := scanLeadingInt(s, 0)
	if !ok {
		return 0, false
	}
	abs, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		if abs > -math.MinInt32 {
			return 0, false
		}
		return -int(abs), true
	}
	if abs > math.MaxInt32 {
		return 0, false
	}
	return int(abs), true
}

// parseLeadingInt is an atoi: decimal leading integer, 0 if there is none,
// saturated to the 32-bit signed range
func parseLeadingInt(s string) int {
	digits, _, negative, ok := scanLeadingInt(s, 10)
	if !ok {
		return 0
	}
	abs, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		abs = math.MaxUint64
	}
	if negative {
		if abs > -math.MinInt32 {
			return math.MinInt32
		}
		return -int(abs)
	}
	if abs > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(abs)
}

func countDigits(s string, base int) int {
	n := 0
	for n < len(s) && isDigitInBase(s[n], base) {
		n++
	}
	return n
}

// scanExponent returns the length of the exponent part at the beginning of `s`
// (marker, optional sign, digits) or 0 if there is no complete exponent
func scanExponent(s string, markers string) int {
	if len(s) == 0 || !strings.ContainsRune(markers, rune(s[0])) {
		return 0
	}
	i := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := countDigits(s[i:], 10)
	if digits == 0 {
		return 0
	}
	return i + digits
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// scanLeadingFloat returns the floating point number text at the beginning of `s` (after
// spaces) in the form accepted by strconv.ParseFloat, following scanf("%lf") rules
func scanLeadingFloat(s string) (text string, ok bool) {
	rest := skipSpaces(s)
	sign := ""
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		sign = rest[:1]
		rest = rest[1:]
	}

	switch {
	case hasPrefixFold(rest, "infinity"):
		return sign + "inf", true
	case hasPrefixFold(rest, "inf"):
		return sign + "inf", true
	case hasPrefixFold(rest, "nan"):
		return "nan", true
	}

	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		mantissa := rest[2:]
		intDigits := countDigits(mantissa, 16)
		n := intDigits
		fracDigits := 0
		if n < len(mantissa) && mantissa[n] == '.' {
			fracDigits = countDigits(mantissa[n+1:], 16)
			n += 1 + fracDigits
		}
		if intDigits+fracDigits > 0 {
			if exp := scanExponent(mantissa[n:], "pP"); exp > 0 {
				return sign + rest[:2+n+exp], true
			}
			return sign + rest[:2+n] + "p0", true
		}
		// "0x" without hex digits is just "0"
		return sign + "0", true
	}

	intDigits := countDigits(rest, 10)
	n := intDigits
	fracDigits := 0
	if n < len(rest) && rest[n] == '.' {
		fracDigits = countDigits(rest[n+1:], 10)
		n += 1 + fracDigits
	}
	if intDigits+fracDigits == 0 {
		return "", false
	}
	n += scanExponent(rest[n:], "eE")
	return sign + rest[:n], true
}

// parseLeadingFloat parses the floating point number at the beginning of `s`.
// Anything after the number is ignored. Values out of float64 range become ±Inf or 0
func parseLeadingFloat(s string) (float64, bool) {
	text, ok := scanLeadingFloat(s)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}
