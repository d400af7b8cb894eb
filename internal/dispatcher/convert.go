package dispatcher

import (
	"strconv"
	"strings"
)

const leadingSpace = " \t\n\v\f\r"

// ParseInt reads an optionally signed run of leading digits, skipping leading
// whitespace. Anything that does not start with a number yields 0 and values
// outside the int range are clamped.
func ParseInt(s string) int {
	s = strings.TrimLeft(s, leadingSpace)

	end := signLen(s)
	digits := end
	end += digitsLen(s[end:])
	if end == digits {
		return 0
	}

	// On overflow ParseInt still returns the clamped bound.
	n, _ := strconv.ParseInt(s[:end], 10, 0)
	return int(n)
}

// ParseFloat reads a leading decimal literal (sign, digits, fraction and an
// optional exponent), skipping leading whitespace. Anything that does not
// start with a number yields 0.
func ParseFloat(s string) float64 {
	s = strings.TrimLeft(s, leadingSpace)

	end := signLen(s)
	intDigits := digitsLen(s[end:])
	end += intDigits

	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		fracDigits = digitsLen(s[end+1:])
		if fracDigits > 0 {
			end += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		exp += signLen(s[exp:])
		if n := digitsLen(s[exp:]); n > 0 {
			end = exp + n
		}
	}

	f, _ := strconv.ParseFloat(s[:end], 64)
	return f
}

// ParseBool accepts the literals true/True and false/False; any other input
// is read as an integer and is true when non-zero.
func ParseBool(s string) bool {
	switch s {
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	return ParseInt(s) != 0
}

func signLen(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func digitsLen(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
