package formatter

import (
	"strconv"
)

// FloatDecimals matches the precision a microcontroller String(float) prints by default.
const FloatDecimals = 2

// FormatInt returns n in base 10 without separators.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// FormatFloat returns f in fixed-point notation with the given number of decimals.
// A negative decimals value falls back to FloatDecimals.
// Example: FormatFloat(3.14159, 2) -> "3.14"
func FormatFloat(f float64, decimals int) string {
	if decimals < 0 {
		decimals = FloatDecimals
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// FormatBool returns "1" or "0", the way the board reports flags.
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
