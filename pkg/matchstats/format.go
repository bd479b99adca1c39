package matchstats

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Beyond this magnitude numbers are written in exponent form, both by
// FormatRatio and FormatNumber.
const exponentThreshold = 1e21

// FormatRatio writes x with exactly two decimals. The result is the decimal
// closest to the exact binary value of x, with ties rounded away from zero,
// so 3 becomes "3.00", 0.125 becomes "0.13" and 1.005 becomes "1.00".
func FormatRatio(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	if math.IsInf(x, 0) {
		return sign + "Infinity"
	}
	if x >= exponentThreshold {
		return sign + FormatNumber(x)
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(x)
	scaled.Mul(scaled, new(big.Float).SetPrec(256).SetInt64(100))
	scaled.Add(scaled, new(big.Float).SetPrec(256).SetFloat64(0.5))
	hundredths, _ := scaled.Int(nil)

	digits := hundredths.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}

// FormatNumber writes x the way a browser prints a number: the shortest
// decimal that reads back as x, switching to exponent form for very large
// and very small magnitudes.
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs >= 1e-6 && abs < exponentThreshold {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	s := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, exponent := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa, exponent = s[:i], s[i+1:]
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}
	return mantissa + "e" + signedExponent(exp)
}

func signedExponent(exp int) string {
	if exp >= 0 {
		return "+" + strconv.Itoa(exp)
	}
	return strconv.Itoa(exp)
}
