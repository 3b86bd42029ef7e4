package inputmask

import (
	"math"
	"strconv"
	"strings"
)

// formatAmount renders amount with comma-grouped thousands and exactly two
// fraction digits. Rounding is half away from zero on the shortest decimal
// representation of amount, so 1.005 renders as "1.01".
func formatAmount(amount float64) string {
	if math.IsNaN(amount) {
		amount = 0
	}
	if math.IsInf(amount, 0) {
		if amount < 0 {
			return "-∞"
		}
		return "∞"
	}

	neg := amount < 0
	whole, frac := roundDecimal(strconv.FormatFloat(math.Abs(amount), 'f', -1, 64), 2)
	if neg && strings.Trim(whole+frac, "0") == "" {
		neg = false
	}

	out := groupThousands(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// roundDecimal rounds an unsigned decimal string to places fraction digits,
// returning the integer and fraction parts separately.
func roundDecimal(s string, places int) (string, string) {
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	roundUp := len(frac) > places && frac[places] >= '5'
	if len(frac) > places {
		frac = frac[:places]
	}
	frac += strings.Repeat("0", places-len(frac))
	if !roundUp {
		return whole, frac
	}

	digits := []byte(whole + frac)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] == '9' {
			digits[i] = '0'
			continue
		}
		digits[i]++
		break
	}
	if i < 0 {
		digits = append([]byte{'1'}, digits...)
	}

	cut := len(digits) - places
	return string(digits[:cut]), string(digits[cut:])
}

// groupThousands inserts a comma between every three integer digits.
func groupThousands(whole string) string {
	if len(whole) <= 3 {
		return whole
	}

	var b strings.Builder
	b.Grow(len(whole) + len(whole)/3)
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}

// toFixed2 renders v with exactly two fraction digits. Magnitudes of 1e21
// and above fall back to the shortest exponent form.
func toFixed2(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.Abs(v) >= 1e21 {
		if math.IsInf(v, 0) {
			if v < 0 {
				return "-Infinity"
			}
			return "Infinity"
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
