package inputmask

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// LimitLength returns at most the first maxLength characters of value.
// A negative maxLength yields an empty string.
func LimitLength(value string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if len(value) <= maxLength {
		return value
	}
	n := 0
	for i := range value {
		if n == maxLength {
			return value[:i]
		}
		n++
	}
	return value
}

// InsertChunks splits value into consecutive chunks of the given sizes and
// joins the non-empty ones with separator. Characters left over after the
// last declared chunk are appended without a separator.
//
//	InsertChunks("12345", []int{2, 2, 1}, "/")   -> "12/34/5"
//	InsertChunks("1234567", []int{2, 2, 1}, "-") -> "12-34-567"
//
// Negative sizes consume nothing.
func InsertChunks(value string, chunkSizes []int, separator string) string {
	if value == "" {
		return ""
	}

	runes := []rune(value)
	var b strings.Builder
	start := 0

	for _, size := range chunkSizes {
		if size < 0 {
			size = 0
		}
		end := min(start+size, len(runes))
		if start < end {
			if b.Len() > 0 {
				b.WriteString(separator)
			}
			b.WriteString(string(runes[start:end]))
		}
		start += size
	}

	if start < len(runes) {
		b.WriteString(string(runes[start:]))
	}

	return b.String()
}

// ApplyRegexReplace replaces the first match of pattern in value.
// The replacement may reference capture groups using regexp.Expand syntax
// ($1, ${name}).
//
//	ApplyRegexReplace("123456789", regexp.MustCompile(`(\d{3})(\d{2})(\d{4})`), "$1-$2-$3")
//	  -> "123-45-6789"
func ApplyRegexReplace(value string, pattern *regexp.Regexp, replacement string) string {
	if pattern == nil {
		return value
	}
	loc := pattern.FindStringSubmatchIndex(value)
	if loc == nil {
		return value
	}
	var dst []byte
	dst = append(dst, value[:loc[0]]...)
	dst = pattern.ExpandString(dst, replacement, value, loc)
	dst = append(dst, value[loc[1]:]...)
	return string(dst)
}

// ApplyRegexReplaceAll replaces every match of pattern in value.
func ApplyRegexReplaceAll(value string, pattern *regexp.Regexp, replacement string) string {
	if pattern == nil {
		return value
	}
	return pattern.ReplaceAllString(value, replacement)
}

// ClampDigits bounds the integer held by numericString to [lo, hi].
//
// Empty or non-numeric input is returned unchanged. A value below lo returns
// lo left-padded with zeros to the input's length; a value above hi returns
// hi with no padding.
//
//	ClampDigits("0", 1, 12)  -> "1"
//	ClampDigits("00", 1, 12) -> "01"
//	ClampDigits("13", 1, 12) -> "12"
func ClampDigits(numericString string, lo, hi int) string {
	if numericString == "" {
		return numericString
	}

	n, ok := leadingInt(numericString)
	if !ok {
		return numericString
	}

	if n < int64(lo) {
		floor := strconv.Itoa(lo)
		if pad := utf8.RuneCountInString(numericString) - len(floor); pad > 0 {
			floor = strings.Repeat("0", pad) + floor
		}
		return floor
	}
	if n > int64(hi) {
		return strconv.Itoa(hi)
	}
	return numericString
}

// ParseCurrencyToNumber extracts the number held by a currency string.
// Every character other than digits, '.' and '-' is dropped and the longest
// numeric prefix is parsed. Anything unparseable yields 0.
//
//	ParseCurrencyToNumber("$1,230.30") -> 1230.3
func ParseCurrencyToNumber(currency string) float64 {
	if currency == "" {
		return 0
	}

	var b strings.Builder
	for i := 0; i < len(currency); i++ {
		c := currency[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteByte(c)
		}
	}

	f, ok := leadingFloat(strings.TrimSpace(b.String()))
	if !ok || f == 0 {
		return 0
	}
	return f
}

// leadingInt parses the integer prefix of s: optional surrounding
// whitespace, an optional sign, then at least one digit. Values too large
// for int64 saturate.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// ParseInt saturates to the int64 bounds on ErrRange.
	return n, true
}

// leadingFloat parses the decimal prefix of s: an optional sign, digits,
// an optional fraction. At least one digit is required.
func leadingFloat(s string) (float64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if frac > 0 || digits > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// ParseFloat returns ±Inf on overflow, which is kept.
	return f, true
}
