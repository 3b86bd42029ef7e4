package inputmask

import (
	"regexp"
	"strings"
)

// MaskType names a formatting policy for an input.
type MaskType string

const (
	MaskNone     MaskType = ""         // pass-through, raw and masked are the input
	MaskPhone    MaskType = "phone"    // 1234567890 -> (123) 456-7890
	MaskMoney    MaskType = "money"    // 1234.5 -> 1,234.50
	MaskCard     MaskType = "card"     // 4111111111111111 -> 4111 1111 1111 1111
	MaskZip      MaskType = "zip"      // 123456789 -> 12345-6789
	MaskDate     MaskType = "date"     // 12312024 -> 12/31/2024
	MaskMonthDay MaskType = "monthDay" // 1231 -> 12/31
	MaskCustom   MaskType = "custom"   // caller-supplied FormatFunc
)

// FormatFunc is a caller-supplied mask for MaskCustom.
type FormatFunc func(value string) string

// Mask implements Masker.
func (f FormatFunc) Mask(value string) string {
	return f(value)
}

// Masker turns a clamped raw value into its display form.
type Masker interface {
	// Mask returns the masked representation of value.
	Mask(value string) string
}

// phonePattern splits up to ten digits into area code, exchange and line.
var phonePattern = regexp.MustCompile(`^(\d{0,3})(\d{0,3})(\d{0,4})$`)

// phoneMasker formats (###) ###-####, revealing punctuation per group.
type phoneMasker struct{}

// PhoneMasker returns a masker for US phone numbers.
// Partial input reveals only the groups typed so far: "12" -> "(12".
func PhoneMasker() Masker {
	return &phoneMasker{}
}

func (m *phoneMasker) Mask(value string) string {
	digits := StripNonDigits(value)
	match := phonePattern.FindStringSubmatch(digits)
	if match == nil {
		// More than ten digits; leave them unformatted.
		return digits
	}

	var b strings.Builder
	if match[1] != "" {
		b.WriteString("(" + match[1])
	}
	if match[2] != "" {
		b.WriteString(") " + match[2])
	}
	if match[3] != "" {
		b.WriteString("-" + match[3])
	}
	return b.String()
}

// moneyMasker formats a decimal amount with grouped thousands.
type moneyMasker struct{}

// MoneyMasker returns a masker for currency amounts.
// Output always carries exactly two fraction digits: "1234.5" -> "1,234.50".
func MoneyMasker() Masker {
	return &moneyMasker{}
}

func (m *moneyMasker) Mask(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		if c := value[i]; (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}

	amount, ok := leadingFloat(b.String())
	if !ok {
		amount = 0
	}
	return formatAmount(amount)
}

// cardMasker groups card digits in fours.
type cardMasker struct{}

// CardMasker returns a masker for payment card numbers.
// "12345678" -> "1234 5678", never with a trailing space.
func CardMasker() Masker {
	return &cardMasker{}
}

func (m *cardMasker) Mask(value string) string {
	digits := StripNonDigits(value)

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i++ {
		b.WriteByte(digits[i])
		if (i+1)%4 == 0 && i+1 < len(digits) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// zipMasker formats US ZIP and ZIP+4 codes.
type zipMasker struct{}

// ZipMasker returns a masker for postal codes.
// Five digits or fewer pass through; more render as 12345-6789.
func ZipMasker() Masker {
	return &zipMasker{}
}

func (m *zipMasker) Mask(value string) string {
	digits := StripNonDigits(value)
	if len(digits) > 5 {
		return digits[:5] + "-" + LimitLength(digits[5:], 4)
	}
	return digits
}

// dateMasker formats MM/DD/YYYY.
type dateMasker struct{}

// DateMasker returns a masker for calendar dates.
// At most eight digits are kept: "12345678" -> "12/34/5678".
func DateMasker() Masker {
	return &dateMasker{}
}

func (m *dateMasker) Mask(value string) string {
	digits := LimitLength(StripNonDigits(value), 8)
	return InsertChunks(digits, []int{2, 2, 4}, "/")
}

// monthDayMasker formats MM/DD.
type monthDayMasker struct{}

// MonthDayMasker returns a masker for month/day pairs.
// At most four digits are kept: "12345" -> "12/34".
func MonthDayMasker() Masker {
	return &monthDayMasker{}
}

func (m *monthDayMasker) Mask(value string) string {
	digits := LimitLength(StripNonDigits(value), 4)
	return InsertChunks(digits, []int{2, 2}, "/")
}

// identityMasker returns its input.
type identityMasker struct{}

// IdentityMasker returns a masker that leaves values untouched.
func IdentityMasker() Masker {
	return &identityMasker{}
}

func (m *identityMasker) Mask(value string) string {
	return value
}

// MaskerFor resolves the masker for a mask type. MaskCustom resolves to
// custom, or identity when custom is nil. Unknown types resolve to identity.
func MaskerFor(mt MaskType, custom FormatFunc) Masker {
	switch mt {
	case MaskPhone:
		return PhoneMasker()
	case MaskMoney:
		return MoneyMasker()
	case MaskCard:
		return CardMasker()
	case MaskZip:
		return ZipMasker()
	case MaskDate:
		return DateMasker()
	case MaskMonthDay:
		return MonthDayMasker()
	case MaskCustom:
		if custom != nil {
			return custom
		}
		return IdentityMasker()
	case MaskNone:
		return IdentityMasker()
	default:
		return IdentityMasker()
	}
}
