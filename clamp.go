package inputmask

// ClampLimit returns the maximum number of raw digits kept for mt.
// The second result is false for uncapped types.
func ClampLimit(mt MaskType) (int, bool) {
	switch mt {
	case MaskPhone:
		return 10, true // (###) ###-####
	case MaskDate:
		return 8, true // MMDDYYYY
	case MaskMonthDay:
		return 4, true // MMDD
	case MaskZip:
		return 9, true // ZIP+4
	case MaskCard:
		return 16, true
	case MaskMoney, MaskCustom, MaskNone:
		return 0, false
	default:
		return 0, false
	}
}

// Clamp bounds raw to the length meaningful for mt before masking.
//
// Capped types keep only digits, truncated to the cap and otherwise in
// their original order. Every other type, including MaskNone, returns raw
// unchanged.
//
//	Clamp(MaskPhone, "1234567890333") -> "1234567890"
func Clamp(mt MaskType, raw string) string {
	limit, ok := ClampLimit(mt)
	if !ok {
		return raw
	}
	return LimitLength(StripNonDigits(raw), limit)
}
