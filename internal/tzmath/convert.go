package tzmath

import "math"

// UTCToLocal shifts a clock hour from UTC into a zone offset hours east of
// UTC, folded back onto the 24-hour dial. UTCToLocal(2, 5.5) is 7.5.
func UTCToLocal(utcHour, offset float64) float64 {
	return foldHour(utcHour + offset)
}

// LocalToUTC is the inverse of UTCToLocal. LocalToUTC(9, -5) is 14, the UTC
// hour at which a New York winter workday starts.
func LocalToUTC(localHour, offset float64) float64 {
	return foldHour(localHour - offset)
}

// WrapHour folds an integer hour into [0, 24).
func WrapHour(h int) int {
	h %= 24
	if h < 0 {
		h += 24
	}
	return h
}

func foldHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}
