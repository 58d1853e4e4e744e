package store

import "strconv"

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func formatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}

// addOverflow adds b to a and reports whether the 64-bit signed result
// overflowed, so INCR/DECR can report a numeric-range error instead of
// silently wrapping (spec.md requires 64-bit arithmetic with overflow
// detection, unlike the source's 32-bit, unchecked addition).
func addOverflow(a, b int64) (sum int64, overflow bool) {
	sum = a + b
	if b > 0 && sum < a {
		return 0, true
	}
	if b < 0 && sum > a {
		return 0, true
	}
	return sum, false
}
