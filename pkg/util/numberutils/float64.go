package numberutils

import (
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a float64 and returns any error that occurred during conversion.
func ToFloat64WithError(str string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// FormatFloat renders f in its shortest decimal form: 18 instead of 18.00, 3.6 instead of 3.60.
func FormatFloat(f float64) string {
	if f == 0 {
		// -0 prints as "-0"
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
