package numberutils

import (
	"strconv"
)

// ToIntWithError converts the given string to an integer and returns any error that occurred during conversion.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(str)
}
