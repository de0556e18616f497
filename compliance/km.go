package compliance

import (
	"strconv"
	"strings"
)

//ParseKm turns a free-form kilometer post like "118+700" into a sortable number.
//The + separator becomes a decimal point and anything that is not a digit or dot
//is stripped. Unparseable input sorts first as 0.
func ParseKm(km string) float64 {

	cleaned := strings.ReplaceAll(km, "+", ".")
	var b strings.Builder
	seenDot := false
	for _, r := range cleaned {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '.' && !seenDot {
			b.WriteRune(r)
			seenDot = true
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}
