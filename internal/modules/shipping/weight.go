package shipping

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the decimal number a free-form weight starts with.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseWeight coerces free-form input to pounds. A leading decimal number is
// used even when text follows it ("5lb" is 5). Overflow keeps its sign, so
// "1e400" saturates like +Inf. Anything else, NaN included, is 0.
func ParseWeight(v string) float64 {
	v = strings.TrimLeft(v, " \t\n\r\v\f")
	w, err := strconv.ParseFloat(strings.TrimRight(v, " \t\n\r\v\f"), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		m := leadingNumber.FindString(v)
		if m == "" {
			return 0
		}
		w, err = strconv.ParseFloat(m, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0
		}
	}
	if math.IsNaN(w) {
		return 0
	}
	return w
}
