package pageops

import (
	"regexp"
	"strconv"
	"strings"
)

var lastNumber = regexp.MustCompile(`^(.*?)(\d+)(\D*)$`)

// IncrementURI adds count to the last number in uri, keeping zero padding
// and never going below zero. ok is false when uri holds no number.
func IncrementURI(uri string, count int) (string, bool) {
	m := lastNumber.FindStringSubmatch(uri)
	if m == nil {
		return uri, false
	}
	old := m[2]
	n, err := strconv.ParseInt(old, 10, 64)
	if err != nil {
		return uri, false
	}
	n += int64(count)
	if n < 0 {
		n = 0
	}
	next := strconv.FormatInt(n, 10)
	if strings.HasPrefix(old, "0") && len(next) < len(old) {
		next = strings.Repeat("0", len(old)-len(next)) + next
	}
	return m[1] + next + m[3], true
}
