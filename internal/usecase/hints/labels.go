package hints

import "strings"

// LabelPolicy turns ordinal positions into hint codes by treating the hint
// keys as the digits of a positional numeral system. Codes are derived from
// scratch on every display pass.
type LabelPolicy struct {
	keys       []rune
	fixedWidth bool
	// start is 1 when the first key is '0', so that no code gets a
	// leading zero.
	start int
}

func NewLabelPolicy(keys string, fixedWidth bool) LabelPolicy {
	r := []rune(keys)
	start := 0
	if len(r) > 0 && r[0] == '0' {
		start = 1
	}
	return LabelPolicy{keys: r, fixedWidth: fixedWidth, start: start}
}

// IsKey reports whether k is one of the hint keys.
func (p LabelPolicy) IsKey(k rune) bool {
	for _, r := range p.keys {
		if r == k {
			return true
		}
	}
	return false
}

// Codes returns the codes for n hints in display order.
func (p LabelPolicy) Codes(n int) []string {
	if n <= 0 || len(p.keys) < 2 {
		return nil
	}
	first, width := p.start, 0
	if p.fixedWidth {
		width = 1
		for p.capacity(width) < n {
			width++
		}
		if p.start > 0 {
			first = pow(len(p.keys), width-1)
		}
	}

	codes := make([]string, n)
	for i := range codes {
		codes[i] = p.encode(first+i, width)
	}
	return codes
}

// capacity is the number of codes of exactly the given width.
func (p LabelPolicy) capacity(width int) int {
	base := len(p.keys)
	if p.start > 0 {
		return pow(base, width) - pow(base, width-1)
	}
	return pow(base, width)
}

func (p LabelPolicy) encode(n, width int) string {
	base := len(p.keys)
	var digits []rune
	for {
		digits = append(digits, p.keys[n%base])
		n /= base
		if n == 0 {
			break
		}
	}
	for len(digits) < width {
		digits = append(digits, p.keys[0])
	}

	var sb strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(digits[i])
	}
	return sb.String()
}

func pow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
