package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelPolicy_Codes(t *testing.T) {
	tests := []struct {
		name  string
		keys  string
		fixed bool
		n     int
		want  []string
	}{
		{"numeric starts at one", "0123456789", false, 3, []string{"1", "2", "3"}},
		{"numeric grows past nine", "0123456789", false, 11, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}},
		{"numeric fixed width single digit", "0123456789", true, 9, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"letters", "asdf", false, 6, []string{"a", "s", "d", "f", "sa", "ss"}},
		{"letters fixed width", "asdf", true, 5, []string{"aa", "as", "ad", "af", "sa"}},
		{"letters fit one column", "asdf", true, 4, []string{"a", "s", "d", "f"}},
		{"zero hints", "asdf", false, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLabelPolicy(tt.keys, tt.fixed)
			assert.Equal(t, tt.want, p.Codes(tt.n))
		})
	}
}

func TestLabelPolicy_FixedWidthNumericPinsBlock(t *testing.T) {
	codes := NewLabelPolicy("0123456789", true).Codes(12)

	assert.Len(t, codes, 12)
	assert.Equal(t, "10", codes[0])
	assert.Equal(t, "21", codes[11])
	for _, c := range codes {
		assert.Len(t, c, 2)
	}
}

func TestLabelPolicy_CodesAreUnique(t *testing.T) {
	for _, keys := range []string{"0123456789", "asdfghjkl", "01"} {
		for _, fixed := range []bool{false, true} {
			codes := NewLabelPolicy(keys, fixed).Codes(200)
			seen := make(map[string]bool, len(codes))
			for _, c := range codes {
				assert.False(t, seen[c], "duplicate code %q for keys %q", c, keys)
				seen[c] = true
				assert.NotEqual(t, '0', rune(c[0]), "leading zero in %q", c)
			}
		}
	}
}

func TestLabelPolicy_IsKey(t *testing.T) {
	p := NewLabelPolicy("asdf", false)

	assert.True(t, p.IsKey('s'))
	assert.False(t, p.IsKey('x'))
}
