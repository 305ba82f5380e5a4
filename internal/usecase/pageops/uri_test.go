package pageops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrementURI(t *testing.T) {
	tests := []struct {
		uri   string
		count int
		want  string
		ok    bool
	}{
		{"http://example.com/page/9", 1, "http://example.com/page/10", true},
		{"http://example.com/img007.jpg", 1, "http://example.com/img008.jpg", true},
		{"http://example.com/img010.jpg", -3, "http://example.com/img007.jpg", true},
		{"http://example.com/img003.jpg", -5, "http://example.com/img000.jpg", true},
		{"http://example.com/a1/b2/", 2, "http://example.com/a1/b4/", true},
		{"http://example.com/099", 1, "http://example.com/100", true},
		{"http://example.com/", 1, "http://example.com/", false},
	}
	for _, tt := range tests {
		got, ok := IncrementURI(tt.uri, tt.count)
		assert.Equal(t, tt.ok, ok, tt.uri)
		assert.Equal(t, tt.want, got, tt.uri)
	}
}
