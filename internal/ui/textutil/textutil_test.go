package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Union Square", 20, "Union Square"},
		{"Union Square", 6, "Union…"},
		{"Union Square", 1, "…"},
		{"Union Square", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.width)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.width)
		assert.LessOrEqual(t, Width(got), max(tt.width, 0))
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "park      ", Fit("park", 10))
	assert.Equal(t, "Herald S…", Fit("Herald Square", 9))
	assert.Equal(t, 6, Width(Fit("日本語テキスト", 6)))
}
