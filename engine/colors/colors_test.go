package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Color
	}{
		{"#ffffff", White},
		{"000000", Black},
		{"#ff0000ff", Red},
		{"#ffff0080", Yellow.WithAlpha(128.0 / 255)},
	} {
		got, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.InDeltaSlice(t, tc.want[:], got[:], 1e-6, tc.in)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
