package webpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attrs string
		want  string
	}{
		{"Empty", "", ""},
		{"Blank", "   ", ""},
		{"Bare", "defer", "defer"},
		{"Several", " async  crossorigin=anonymous ", `async crossorigin="anonymous"`},
		{"Quoted With Spaces", `media="screen and (min-width: 900px)"`, `media="screen and (min-width: 900px)"`},
		{"Case Folded", `DEFER Nonce="abc"`, `defer nonce="abc"`},
		{"Ampersand Escaped", `integrity="sha384-a&b"`, `integrity="sha384-a&amp;b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeAttrs(tt.attrs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeAttrs_Rejects(t *testing.T) {
	for _, attrs := range []string{
		`onload="alert(1)"`,
		`defer onerror=x`,
		`defer><script>alert(1)</script>`,
		`media="print"/><script>`,
		`media='print'`,
		`media="a"b`,
		`"defer"`,
	} {
		t.Run(attrs, func(t *testing.T) {
			_, err := SanitizeAttrs(attrs)
			assert.ErrorIs(t, err, ErrUnsafeAttrs)
		})
	}
}
