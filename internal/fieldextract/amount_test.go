package fieldextract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"100,00", "100.00"},
		{"$ 2.500,00", "2500.00"},
		{"1.234", "1234"},
		{"12.345.678,90", "12345678.90"},
		{"1,234.56", "1234.56"},
		{"15,5", "15.5"},
		{"0,00", "0.00"},
		{"950", "950"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			require.NoError(t, err)
			want := decimal.RequireFromString(tc.want)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "$"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.Error(t, err)
		})
	}
}
