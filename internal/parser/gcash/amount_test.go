package gcash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"250.00", "250.00"},
		{"1,500.00", "1500.00"},
		{"12,345,678.90", "12345678.90"},
		{"100", "100.00"},
		{"7.5", "7.50"},
		{" 99.99 ", "99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	tests := []string{
		"",
		"-5.00",
		"12,34.5.6",
		"1.234",
		"abc",
		"100.",
		".50",
		"1,000.00.00",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := parseAmount(in)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}
