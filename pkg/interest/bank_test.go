package interest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundCents_HalfAwayFromZero(t *testing.T) {
	tests := map[string]string{
		"1.005":   "1.01",
		"0.125":   "0.13",
		"-0.125":  "-0.13",
		"2.675":   "2.68",
		"1072.50": "1072.5",
		"3.14159": "3.14",
	}
	for in, want := range tests {
		got := roundCents(decimal.RequireFromString(in))
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s rounded to %s, want %s", in, got, want)
	}
}
