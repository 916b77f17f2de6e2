package percent

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChange(t *testing.T) {
	tests := []struct {
		name     string
		prev     decimal.Decimal
		cur      decimal.Decimal
		expected decimal.Decimal
	}{
		{"Increase", decimal.NewFromInt(100), decimal.NewFromInt(150), decimal.NewFromInt(50)},
		{"Decrease", decimal.NewFromInt(200), decimal.NewFromInt(150), decimal.NewFromInt(-25)},
		{"No change", decimal.NewFromInt(80), decimal.NewFromInt(80), decimal.Zero},
		{"Zero previous guards division", decimal.Zero, decimal.NewFromInt(500), decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Change(tt.prev, tt.cur)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestOf(t *testing.T) {
	got := Of(decimal.NewFromInt(25), decimal.NewFromInt(200))
	assert.True(t, got.Equal(decimal.NewFromFloat(12.5)), "expected 12.5, got %s", got)

	assert.True(t, Of(decimal.NewFromInt(25), decimal.Zero).IsZero(), "zero whole must yield zero")
}

func TestClamp(t *testing.T) {
	assert.True(t, Clamp(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, Clamp(decimal.NewFromInt(105)).Equal(decimal.NewFromInt(100)))
	assert.True(t, Clamp(decimal.NewFromFloat(42.5)).Equal(decimal.NewFromFloat(42.5)))
}

func TestAsRate(t *testing.T) {
	assert.True(t, AsRate(decimal.NewFromInt(20)).Equal(decimal.NewFromFloat(0.2)))
}
