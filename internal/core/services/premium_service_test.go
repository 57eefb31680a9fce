package services_test

import (
	"testing"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAnnualPremium(t *testing.T) {
	tests := []struct {
		name       string
		sumInsured int64
		want       int64
	}{
		{"one million", 1000000, 308},     // 0.3079 * 1000 = 307.9, rounds up
		{"half million", 500000, 154},     // 153.95
		{"ten thousand", 10000, 3},        // 3.079
		{"one thousand", 1000, 0},         // 0.3079 rounds down
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.CalculateAnnualPremium(decimal.NewFromInt(tt.sumInsured))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s, want %d", got, tt.want)
		})
	}
}

func TestProRataDays_InclusiveOfBothEnds(t *testing.T) {
	assert.Equal(t, 1, services.ProRataDays(date(2025, 3, 10), date(2025, 3, 10)))
	assert.Equal(t, 2, services.ProRataDays(date(2025, 3, 10), date(2025, 3, 11)))
	assert.Equal(t, 31, services.ProRataDays(date(2025, 1, 1), date(2025, 1, 31)))
	// A one-year window spanning no leap day still counts the +1.
	assert.Equal(t, 366, services.ProRataDays(date(2025, 1, 1), date(2026, 1, 1)))
}

func TestCalculatePremium_FullYear(t *testing.T) {
	joining := date(2025, 1, 1)
	exit := joining.AddDate(1, 0, 0)

	b := services.CalculatePremium(decimal.NewFromInt(1000000), joining, exit)

	require.Equal(t, 366, b.ProRataDays)
	assert.True(t, b.AnnualPremium.Equal(decimal.NewFromInt(308)), "annual: %s", b.AnnualPremium)
	// 366 * 308 / 365 = 308.84 rounds to 309
	assert.True(t, b.ProRataPremium.Equal(decimal.NewFromInt(309)), "pro rata: %s", b.ProRataPremium)
	// 309 * 18% = 55.62 rounds to 56
	assert.True(t, b.GSTAmount.Equal(decimal.NewFromInt(56)), "gst: %s", b.GSTAmount)
	assert.True(t, b.FinalPremium.Equal(decimal.NewFromInt(365)), "final: %s", b.FinalPremium)
	assert.Equal(t, joining, b.DateOfJoining)
	assert.Equal(t, exit, b.DateOfExit)
}

func TestCalculatePremium_SingleDay(t *testing.T) {
	day := date(2025, 6, 15)

	b := services.CalculatePremium(decimal.NewFromInt(1000000), day, day)

	require.Equal(t, 1, b.ProRataDays)
	// 1 * 308 / 365 = 0.84 rounds to 1; GST on 1 rounds to 0
	assert.True(t, b.ProRataPremium.Equal(decimal.NewFromInt(1)), "pro rata: %s", b.ProRataPremium)
	assert.True(t, b.GSTAmount.IsZero(), "gst: %s", b.GSTAmount)
	assert.True(t, b.FinalPremium.Equal(decimal.NewFromInt(1)), "final: %s", b.FinalPremium)
}

func TestCalculatePremium_FinalIsProRataPlusGST(t *testing.T) {
	b := services.CalculatePremium(decimal.NewFromInt(750000), date(2025, 4, 1), date(2025, 9, 30))
	assert.True(t, b.FinalPremium.Equal(b.ProRataPremium.Add(b.GSTAmount)))
	assert.True(t, b.GSTRate.Equal(decimal.NewFromFloat(0.18)))
}
