package services

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Premium calculation constants. The rate is per 1000 of sum insured per
// year; amounts are rounded to whole currency units at each step.
var (
	premiumRatePerThousand = decimal.RequireFromString("0.3079")
	gstRate                = decimal.RequireFromString("0.18")
	daysPerYear            = decimal.NewFromInt(365)
	thousand               = decimal.NewFromInt(1000)
)

// CalculateAnnualPremium computes the full-year premium for a sum insured.
func CalculateAnnualPremium(sumInsured decimal.Decimal) decimal.Decimal {
	return sumInsured.Mul(premiumRatePerThousand).Div(thousand).Round(0)
}

// ProRataDays counts the covered days between joining and exit, inclusive of
// both endpoints. Dates are compared at day granularity.
func ProRataDays(joining time.Time, exit time.Time) int {
	j := time.Date(joining.Year(), joining.Month(), joining.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(exit.Year(), exit.Month(), exit.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(j).Hours()/24) + 1
}

// CalculatePremium produces the full calculation trail for one member: the
// annual premium for the sum insured, prorated over the inclusive day count
// between joining and exit, plus GST on the prorated amount.
func CalculatePremium(sumInsured decimal.Decimal, joining time.Time, exit time.Time) domain.PremiumBreakdown {
	annual := CalculateAnnualPremium(sumInsured)
	days := ProRataDays(joining, exit)
	proRata := decimal.NewFromInt(int64(days)).Mul(annual).Div(daysPerYear).Round(0)
	gst := proRata.Mul(gstRate).Round(0)

	return domain.PremiumBreakdown{
		SumInsured:     sumInsured,
		Rate:           premiumRatePerThousand,
		AnnualPremium:  annual,
		DateOfJoining:  joining,
		DateOfExit:     exit,
		ProRataDays:    days,
		ProRataPremium: proRata,
		GSTRate:        gstRate,
		GSTAmount:      gst,
		FinalPremium:   proRata.Add(gst),
	}
}
