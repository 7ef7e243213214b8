// Package emi computes equated monthly installment schedules for loan
// borrowings. All monetary inputs and outputs are in minor currency units
// (cents); the calculations themselves run in float64 and each output is
// rounded to the nearest cent independently at the end.
package emi

import "math"

// Result holds the derived schedule for a borrowing, in cents.
type Result struct {
	Emi           int64
	TotalInterest int64
	TotalAmount   int64
}

// SimpleInterest computes the flat-rate installment schedule:
// interest accrues on the full principal for the whole tenure.
// Any non-positive input yields a zero Result so partially filled
// calculator forms stay well-defined without raising errors.
func SimpleInterest(principal int64, annualRatePercent float64, tenureMonths int) Result {
	if principal <= 0 || annualRatePercent <= 0 || tenureMonths <= 0 {
		return Result{}
	}

	totalInterest := float64(principal) * annualRatePercent * (float64(tenureMonths) / 12) / 100
	totalAmount := float64(principal) + totalInterest
	monthly := totalAmount / float64(tenureMonths)

	return Result{
		Emi:           int64(math.Round(monthly)),
		TotalInterest: int64(math.Round(totalInterest)),
		TotalAmount:   int64(math.Round(totalAmount)),
	}
}

// CompoundInterest computes the standard amortizing-loan schedule:
//
//	emi = P * r * (1+r)^n / ((1+r)^n - 1)   with r = annual/12/100
//
// Any non-positive input yields a zero Result. If the denominator
// degenerates (a rate small enough that (1+r)^n rounds to 1 in float64),
// the schedule is clamped to the zero-interest case instead of letting the
// division produce Inf or NaN.
func CompoundInterest(principal int64, annualRatePercent float64, tenureMonths int) Result {
	if principal <= 0 || annualRatePercent <= 0 || tenureMonths <= 0 {
		return Result{}
	}

	monthlyRate := annualRatePercent / 12 / 100
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	denominator := factor - 1

	if denominator <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		// Clamp to the zero-interest schedule.
		monthly := float64(principal) / float64(tenureMonths)
		return Result{
			Emi:           int64(math.Round(monthly)),
			TotalInterest: 0,
			TotalAmount:   principal,
		}
	}

	monthly := float64(principal) * monthlyRate * factor / denominator
	totalAmount := monthly * float64(tenureMonths)
	totalInterest := totalAmount - float64(principal)

	return Result{
		Emi:           int64(math.Round(monthly)),
		TotalInterest: int64(math.Round(totalInterest)),
		TotalAmount:   int64(math.Round(totalAmount)),
	}
}

// Calculate dispatches to the formula for the given interest type.
// Unknown types fall back to simple interest.
func Calculate(interestType string, principal int64, annualRatePercent float64, tenureMonths int) Result {
	if interestType == "compound" {
		return CompoundInterest(principal, annualRatePercent, tenureMonths)
	}
	return SimpleInterest(principal, annualRatePercent, tenureMonths)
}
