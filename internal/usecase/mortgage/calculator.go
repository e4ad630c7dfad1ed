package mortgage

import "math"

const monthsPerYear = 12

// Compute returns the payment figures of a fixed-rate amortizing loan.
//
// It does not validate its input: callers are expected to run Validate first.
// The totals are derived from the cent-rounded monthly payment, so they match
// what a borrower paying that installment n times actually pays.
func Compute(req LoanRequest) LoanResult {
	r := (req.InterestRate / 100) / monthsPerYear
	n := float64(req.LoanTermYears * monthsPerYear)

	var monthly float64
	if r == 0 {
		monthly = req.LoanAmount / n
	} else {
		factor := math.Pow(1+r, n)
		monthly = req.LoanAmount * (r * factor) / (factor - 1)
	}
	monthly = round2(monthly)

	totalPayment := monthly * n
	totalInterest := totalPayment - req.LoanAmount

	return LoanResult{
		MonthlyPayment: monthly,
		TotalInterest:  round2(totalInterest),
		TotalPayment:   round2(totalPayment),
		LoanAmount:     req.LoanAmount,
		InterestRate:   req.InterestRate,
		LoanTermYears:  req.LoanTermYears,
	}
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func (r LoanResult) finite() bool {
	return isFinite(r.MonthlyPayment) && isFinite(r.TotalInterest) && isFinite(r.TotalPayment)
}
