package mortgage

import (
	"time"
)

type LoanRequest struct {
	LoanAmount    float64 `json:"loan_amount"`
	InterestRate  float64 `json:"interest_rate"`
	LoanTermYears int     `json:"loan_term_years"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPayment   float64 `json:"total_payment"`
	LoanAmount     float64 `json:"loan_amount"`
	InterestRate   float64 `json:"interest_rate"`
	LoanTermYears  int     `json:"loan_term_years"`
}

type CalculationDTO struct {
	CalculationID string `json:"calculation_id,omitempty"`
	LoanResult
	Persisted bool      `json:"persisted"`
	CreatedAt time.Time `json:"created_at"`
}
