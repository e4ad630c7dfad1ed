package mortgage

import (
	"strings"
)

const (
	MaxInterestRate = 100.0
	MinTermYears    = 1
	MaxTermYears    = 50
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string { return e.Field + " " + e.Message }

// ValidationErrors holds one entry per violated input constraint.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return "invalid loan request: " + strings.Join(msgs, "; ")
}

// Validate checks req against the calculator's input domain. It returns nil
// or a ValidationErrors value.
func Validate(req LoanRequest) error {
	var ve ValidationErrors

	switch {
	case !isFinite(req.LoanAmount):
		ve = append(ve, ValidationError{Field: "loan_amount", Message: "must be a finite number"})
	case req.LoanAmount <= 0:
		ve = append(ve, ValidationError{Field: "loan_amount", Message: "must be greater than 0"})
	}

	switch {
	case !isFinite(req.InterestRate):
		ve = append(ve, ValidationError{Field: "interest_rate", Message: "must be a finite number"})
	case req.InterestRate <= 0:
		ve = append(ve, ValidationError{Field: "interest_rate", Message: "must be greater than 0"})
	case req.InterestRate > MaxInterestRate:
		ve = append(ve, ValidationError{Field: "interest_rate", Message: "cannot exceed 100%"})
	}

	switch {
	case req.LoanTermYears < MinTermYears:
		ve = append(ve, ValidationError{Field: "loan_term_years", Message: "must be at least 1 year"})
	case req.LoanTermYears > MaxTermYears:
		ve = append(ve, ValidationError{Field: "loan_term_years", Message: "cannot exceed 50 years"})
	}

	if len(ve) == 0 {
		return nil
	}
	return ve
}
