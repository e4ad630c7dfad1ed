package mortgage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mortgage-calculator/internal/domain/mortgage"
	"mortgage-calculator/internal/metrics"

	"github.com/google/uuid"
)

var (
	// ErrUnexpectedComputation reports a non-finite result for an input that passed validation.
	ErrUnexpectedComputation = errors.New("unexpected computation error")
	ErrHistoryDisabled       = errors.New("calculation history is disabled")
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type Usecase struct{ repo mortgage.Repository }

// NewUsecase builds the calculation usecase. A nil repository disables history.
func NewUsecase(r mortgage.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Calculate(ctx context.Context, in LoanRequest) (*CalculationDTO, error) {
	if err := Validate(in); err != nil {
		metrics.Calculations.WithLabelValues("validation_error").Inc()
		return nil, err
	}

	res := Compute(in)
	if !res.finite() {
		metrics.Calculations.WithLabelValues("computation_error").Inc()
		return nil, fmt.Errorf("%w: loan_amount=%v interest_rate=%v loan_term_years=%d",
			ErrUnexpectedComputation, in.LoanAmount, in.InterestRate, in.LoanTermYears)
	}
	metrics.Calculations.WithLabelValues("ok").Inc()
	metrics.MonthlyPayment.Observe(res.MonthlyPayment)

	dto := &CalculationDTO{LoanResult: res, CreatedAt: time.Now().UTC()}
	if u.repo == nil {
		return dto, nil
	}

	c := &mortgage.Calculation{
		CalculationID:  uuid.NewString(),
		LoanAmount:     res.LoanAmount,
		InterestRate:   res.InterestRate,
		LoanTermYears:  res.LoanTermYears,
		MonthlyPayment: res.MonthlyPayment,
		TotalInterest:  res.TotalInterest,
		TotalPayment:   res.TotalPayment,
	}
	// history is best effort; the computed figures are still returned
	if err := u.repo.Create(ctx, c); err != nil {
		metrics.HistoryWrites.WithLabelValues("error").Inc()
		log.Printf("mortgage: failed to save calculation history: %v", err)
		return dto, nil
	}
	metrics.HistoryWrites.WithLabelValues("ok").Inc()

	dto.CalculationID = c.CalculationID
	dto.Persisted = true
	if !c.CreatedAt.IsZero() {
		dto.CreatedAt = c.CreatedAt.UTC()
	}
	return dto, nil
}

// History returns up to limit stored calculations, newest first.
func (u *Usecase) History(ctx context.Context, limit int) ([]CalculationDTO, error) {
	if u.repo == nil {
		return nil, ErrHistoryDisabled
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	rows, err := u.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]CalculationDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, toDTO(c))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, calculationID string) (*CalculationDTO, error) {
	if u.repo == nil {
		return nil, ErrHistoryDisabled
	}
	c, err := u.repo.GetByCalculationID(ctx, calculationID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(*c)
	return &dto, nil
}

func toDTO(c mortgage.Calculation) CalculationDTO {
	return CalculationDTO{
		CalculationID: c.CalculationID,
		LoanResult: LoanResult{
			MonthlyPayment: c.MonthlyPayment,
			TotalInterest:  c.TotalInterest,
			TotalPayment:   c.TotalPayment,
			LoanAmount:     c.LoanAmount,
			InterestRate:   c.InterestRate,
			LoanTermYears:  c.LoanTermYears,
		},
		Persisted: true,
		CreatedAt: c.CreatedAt.UTC(),
	}
}
