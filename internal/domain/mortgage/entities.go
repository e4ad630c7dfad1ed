package mortgage

import (
	"time"
)

// Table: mortgage_calculations (append-only history of computed results)
type Calculation struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (canonical UUID string)
	CalculationID  string    `gorm:"column:calculation_id;size:36;uniqueIndex:ux_mortgage_calculations_calculation_id" json:"calculation_id"`
	LoanAmount     float64   `gorm:"column:loan_amount;type:decimal(12,2);not null" json:"loan_amount"`
	InterestRate   float64   `gorm:"column:interest_rate;type:decimal(7,4);not null" json:"interest_rate"`
	LoanTermYears  int       `gorm:"column:loan_term_years;not null" json:"loan_term_years"`
	MonthlyPayment float64   `gorm:"column:monthly_payment;type:decimal(10,2);not null" json:"monthly_payment"`
	TotalInterest  float64   `gorm:"column:total_interest;type:decimal(12,2);not null" json:"total_interest"`
	TotalPayment   float64   `gorm:"column:total_payment;type:decimal(12,2);not null" json:"total_payment"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;index:idx_mortgage_calculations_created_at" json:"created_at"`
}

func (Calculation) TableName() string { return "mortgage_calculations" }
