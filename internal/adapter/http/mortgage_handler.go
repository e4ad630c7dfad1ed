package http

import (
	"errors"
	"net/http"
	"strconv"

	"mortgage-calculator/internal/usecase/mortgage"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type MortgageHandler struct{ uc *mortgage.Usecase }

func NewMortgageHandler(uc *mortgage.Usecase) *MortgageHandler { return &MortgageHandler{uc: uc} }

// Pointers tell a missing field apart from an explicit zero.
type calculateReq struct {
	LoanAmount    *float64 `json:"loan_amount"     validate:"required,gt=0"`
	InterestRate  *float64 `json:"interest_rate"   validate:"required,gt=0,lte=100"`
	LoanTermYears *float64 `json:"loan_term_years" validate:"required,intlike,gte=1,lte=50"`
}

func (r calculateReq) toLoanRequest() mortgage.LoanRequest {
	return mortgage.LoanRequest{
		LoanAmount:    *r.LoanAmount,
		InterestRate:  *r.InterestRate,
		LoanTermYears: int(*r.LoanTermYears),
	}
}

func (h *MortgageHandler) Calculate(c echo.Context) error {
	var req calculateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Calculate(c.Request().Context(), req.toLoanRequest())
	if err != nil {
		var ve mortgage.ValidationErrors
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: fromValidationErrors(ve),
			})
		case errors.Is(err, mortgage.ErrUnexpectedComputation):
			c.Logger().Errorf("mortgage calculation: %v", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "calculation failed"})
		default:
			c.Logger().Errorf("mortgage calculation: %v", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MortgageHandler) ListCalculations(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
		}
		limit = n
	}

	out, err := h.uc.History(c.Request().Context(), limit)
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"calculations": out})
}

func (h *MortgageHandler) GetCalculation(c echo.Context) error {
	id := c.Param("calculation_id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing calculation_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Map history errors → HTTP codes
func (h *MortgageHandler) historyError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, mortgage.ErrHistoryDisabled):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "history disabled"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		c.Logger().Errorf("mortgage history: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func fromValidationErrors(ve mortgage.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field, Message: e.Message})
	}
	return out
}
