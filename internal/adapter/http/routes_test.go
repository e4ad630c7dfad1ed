package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uc "mortgage-calculator/internal/usecase/mortgage"

	"github.com/labstack/echo/v4"
)

func TestRegister_Routes(t *testing.T) {
	e := newEchoWithValidator()
	calls := 0
	counting := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error { calls++; return next(c) }
	}
	Register(e, NewHandler(false, false), NewMortgageHandler(uc.NewUsecase(nil)), counting)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	if rec := do(stdhttp.MethodGet, "/health", ""); rec.Code != stdhttp.StatusOK {
		t.Fatalf("/health status = %d", rec.Code)
	}

	rec := do(stdhttp.MethodPost, "/mortgage/calculate", `{"loan_amount":150000,"interest_rate":4.25,"loan_term_years":15}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("/mortgage/calculate status = %d; body=%s", rec.Code, rec.Body.String())
	}
	if calls != 1 {
		t.Fatalf("calculate middleware calls = %d, want 1", calls)
	}

	// history disabled → 404 from handler, and middleware not applied to GET routes
	if rec := do(stdhttp.MethodGet, "/mortgage/calculations", ""); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("/mortgage/calculations status = %d", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("middleware leaked to GET routes: calls = %d", calls)
	}

	rec = do(stdhttp.MethodGet, "/metrics", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "mortgage_calculations_total") {
		t.Fatalf("/metrics missing mortgage_calculations_total")
	}
}
