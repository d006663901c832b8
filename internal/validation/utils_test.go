package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/errs"
)

var testValidator = validator.New()

type loginPayload struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (p *loginPayload) Validate() error {
	return testValidator.Struct(p)
}

type customPayload struct {
	Amount float64 `json:"amount"`
}

func (p *customPayload) Validate() error {
	if p.Amount <= 0 {
		return CustomValidationErrors{{Field: "amount", Message: "must be positive"}}
	}
	return nil
}

func newTestContext(t *testing.T, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newTestContext(t, `{"username":"trainer1","password":"correct-horse"}`)

	var p loginPayload
	if err := BindAndValidate(c, &p); err != nil {
		t.Fatalf("BindAndValidate() error = %v, want nil", err)
	}
	if p.Username != "trainer1" || p.Password != "correct-horse" {
		t.Errorf("bound payload = %+v, want fields from body", p)
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newTestContext(t, `{"username":`)

	var p loginPayload
	err := BindAndValidate(c, &p)
	if err == nil {
		t.Fatal("BindAndValidate() error = nil, want bad request")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", httpErr.Status, http.StatusBadRequest)
	}
	if httpErr.Message != "Malformed request body" {
		t.Errorf("Message = %q, want %q", httpErr.Message, "Malformed request body")
	}
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newTestContext(t, `{"username":"ab","password":"short"}`)

	var p loginPayload
	err := BindAndValidate(c, &p)
	if err == nil {
		t.Fatal("BindAndValidate() error = nil, want validation failure")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", httpErr.Status, http.StatusBadRequest)
	}
	if len(httpErr.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %+v", len(httpErr.Errors), httpErr.Errors)
	}

	want := map[string]string{
		"username": "must be at least 3 characters",
		"password": "must be at least 8 characters",
	}
	for _, fe := range httpErr.Errors {
		if msg, ok := want[fe.Field]; !ok || fe.Error != msg {
			t.Errorf("field %q error = %q, want %q", fe.Field, fe.Error, msg)
		}
	}
}

func TestBindAndValidateRequired(t *testing.T) {
	c := newTestContext(t, `{}`)

	var p loginPayload
	err := BindAndValidate(c, &p)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *errs.HTTPError", err)
	}
	for _, fe := range httpErr.Errors {
		if fe.Error != "is required" {
			t.Errorf("field %q error = %q, want %q", fe.Field, fe.Error, "is required")
		}
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newTestContext(t, `{"amount":-5}`)

	var p customPayload
	err := BindAndValidate(c, &p)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *errs.HTTPError", err)
	}
	if len(httpErr.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(httpErr.Errors))
	}
	if got := httpErr.Errors[0]; got.Field != "amount" || got.Error != "must be positive" {
		t.Errorf("field error = %+v, want amount/must be positive", got)
	}
}

func TestBindAndValidateOpaqueError(t *testing.T) {
	c := newTestContext(t, `{}`)

	var p opaquePayload
	err := BindAndValidate(c, &p)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *errs.HTTPError", err)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Error != "record is broken" {
		t.Errorf("Errors = %+v, want a single passthrough error", httpErr.Errors)
	}
}

type opaquePayload struct{}

func (p *opaquePayload) Validate() error {
	return errors.New("record is broken")
}
