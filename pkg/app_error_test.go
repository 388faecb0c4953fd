package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if got := e.Error(); got != "INTERNAL_ERROR: An internal error occurred: dynamo down" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if body := e.ToHTTPError(); body.Code != "INTERNAL_ERROR" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_WithDetailsCopies(t *testing.T) {
	base := NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	detailed := base.WithDetails([]FieldError{{Field: "quantity", Message: "Must be greater than 0"}})

	if len(base.Details) != 0 {
		t.Fatalf("base error must stay without details")
	}
	body := detailed.ToHTTPError()
	if len(body.Details) != 1 || body.Details[0].Field != "quantity" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
	if got := base.Error(); got != "INVALID_ORDER_INPUT: Invalid order payload" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}
