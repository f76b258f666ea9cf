package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(E(KindInvalidInput, "bad")); got != http.StatusBadRequest {
		t.Fatalf("invalid input status = %d, want %d", got, http.StatusBadRequest)
	}
	if got := HTTPStatus(E(KindUnprocessable, "form rejected")); got != http.StatusUnprocessableEntity {
		t.Fatalf("unprocessable status = %d, want %d", got, http.StatusUnprocessableEntity)
	}
	if got := HTTPStatus(E(KindUnavailable, "unavailable")); got != http.StatusServiceUnavailable {
		t.Fatalf("unavailable status = %d, want %d", got, http.StatusServiceUnavailable)
	}
	if got := HTTPStatus(E(KindNotFound, "missing")); got != http.StatusNotFound {
		t.Fatalf("not-found status = %d, want %d", got, http.StatusNotFound)
	}
	if got := HTTPStatus(E(KindUnknown, "unknown")); got != http.StatusInternalServerError {
		t.Fatalf("unknown status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestHTTPStatusCoversNilAndUntyped(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("untyped status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestHTTPStatusUnwrapsTypedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handle form: %w", E(KindUnprocessable, "form rejected"))
	if got := HTTPStatus(wrapped); got != http.StatusUnprocessableEntity {
		t.Fatalf("wrapped status = %d, want %d", got, http.StatusUnprocessableEntity)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, " contact.email_invalid ", "bad email")); got != "contact.email_invalid" {
		t.Fatalf("LocalizationKey = %q, want contact.email_invalid", got)
	}
	if got := LocalizationKey(errors.New("boom")); got != "" {
		t.Fatalf("LocalizationKey for untyped error = %q, want empty", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q, want empty", got)
	}
}
