package api

import (
	"errors"
	"testing"

	"parcel/internal/model"
)

func TestUnwrap_SuccessFalseUsesServerMessage(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"success":false,"message":"OTP expired"}`)
	_, err := unwrap[model.User](raw, ErrorOnNull, "Verification failed")
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "OTP expired" {
		t.Errorf("expected the server's message, got %q", apiErr.Message)
	}
}

func TestUnwrap_SuccessFalseWithoutMessageFallsBack(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"success":false}`)
	_, err := unwrap[model.User](raw, ErrorOnNull, "User not found")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if apiErr.Message != "User not found" {
		t.Errorf("expected fallback message, got %q", apiErr.Message)
	}
}

func TestUnwrap_NullData(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
	}{
		{"explicit null", `{"success":true,"data":null}`},
		{"absent field", `{"success":true}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// EmptyOnNull substitutes the zero value.
			list, err := unwrap[[]model.Address]([]byte(tc.raw), EmptyOnNull, "Failed to load addresses")
			if err != nil {
				t.Fatalf("EmptyOnNull: unexpected error: %v", err)
			}
			if len(list) != 0 {
				t.Errorf("EmptyOnNull: expected empty list, got %d entries", len(list))
			}

			// ErrorOnNull turns the missing payload into the fallback error.
			_, err = unwrap[model.User]([]byte(tc.raw), ErrorOnNull, "User not found")
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("ErrorOnNull: expected *Error, got %T (%v)", err, err)
			}
			if apiErr.Message != "User not found" {
				t.Errorf("ErrorOnNull: expected fallback message, got %q", apiErr.Message)
			}
		})
	}
}

func TestUnwrap_MalformedBodyFallsBack(t *testing.T) {
	t.Parallel()

	_, err := unwrap[model.User]([]byte(`<html>gateway timeout</html>`), ErrorOnNull, "User not found")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if apiErr.Message != "User not found" {
		t.Errorf("expected fallback message, got %q", apiErr.Message)
	}
}

func TestUnwrap_DecodesPayload(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"success":true,"data":{"id":"u1","name":"Asha","email":"asha@example.com"}}`)
	user, err := unwrap[model.User](raw, ErrorOnNull, "User not found")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Name != "Asha" {
		t.Errorf("unexpected payload: %+v", user)
	}
}
