package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_BearerHeaderInjected(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"id":"u1","name":"A"}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, Tokens: staticToken("tok-123")})
	if _, err := NewUserClient(client).Profile(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NoHeaderWhenLoggedOut(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"id":"u1"}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, Tokens: staticToken("")})
	if _, err := NewUserClient(client).Profile(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_ErrorStatusCarriesServerMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"No such user"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := NewUserClient(client).Profile(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.Status)
	}
	if apiErr.Message != "No such user" {
		t.Errorf("expected the server's message, got %q", apiErr.Message)
	}
}

func TestClient_ErrorStatusWithoutMessageGetsGenericText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := NewUserClient(client).Profile(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if apiErr.Message != "Request failed (502)" {
		t.Errorf("expected generic message, got %q", apiErr.Message)
	}
}

func TestClient_ErrorStatusWithSuccessBodyIsStillAnError(t *testing.T) {
	t.Parallel()

	// A misbehaving server sending success=true with a 500 must still be
	// treated as a failure; the status wins.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":true,"data":{"id":"u1"}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	if _, err := NewUserClient(client).Profile(context.Background()); err == nil {
		t.Fatal("expected an error for a 500 response regardless of body")
	}
}
