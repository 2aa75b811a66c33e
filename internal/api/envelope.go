package api

import (
	"bytes"
	"encoding/json"

	"parcel/internal/model"
)

// NullPolicy names what a call does when the envelope decodes with
// success=true but data=null.
type NullPolicy int

const (
	// EmptyOnNull substitutes the payload type's zero value. Used by
	// list-returning and optional-payload calls.
	EmptyOnNull NullPolicy = iota

	// ErrorOnNull treats the missing payload as a failure with the
	// call's documented fallback message. Used by must-exist calls
	// (get profile, create/update address, and similar).
	ErrorOnNull
)

var jsonNull = []byte("null")

// unwrap decodes the common {success, data, message} envelope, applying
// the given null-payload policy. Failures always carry a human-readable
// message: the server's when present, the call's fallback otherwise.
func unwrap[T any](raw []byte, policy NullPolicy, fallback string) (T, error) {
	var zero T

	var env model.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, &Error{Message: fallback}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return zero, &Error{Message: msg}
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, jsonNull) {
		if policy == ErrorOnNull {
			return zero, &Error{Message: fallback}
		}
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, &Error{Message: fallback}
	}
	return out, nil
}

// unwrapNone decodes the envelope for calls whose payload the client does
// not use (cancel, delete, close).
func unwrapNone(raw []byte, fallback string) error {
	_, err := unwrap[json.RawMessage](raw, EmptyOnNull, fallback)
	return err
}
