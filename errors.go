package homeworkbot

import (
	"fmt"
	"strings"
)

// InvalidResponseError reports an API reply that is structurally
// well-formed JSON but has the wrong shape: not an object, missing
// required keys, or a homeworks value of the wrong type.
type InvalidResponseError struct {
	// MissingKeys lists the required keys absent from the reply.
	// Empty when the failure is a type mismatch.
	MissingKeys []string

	// Reason describes a type mismatch, naming the observed type.
	// Empty when the failure is missing keys.
	Reason string
}

func (e *InvalidResponseError) Error() string {
	if len(e.MissingKeys) > 0 {
		return "invalid API response: missing keys: " + strings.Join(e.MissingKeys, ", ")
	}
	return "invalid API response: " + e.Reason
}

// MissingFieldError reports a homework record that lacks required keys.
type MissingFieldError struct {
	// Keys lists exactly the keys absent from the record.
	Keys []string
}

func (e *MissingFieldError) Error() string {
	return "homework record is missing keys: " + strings.Join(e.Keys, ", ")
}

// UnknownStatusError reports a homework status outside the fixed
// verdict vocabulary.
type UnknownStatusError struct {
	// Status is the offending value.
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status: %q", e.Status)
}
