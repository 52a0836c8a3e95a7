package practicum

import "fmt"

// RequestError reports a failure to obtain a reply from the API: either a
// network-layer error (connection refused, timeout, DNS failure) or a
// non-success HTTP status code.
type RequestError struct {
	// Endpoint is the URL the request was sent to.
	Endpoint string

	// StatusCode is the observed HTTP status code.
	// Zero when the request failed before receiving a response.
	StatusCode int

	// Err is the underlying cause, nil for HTTP-status failures.
	Err error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("endpoint %s returned status %d", e.Endpoint, e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that could not be decoded as JSON.
type ParseError struct {
	// Err is the underlying decoding error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse API response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
