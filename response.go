package homeworkbot

import "fmt"

// Record is a single homework entry from an API reply.
//
// Records are raw key-value mappings: the poller performs no per-entry
// validation, so [ParseStatus] is responsible for checking the keys it
// needs. A non-object entry in the homeworks sequence yields a nil Record,
// which ParseStatus rejects as missing both required keys.
type Record map[string]any

// Response is a decoded API reply prior to shape validation.
//
// Response wraps whatever JSON value the API returned, without assuming
// it is an object. Use [CheckResponse] to validate the shape and obtain
// the homework records, and [Response.CurrentDate] to read the cursor.
type Response struct {
	raw any
}

// NewResponse wraps a decoded JSON value in a [Response].
//
// This is the constructor used by the transport layer and by tests that
// drive the loop with canned replies.
func NewResponse(v any) Response {
	return Response{raw: v}
}

// CurrentDate returns the reply's current_date cursor value.
//
// The second return value reports whether the key was present and held an
// integer-like value. JSON numbers decode as float64, so both forms are
// accepted.
func (r Response) CurrentDate() (int64, bool) {
	obj, ok := r.raw.(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := obj["current_date"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// CheckResponse validates the shape of a raw API reply before any field
// is trusted.
//
// The reply must be a JSON object containing both the "homeworks" and
// "current_date" keys, and the homeworks value must be an array. Violations
// fail with an [InvalidResponseError] naming either the missing keys or the
// observed type. On success the homework records are returned unchanged;
// individual entries are not validated at this stage.
//
// CheckResponse has no side effects.
func CheckResponse(resp Response) ([]Record, error) {
	obj, ok := resp.raw.(map[string]any)
	if !ok {
		return nil, &InvalidResponseError{
			Reason: fmt.Sprintf("expected a JSON object, got %T", resp.raw),
		}
	}

	var missing []string
	if _, ok := obj["homeworks"]; !ok {
		missing = append(missing, "homeworks")
	}
	if _, ok := obj["current_date"]; !ok {
		missing = append(missing, "current_date")
	}
	if len(missing) > 0 {
		return nil, &InvalidResponseError{MissingKeys: missing}
	}

	list, ok := obj["homeworks"].([]any)
	if !ok {
		return nil, &InvalidResponseError{
			Reason: fmt.Sprintf("homeworks must be an array, got %T", obj["homeworks"]),
		}
	}

	records := make([]Record, 0, len(list))
	for _, item := range list {
		rec, _ := item.(map[string]any)
		records = append(records, Record(rec))
	}
	return records, nil
}
