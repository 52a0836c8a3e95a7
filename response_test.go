package homeworkbot

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// decode mimics the transport layer: JSON text in, wrapped Response out.
func decode(t *testing.T, body string) Response {
	t.Helper()

	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("invalid test JSON: %v", err)
	}
	return NewResponse(v)
}

func TestCheckResponse_Valid(t *testing.T) {
	resp := decode(t, `{"homeworks": [{"homework_name": "hw1", "status": "approved"}], "current_date": 1000}`)

	records, err := CheckResponse(resp)
	if err != nil {
		t.Fatalf("CheckResponse() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0]["homework_name"] != "hw1" {
		t.Errorf("records[0][homework_name] = %v, want hw1", records[0]["homework_name"])
	}
}

func TestCheckResponse_EmptyHomeworks(t *testing.T) {
	resp := decode(t, `{"homeworks": [], "current_date": 2000}`)

	records, err := CheckResponse(resp)
	if err != nil {
		t.Fatalf("CheckResponse() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestCheckResponse_MissingKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"missing homeworks", `{"current_date": 1000}`, []string{"homeworks"}},
		{"missing current_date", `{"homeworks": []}`, []string{"current_date"}},
		{"missing both", `{}`, []string{"homeworks", "current_date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckResponse(decode(t, tt.body))

			var invalidErr *InvalidResponseError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("CheckResponse() error = %v, want *InvalidResponseError", err)
			}
			if !reflect.DeepEqual(invalidErr.MissingKeys, tt.want) {
				t.Errorf("MissingKeys = %v, want %v", invalidErr.MissingKeys, tt.want)
			}
		})
	}
}

func TestCheckResponse_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"response is an array", `[{"homeworks": []}]`},
		{"response is a string", `"nope"`},
		{"response is null", `null`},
		{"homeworks is an object", `{"homeworks": {}, "current_date": 1}`},
		{"homeworks is a string", `{"homeworks": "none", "current_date": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckResponse(decode(t, tt.body))

			var invalidErr *InvalidResponseError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("CheckResponse() error = %v, want *InvalidResponseError", err)
			}
			if invalidErr.Reason == "" {
				t.Error("Reason is empty, want observed type")
			}
		})
	}
}

// A non-object entry yields a nil record; ParseStatus later rejects it as
// missing both keys. CheckResponse itself must not fail.
func TestCheckResponse_NonObjectEntry(t *testing.T) {
	resp := decode(t, `{"homeworks": ["oops"], "current_date": 1}`)

	records, err := CheckResponse(resp)
	if err != nil {
		t.Fatalf("CheckResponse() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0] != nil {
		t.Errorf("records[0] = %v, want nil", records[0])
	}
}

func TestResponse_CurrentDate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   int64
		wantOK bool
	}{
		{"present", `{"homeworks": [], "current_date": 1000}`, 1000, true},
		{"absent", `{"homeworks": []}`, 0, false},
		{"non-numeric", `{"current_date": "soon"}`, 0, false},
		{"not an object", `[]`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decode(t, tt.body).CurrentDate()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CurrentDate() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResponse_CurrentDate_IntValue(t *testing.T) {
	// fakes often build responses with Go ints rather than JSON float64s
	resp := NewResponse(map[string]any{"current_date": 42})

	got, ok := resp.CurrentDate()
	if !ok || got != 42 {
		t.Errorf("CurrentDate() = (%d, %v), want (42, true)", got, ok)
	}
}
