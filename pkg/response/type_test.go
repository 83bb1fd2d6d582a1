package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"agency-content-ops/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	if got := string(b); got != `"2025-03-10"` {
		t.Errorf("expected \"2025-03-10\", got %s", got)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2025, 3, 10, 15, 30, 45, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if got := string(b); got != `"2025-03-10 15:30:45"` {
		t.Errorf("expected \"2025-03-10 15:30:45\", got %s", got)
	}
}
