package httputil

import (
	"encoding/json"
	"testing"
)

func TestNullable(t *testing.T) {
	type body struct {
		Parent Nullable[uint] `json:"parent_task_id"`
	}

	tests := []struct {
		name      string
		raw       string
		wantSet   bool
		wantValid bool
		wantValue uint
	}{
		{name: "absent", raw: `{}`, wantSet: false},
		{name: "null", raw: `{"parent_task_id":null}`, wantSet: true, wantValid: false},
		{name: "value", raw: `{"parent_task_id":42}`, wantSet: true, wantValid: true, wantValue: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			if err := json.Unmarshal([]byte(tt.raw), &b); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if b.Parent.Set != tt.wantSet || b.Parent.Valid != tt.wantValid || b.Parent.Value != tt.wantValue {
				t.Fatalf("got %+v", b.Parent)
			}
			if tt.wantValid && *b.Parent.Ptr() != tt.wantValue {
				t.Fatalf("Ptr returned wrong value")
			}
			if !tt.wantValid && b.Parent.Ptr() != nil {
				t.Fatalf("expected nil Ptr")
			}
		})
	}

	var b body
	if err := json.Unmarshal([]byte(`{"parent_task_id":"x"}`), &b); err == nil {
		t.Fatal("expected type error")
	}
}
