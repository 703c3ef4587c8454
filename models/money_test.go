package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyDecodesDecimalAmounts(t *testing.T) {
	body := `{"type": "EXPENSE", "amount": 12.34, "name": "lunch"}`

	var req CreateItemRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if req.Amount != 1234 {
		t.Errorf("amount = %d cents, want 1234", req.Amount)
	}
}

func TestMoneyDecodesWholeNumbers(t *testing.T) {
	tests := []struct {
		raw  string
		want Money
	}{
		{"100", 10000},
		{"0", 0},
		{"0.01", 1},
		{"99.999", 10000}, // rounds, never truncates
	}

	for _, tt := range tests {
		var m Money
		if err := json.Unmarshal([]byte(tt.raw), &m); err != nil {
			t.Errorf("decode %q failed: %v", tt.raw, err)
			continue
		}
		if m != tt.want {
			t.Errorf("decode %q = %d cents, want %d", tt.raw, m, tt.want)
		}
	}
}

func TestMoneyRejectsNonNumbers(t *testing.T) {
	for _, raw := range []string{`"12.34"`, "true", "null", "{}", "1e300"} {
		var m Money
		if err := json.Unmarshal([]byte(raw), &m); err == nil {
			t.Errorf("decode %q accepted as %d cents", raw, m)
		}
	}
}

func TestMoneyEncodesAsDecimal(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{1234, "12.34"},
		{0, "0.00"},
		{-50, "-0.50"},
		{100000, "1000.00"},
	}

	for _, tt := range tests {
		raw, err := json.Marshal(tt.in)
		if err != nil {
			t.Errorf("encode %d failed: %v", tt.in, err)
			continue
		}
		if string(raw) != tt.want {
			t.Errorf("encode %d = %s, want %s", tt.in, raw, tt.want)
		}

		var back Money
		if err := json.Unmarshal(raw, &back); err != nil || back != tt.in {
			t.Errorf("round trip of %d = %d (%v)", tt.in, back, err)
		}
	}
}
