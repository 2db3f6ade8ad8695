package models

import (
	"encoding/json"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{`600000`, 600000},
		{`"600000"`, 600000},
		{`"$450,000"`, 450000},
		{`"5.5%"`, 5.5},
		{`"garbage"`, 0},
		{`true`, 0},
		{`null`, 0},
	}
	for _, tc := range tests {
		var f FlexNumber
		if err := json.Unmarshal([]byte(tc.raw), &f); err != nil {
			t.Fatalf("FlexNumber(%s): unexpected error: %v", tc.raw, err)
		}
		if f.Float() != tc.expected {
			t.Errorf("FlexNumber(%s): expected %v, got %v", tc.raw, tc.expected, f.Float())
		}
	}
}

func TestFlexNumberInStruct(t *testing.T) {
	var input CashflowInput
	body := `{"purchasePrice": "$600,000", "lowerRentWeekly": 500, "depositPercent": "20%"}`
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.PurchasePrice.Float() != 600000 {
		t.Errorf("purchase price: expected 600000, got %v", input.PurchasePrice.Float())
	}
	if input.DepositPercent == nil || input.DepositPercent.Float() != 20 {
		t.Errorf("deposit percent override not captured: %v", input.DepositPercent)
	}
	if input.StampDuty != nil {
		t.Error("absent override should stay nil")
	}
}

func TestFloatOr(t *testing.T) {
	if got := FloatOr(nil, 42); got != 42 {
		t.Errorf("nil should fall back: got %v", got)
	}
	zero := FlexNumber(0)
	if got := FloatOr(&zero, 42); got != 0 {
		t.Errorf("explicit zero should win over the default: got %v", got)
	}
}
