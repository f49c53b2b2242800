package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLookupCategory(t *testing.T) {
	t.Run("known_expense", func(t *testing.T) {
		info := LookupCategory(TransactionTypeExpense, "food")
		if !info.Known || info.Label != "Food" || info.Icon != "🍔" {
			t.Errorf("unexpected info: %+v", info)
		}
	})

	t.Run("other_differs_by_type", func(t *testing.T) {
		exp := LookupCategory(TransactionTypeExpense, "other")
		inc := LookupCategory(TransactionTypeIncome, "other")
		if !exp.Known || !inc.Known {
			t.Fatal("other should be known in both vocabularies")
		}
		if exp.Icon == inc.Icon {
			t.Errorf("expected distinct icons, both %q", exp.Icon)
		}
	})

	t.Run("unknown_code", func(t *testing.T) {
		info := LookupCategory(TransactionTypeIncome, "lottery")
		if info.Known {
			t.Error("lottery should not be known")
		}
		if info.Label != "lottery" || info.Icon != unknownIcon || info.Color != unknownColor {
			t.Errorf("unexpected unknown variant: %+v", info)
		}
	})

	t.Run("vocabularies_are_disjoint_by_type", func(t *testing.T) {
		if IsKnownCategory(TransactionTypeIncome, "food") {
			t.Error("food is not an income category")
		}
		if IsKnownCategory(TransactionTypeExpense, "salary") {
			t.Error("salary is not an expense category")
		}
	})

	t.Run("unsupported_type", func(t *testing.T) {
		if CategoriesFor("transfer") != nil {
			t.Error("expected nil vocabulary")
		}
		if IsKnownCategory("transfer", "food") {
			t.Error("no category is known for an unsupported type")
		}
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`50`, "50"},
		{`12.75`, "12.75"},
		{`"12.50"`, "12.5"},
		{`" 3 "`, "3"},
		{`"abc"`, "0"},
		{`null`, "0"},
		{`true`, "0"},
		{``, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got := ParseAmount(json.RawMessage(tc.raw))
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("ParseAmount(%s) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-10-12T10:00:00.000Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2025, 10, 12, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", got)
	}

	got, err = ParseDate("2025-10-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", got)
	}

	if _, err := ParseDate("12/10/2025"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRecordTagging(t *testing.T) {
	r := Record{
		ID:       "r1",
		Amount:   decimal.NewFromInt(9),
		Category: "bills",
		Date:     time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	tx := r.Tag(TransactionTypeExpense)
	if tx.Type != TransactionTypeExpense || tx.ID != "r1" {
		t.Errorf("unexpected transaction: %+v", tx)
	}

	data, err := json.Marshal(tx.Record())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]interface{}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := wire["type"]; ok {
		t.Error("persisted record must not carry a type")
	}
	if wire["amount"] != 9.0 {
		t.Errorf("expected amount as JSON number, got %v", wire["amount"])
	}
}

func TestAmountMarshalsAsNumber(t *testing.T) {
	prev := decimal.MarshalJSONWithoutQuotes
	decimal.MarshalJSONWithoutQuotes = false
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = prev })

	tx := Transaction{
		ID:       "t1",
		Type:     TransactionTypeIncome,
		Amount:   decimal.RequireFromString("1234.50"),
		Category: "salary",
		Date:     time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	for name, v := range map[string]any{"transaction": tx, "record": tx.Record()} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		if !strings.Contains(string(data), `"amount":1234.5,`) {
			t.Errorf("%s: expected numeric amount, got %s", name, data)
		}
	}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Amount.Equal(tx.Amount) || back.Type != tx.Type {
		t.Errorf("round trip mismatch: %+v", back)
	}
}
