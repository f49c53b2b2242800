package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Record is the persisted shape of a transaction. The type is implied by
// the collection the record lives in and is never stored.
type Record struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// MarshalJSON writes the amount as a JSON number.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string      `json:"id"`
		Amount      json.Number `json:"amount"`
		Category    string      `json:"category"`
		Description string      `json:"description"`
		Date        time.Time   `json:"date"`
	}{r.ID, json.Number(r.Amount.String()), r.Category, r.Description, r.Date})
}

type recordWire struct {
	ID          json.RawMessage `json:"id"`
	Amount      json.RawMessage `json:"amount"`
	Category    json.RawMessage `json:"category"`
	Description json.RawMessage `json:"description"`
	Date        json.RawMessage `json:"date"`
}

// UnmarshalJSON decodes a stored record. A missing or malformed id or date
// is an error; a missing or non-numeric amount decodes as zero.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id, err := optionalString(w.ID)
	if err != nil || id == "" {
		return fmt.Errorf("record id must be a non-empty string")
	}

	rawDate, err := optionalString(w.Date)
	if err != nil || rawDate == "" {
		return fmt.Errorf("record %s: date must be a timestamp string", id)
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return fmt.Errorf("record %s: %w", id, err)
	}

	category, err := optionalString(w.Category)
	if err != nil {
		return fmt.Errorf("record %s: category must be a string", id)
	}
	description, err := optionalString(w.Description)
	if err != nil {
		return fmt.Errorf("record %s: description must be a string", id)
	}

	*r = Record{
		ID:          id,
		Amount:      ParseAmount(w.Amount),
		Category:    category,
		Description: description,
		Date:        date,
	}
	return nil
}

// ParseAmount coerces a raw JSON amount into a decimal. Numbers and numeric
// strings keep their value; anything else (absent, null, text) yields zero.
func ParseAmount(raw json.RawMessage) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero
		}
		s = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func optionalString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// Transaction is a record tagged with the collection it came from.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// MarshalJSON writes the amount as a JSON number.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string          `json:"id"`
		Type        TransactionType `json:"type"`
		Amount      json.Number     `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Date        time.Time       `json:"date"`
	}{t.ID, t.Type, json.Number(t.Amount.String()), t.Category, t.Description, t.Date})
}

// Tag returns r as a transaction of type t.
func (r Record) Tag(t TransactionType) Transaction {
	return Transaction{
		ID:          r.ID,
		Type:        t,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
	}
}

// Record strips the type so the transaction can be persisted.
func (t Transaction) Record() Record {
	return Record{
		ID:          t.ID,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
	}
}

// Draft is a transaction awaiting creation. Amount is a pointer so that an
// absent amount can be told apart from a zero one; Date defaults to now.
type Draft struct {
	Amount      *decimal.Decimal
	Category    string
	Description string
	Date        *time.Time
}
