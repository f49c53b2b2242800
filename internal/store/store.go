// Package store implements the record store: a durable key-value substrate
// holding one JSON array of records per collection.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// Collection names a logical list of records in the store.
type Collection string

const (
	CollectionExpenses Collection = "expenses"
	CollectionIncome   Collection = "income"
)

// CollectionFor maps a transaction type onto the collection that persists it.
func CollectionFor(t models.TransactionType) (Collection, error) {
	switch t {
	case models.TransactionTypeExpense:
		return CollectionExpenses, nil
	case models.TransactionTypeIncome:
		return CollectionIncome, nil
	}
	return "", apperrors.ErrInvalidTransactionType
}

// RecordStore is the persistence contract consumed by the transaction
// repository. Read of an absent key yields an empty slice; Write replaces
// the whole collection.
type RecordStore interface {
	Read(ctx context.Context, c Collection) ([]models.Record, error)
	Write(ctx context.Context, c Collection, records []models.Record) error
}

// Decode parses a stored collection payload. Any payload that is not a JSON
// array of well-formed records is reported as ErrDataCorruption.
func Decode(c Collection, raw []byte) ([]models.Record, error) {
	if len(raw) == 0 {
		return []models.Record{}, nil
	}
	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataCorruption, fmt.Errorf("decode %s: %w", c, err))
	}
	if records == nil {
		// literal "null"
		records = []models.Record{}
	}
	return records, nil
}

// Encode serializes a collection for storage. A nil slice encodes as [].
func Encode(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return json.Marshal(records)
}
