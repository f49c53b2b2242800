package testutil_test

import (
	"context"
	"testing"

	"spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/store"
	"spendwise/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"store_entries", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolation(t *testing.T) {
	db1 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db1)
	db2 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db2)

	if err := db1.Create(&models.StoreEntry{Key: "expenses", Value: "[]"}).Error; err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	var count int64
	db2.Model(&models.StoreEntry{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated database, found %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	st := store.NewMemoryStore()
	r1 := testutil.NewRecord("10.50", "food", testutil.ReferenceNow)
	r2 := testutil.NewRecord("3", "bills", testutil.ReferenceNow)
	if r1.ID == r2.ID {
		t.Fatal("fixture records should have unique ids")
	}

	testutil.SeedRecords(t, st, store.CollectionExpenses, r1, r2)

	got, err := st.Read(context.Background(), store.CollectionExpenses)
	testutil.AssertNoError(t, err)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	testutil.AssertAmount(t, got[0].Amount, "10.5")

	d := testutil.NewDraft("7.25", "salary", testutil.ReferenceNow)
	if d.Amount == nil || d.Date == nil {
		t.Fatal("draft should carry amount and date")
	}

	tx := testutil.NewTransaction(models.TransactionTypeIncome, "1", "salary", testutil.ReferenceNow)
	if tx.Type != models.TransactionTypeIncome {
		t.Errorf("expected income, got %s", tx.Type)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrDataCorruption, "custom message")
	testutil.AssertAppError(t, err, "DATA_CORRUPTION")
}

func TestAssertValidationError(t *testing.T) {
	testutil.AssertValidationError(t, errors.Invalid("amount", "amount is required"), "amount")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
