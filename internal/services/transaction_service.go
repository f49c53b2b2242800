package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"spendwise/internal/analytics"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/store"
	"spendwise/internal/uuid"
)

// MaxDescriptionLength is the longest description accepted on create.
const MaxDescriptionLength = 500

// Option configures a transaction service.
type Option func(*transactionService)

// WithClock sets the clock used to default missing dates and to stamp ids.
func WithClock(clock func() time.Time) Option {
	return func(s *transactionService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithStrictStore makes corrupt collections fail reads and writes instead of
// being treated as empty.
func WithStrictStore(strict bool) Option {
	return func(s *transactionService) {
		s.strict = strict
	}
}

// transactionService is the transaction repository over a record store.
// mu serializes the load-modify-save cycle of mutations.
type transactionService struct {
	mu     sync.Mutex
	store  store.RecordStore
	clock  func() time.Time
	ids    *uuid.Generator
	strict bool
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(st store.RecordStore, opts ...Option) TransactionServicer {
	s := &transactionService{
		store: st,
		clock: time.Now,
		ids:   &uuid.Generator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load reads one collection. Outside strict mode a corrupt collection is
// reported as empty so the next write replaces it.
func (s *transactionService) load(ctx context.Context, c store.Collection) ([]models.Record, error) {
	records, err := s.store.Read(ctx, c)
	if err == nil {
		return records, nil
	}
	if !s.strict && errors.Is(err, apperrors.ErrDataCorruption) {
		logger.Named("transactions").Warnw("treating corrupt collection as empty",
			"collection", c,
			"error", err,
		)
		return []models.Record{}, nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return nil, err
	}
	return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func (s *transactionService) save(ctx context.Context, c store.Collection, records []models.Record) error {
	if err := s.store.Write(ctx, c, records); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// List returns every transaction of type t in insertion order.
func (s *transactionService) List(ctx context.Context, t models.TransactionType) ([]models.Transaction, error) {
	c, err := store.CollectionFor(t)
	if err != nil {
		return nil, err
	}
	records, err := s.load(ctx, c)
	if err != nil {
		return nil, err
	}
	txs := make([]models.Transaction, len(records))
	for i, r := range records {
		txs[i] = r.Tag(t)
	}
	return txs, nil
}

// Add validates draft, assigns an id, defaults the date and appends the
// record to the collection of type t.
func (s *transactionService) Add(ctx context.Context, t models.TransactionType, draft models.Draft) (*models.Transaction, error) {
	c, err := store.CollectionFor(t)
	if err != nil {
		return nil, err
	}
	if err := validateDraft(t, draft); err != nil {
		return nil, err
	}

	now := s.clock()
	date := now
	if draft.Date != nil {
		date = *draft.Date
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, c)
	if err != nil {
		return nil, err
	}

	record := models.Record{
		ID:          s.ids.At(now),
		Amount:      *draft.Amount,
		Category:    draft.Category,
		Description: strings.TrimSpace(draft.Description),
		Date:        date,
	}
	if err := s.save(ctx, c, append(records, record)); err != nil {
		return nil, err
	}

	logger.Named("transactions").Infow("transaction added",
		"collection", c,
		"id", record.ID,
		"category", record.Category,
		"amount", record.Amount.String(),
	)

	tx := record.Tag(t)
	return &tx, nil
}

// Delete removes the record with id from the collection of type t and
// reports whether it existed. Unknown ids are not an error and leave the
// store untouched.
func (s *transactionService) Delete(ctx context.Context, t models.TransactionType, id string) (bool, error) {
	c, err := store.CollectionFor(t)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, c)
	if err != nil {
		return false, err
	}

	kept := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}

	if err := s.save(ctx, c, kept); err != nil {
		return false, err
	}
	logger.Named("transactions").Infow("transaction deleted", "collection", c, "id", id)
	return true, nil
}

func (s *transactionService) ListExpenses(ctx context.Context) ([]models.Transaction, error) {
	return s.List(ctx, models.TransactionTypeExpense)
}

func (s *transactionService) ListIncome(ctx context.Context) ([]models.Transaction, error) {
	return s.List(ctx, models.TransactionTypeIncome)
}

func (s *transactionService) AddExpense(ctx context.Context, draft models.Draft) (*models.Transaction, error) {
	return s.Add(ctx, models.TransactionTypeExpense, draft)
}

func (s *transactionService) AddIncome(ctx context.Context, draft models.Draft) (*models.Transaction, error) {
	return s.Add(ctx, models.TransactionTypeIncome, draft)
}

func (s *transactionService) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, models.TransactionTypeExpense, id)
	return err
}

func (s *transactionService) DeleteIncome(ctx context.Context, id string) error {
	_, err := s.Delete(ctx, models.TransactionTypeIncome, id)
	return err
}

// Snapshot reads both collections.
func (s *transactionService) Snapshot(ctx context.Context) (analytics.Snapshot, error) {
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	income, err := s.ListIncome(ctx)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	return analytics.Snapshot{Expenses: expenses, Income: income}, nil
}

// ListTransactions merges both collections, applies filter, orders by date
// (newest first) and returns the requested page with totals over the whole
// filtered set.
func (s *transactionService) ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.PageRequest) (*TransactionList, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(*filter.FromDate) {
		return nil, apperrors.Invalid("to_date", "to_date must not be before from_date")
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]models.Transaction, 0, len(snap.Expenses)+len(snap.Income))
	totals := TransactionTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range snap.All() {
		if !filter.matches(tx, query) {
			continue
		}
		matched = append(matched, tx)
		if tx.Type == models.TransactionTypeIncome {
			totals.Income = totals.Income.Add(tx.Amount)
		} else {
			totals.Expenses = totals.Expenses.Add(tx.Amount)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	totals.Income = totals.Income.Round(2)
	totals.Expenses = totals.Expenses.Round(2)
	totals.Net = totals.Income.Sub(totals.Expenses)

	return &TransactionList{
		PageResponse: pagination.Paginate(matched, page),
		Totals:       totals,
	}, nil
}

func (f TransactionFilter) matches(tx models.Transaction, query string) bool {
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.FromDate != nil && tx.Date.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && tx.Date.After(*f.ToDate) {
		return false
	}
	if query == "" {
		return true
	}
	label := models.LookupCategory(tx.Type, tx.Category).Label
	return strings.Contains(strings.ToLower(tx.Description), query) ||
		strings.Contains(strings.ToLower(tx.Category), query) ||
		strings.Contains(strings.ToLower(label), query)
}

// validateDraft rejects a draft before anything is persisted, naming the
// first offending field.
func validateDraft(t models.TransactionType, d models.Draft) error {
	if d.Amount == nil {
		return apperrors.Invalid("amount", "amount is required")
	}
	if d.Amount.IsNegative() {
		return apperrors.Invalid("amount", "amount must not be negative")
	}
	if strings.TrimSpace(d.Category) == "" {
		return apperrors.Invalid("category", "category is required")
	}
	if !models.IsKnownCategory(t, d.Category) {
		return apperrors.WithMessage(apperrors.ErrUnknownCategory,
			fmt.Sprintf("%q is not a valid %s category", d.Category, t))
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		return apperrors.Invalid("description",
			fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength))
	}
	return nil
}
