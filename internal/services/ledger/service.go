// Package ledger orchestrates the transaction record operations:
// create, update, delete, list, export and clear. It validates input,
// keeps the collection sorted newest-first and persists it after every
// mutation.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"kosh/internal/daterange"
	"kosh/internal/models"
	"kosh/internal/validation"
)

// Service is the transaction ledger API used by the HTTP handlers.
type Service interface {
	List(ctx context.Context, q daterange.Query) ([]models.Transaction, error)
	Create(ctx context.Context, in Input) (*models.Transaction, int, error)
	Update(ctx context.Context, id string, in Input) (*models.Transaction, error)
	Delete(ctx context.Context, id string) (int, error)
	Clear(ctx context.Context) error
	Export(ctx context.Context, q daterange.Query) ([]byte, string, error)
}

type service struct {
	store    Store
	receipts ReceiptRepository
	exporter Exporter
	config   Config
	now      func() time.Time
}

// NewService creates a ledger service.
func NewService(store Store, receipts ReceiptRepository, exporter Exporter, config Config) Service {
	if store == nil {
		panic("store is required")
	}
	if receipts == nil {
		panic("receipts is required")
	}
	if exporter == nil {
		panic("exporter is required")
	}
	return &service{
		store:    store,
		receipts: receipts,
		exporter: exporter,
		config:   config,
		now:      time.Now,
	}
}

// List returns the full collection, or the subset inside the requested
// window when a range was given.
func (s *service) List(_ context.Context, q daterange.Query) ([]models.Transaction, error) {
	all := s.store.LoadAll()
	if q.Empty() {
		return all, nil
	}
	return daterange.Filter(all, q.Compute(s.now())), nil
}

// Create validates the input, assigns an id and creation timestamp,
// stores the optional receipt and persists the grown collection.
// It returns the new record and the collection size.
func (s *service) Create(_ context.Context, in Input) (*models.Transaction, int, error) {
	fields, err := validation.Transaction(in.Date, in.Name, in.TransactionType, in.Amount, in.AadharNumber, in.Phone)
	if err != nil {
		return nil, 0, err
	}

	tx := models.Transaction{
		ID:              uuid.NewString(),
		Date:            fields.Date,
		Name:            fields.Name,
		TransactionType: fields.TransactionType,
		Amount:          fields.Amount,
		AadharNumber:    fields.AadharNumber,
		Phone:           fields.Phone,
		CreatedAt:       s.timestamp(),
	}

	if in.Receipt != nil {
		stored, err := s.receipts.Store(in.Receipt.OriginalName, in.Receipt.Data)
		if err != nil {
			return nil, 0, fmt.Errorf("store receipt: %w", err)
		}
		tx.ReceiptOriginalName = stored.OriginalName
		tx.ReceiptStoredName = stored.StoredName
		tx.ReceiptURL = stored.URL
	}

	all := append(s.store.LoadAll(), tx)
	sortByDateDesc(all)
	if err := s.store.SaveAll(all); err != nil {
		return nil, 0, err
	}
	return &tx, len(all), nil
}

// Update re-validates and rewrites the record with the given id. A new
// receipt replaces the previous one; the old file is deleted first.
func (s *service) Update(_ context.Context, id string, in Input) (*models.Transaction, error) {
	all := s.store.LoadAll()
	idx := indexByID(all, id)
	if idx < 0 {
		return nil, ErrTransactionNotFound
	}

	fields, err := validation.Transaction(in.Date, in.Name, in.TransactionType, in.Amount, in.AadharNumber, in.Phone)
	if err != nil {
		return nil, err
	}

	tx := &all[idx]
	tx.Date = fields.Date
	tx.Name = fields.Name
	tx.TransactionType = fields.TransactionType
	tx.Amount = fields.Amount
	tx.AadharNumber = fields.AadharNumber
	tx.Phone = fields.Phone
	tx.UpdatedAt = s.timestamp()

	if in.Receipt != nil {
		if tx.HasReceipt() {
			s.receipts.Delete(tx.ReceiptStoredName)
		}
		stored, err := s.receipts.Store(in.Receipt.OriginalName, in.Receipt.Data)
		if err != nil {
			return nil, fmt.Errorf("store receipt: %w", err)
		}
		tx.ReceiptOriginalName = stored.OriginalName
		tx.ReceiptStoredName = stored.StoredName
		tx.ReceiptURL = stored.URL
	}

	updated := *tx
	sortByDateDesc(all)
	if err := s.store.SaveAll(all); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record with the given id along with its stored
// receipt file, and returns the remaining collection size.
func (s *service) Delete(_ context.Context, id string) (int, error) {
	all := s.store.LoadAll()
	idx := indexByID(all, id)
	if idx < 0 {
		return 0, ErrTransactionNotFound
	}

	if all[idx].HasReceipt() {
		s.receipts.Delete(all[idx].ReceiptStoredName)
	}

	all = append(all[:idx], all[idx+1:]...)
	if err := s.store.SaveAll(all); err != nil {
		return 0, err
	}
	return len(all), nil
}

// Clear wipes the whole collection. Receipt files are only removed when
// the service is configured to cascade.
func (s *service) Clear(_ context.Context) error {
	if s.config.ClearDeletesReceipts {
		for _, tx := range s.store.LoadAll() {
			if tx.HasReceipt() {
				s.receipts.Delete(tx.ReceiptStoredName)
			}
		}
	}
	return s.store.SaveAll([]models.Transaction{})
}

// Export filters the collection by the requested window and renders it
// as a spreadsheet. The returned filename encodes the selection.
func (s *service) Export(_ context.Context, q daterange.Query) ([]byte, string, error) {
	filtered := daterange.Filter(s.store.LoadAll(), q.Compute(s.now()))
	data, err := s.exporter.Export(filtered)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("transactions_%s.xlsx", q.Label()), nil
}

func (s *service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func indexByID(list []models.Transaction, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// sortByDateDesc keeps the collection non-increasing by date. The sort
// is stable so same-day records keep their insertion order.
func sortByDateDesc(list []models.Transaction) {
	sort.SliceStable(list, func(i, j int) bool {
		return models.ParseDMY(list[i].Date).After(models.ParseDMY(list[j].Date))
	})
}
