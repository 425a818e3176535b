package ledger

import "kosh/internal/models"

// Store persists the full transaction collection.
type Store interface {
	LoadAll() []models.Transaction
	SaveAll(list []models.Transaction) error
}

// ReceiptRepository stores and removes uploaded receipt documents.
type ReceiptRepository interface {
	Store(originalName string, data []byte) (models.StoredReceipt, error)
	Delete(storedName string)
}

// Exporter renders a transaction selection into spreadsheet bytes.
type Exporter interface {
	Export(records []models.Transaction) ([]byte, error)
}
