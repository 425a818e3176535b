package ledger

// ReceiptFile is an uploaded receipt read into memory at the request
// boundary.
type ReceiptFile struct {
	OriginalName string
	Data         []byte
}

// Input carries the raw form values of a create or update request.
// Receipt is nil when no file was uploaded.
type Input struct {
	Date            string
	Name            string
	TransactionType string
	Amount          string
	AadharNumber    string
	Phone           string
	Receipt         *ReceiptFile
}

// Config holds service configuration.
type Config struct {
	// ClearDeletesReceipts makes Clear remove the receipt files of the
	// wiped records instead of leaving them orphaned on disk.
	ClearDeletesReceipts bool
}
