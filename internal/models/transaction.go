package models

// Transaction types
const (
	TransactionTypeDeposit    = "Deposit"
	TransactionTypeWithdrawal = "Withdrawal"
	TransactionTypeATM        = "ATM"
)

// Sentinel value for an omitted aadhar or phone number.
const NotAvailable = "N/A"

// Transaction is one manually entered record. The json tags define the
// shape of the persisted document and of every API response.
type Transaction struct {
	ID                  string  `json:"id"`
	Date                string  `json:"date"` // dd/mm/yyyy
	Name                string  `json:"name"`
	TransactionType     string  `json:"transactionType"`
	Amount              float64 `json:"amount"`
	AadharNumber        string  `json:"aadharNumber"`
	Phone               string  `json:"phone"`
	ReceiptOriginalName string  `json:"receiptOriginalName,omitempty"`
	ReceiptStoredName   string  `json:"receiptStoredName,omitempty"`
	ReceiptURL          string  `json:"receiptUrl,omitempty"`
	CreatedAt           string  `json:"createdAt,omitempty"`
	UpdatedAt           string  `json:"updatedAt,omitempty"`
}

// HasReceipt reports whether a receipt file is attached to the record.
func (t *Transaction) HasReceipt() bool {
	return t.ReceiptStoredName != ""
}

// StoredReceipt describes a receipt file persisted by the receipt repository.
type StoredReceipt struct {
	OriginalName string
	StoredName   string
	URL          string
}
