// Package validation checks and normalizes manually entered transaction
// fields. All functions are pure: same inputs, same outputs, no side
// effects.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"kosh/internal/models"
)

// Validation errors
var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidIdentity = errors.New("invalid aadhar number")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidAmount   = errors.New("invalid amount")
)

var (
	aadharRegex   = regexp.MustCompile(`^\d{4} \d{4} \d{4}$`)
	phoneRegex    = regexp.MustCompile(`^\d{10}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// Fields holds the normalized result of a successful validation.
type Fields struct {
	Date            string
	Name            string
	TransactionType string
	Amount          float64
	AadharNumber    string
	Phone           string
}

// Transaction validates raw form values and returns their normalized
// form. Aadhar and phone are optional; empty values normalize to the
// "N/A" sentinel.
func Transaction(date, name, txType, amount, aadhar, phone string) (Fields, error) {
	date = strings.TrimSpace(date)
	name = strings.TrimSpace(name)
	txType = strings.TrimSpace(txType)
	amount = strings.TrimSpace(amount)

	if date == "" || name == "" || txType == "" || amount == "" {
		return Fields{}, fmt.Errorf("%w: date, name, transactionType, amount are required", ErrMissingField)
	}

	aadharOut := strings.TrimSpace(aadhar)
	if aadharOut != "" {
		if !aadharRegex.MatchString(aadharOut) {
			return Fields{}, fmt.Errorf("%w: expected format 1234 5678 1234", ErrInvalidIdentity)
		}
	} else {
		aadharOut = models.NotAvailable
	}

	phoneOut := strings.TrimSpace(phone)
	if phoneOut != "" {
		digits := nonDigitRegex.ReplaceAllString(phoneOut, "")
		if !phoneRegex.MatchString(digits) {
			return Fields{}, fmt.Errorf("%w: enter exactly 10 digits (e.g. 9876543210)", ErrInvalidPhone)
		}
		phoneOut = digits
	} else {
		phoneOut = models.NotAvailable
	}

	parsed, err := ParseAmount(amount)
	if err != nil {
		return Fields{}, err
	}

	return Fields{
		Date:            date,
		Name:            name,
		TransactionType: NormalizeType(txType),
		Amount:          parsed,
		AadharNumber:    aadharOut,
		Phone:           phoneOut,
	}, nil
}

// NormalizeType maps the known transaction type labels to their
// canonical spelling, case-insensitively. Unknown labels pass through
// unchanged.
func NormalizeType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "deposit":
		return models.TransactionTypeDeposit
	case "withdrawal":
		return models.TransactionTypeWithdrawal
	case "atm":
		return models.TransactionTypeATM
	}
	return t
}

// ParseAmount parses a currency value, tolerating thousands separators,
// and rounds it to 2 decimal places.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return math.Round(v*100) / 100, nil
}
