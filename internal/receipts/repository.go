// Package receipts persists uploaded receipt documents on disk and
// owns the upload boundary rules (accepted content types, size cap).
package receipts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"kosh/internal/models"
)

// Upload boundary errors
var (
	ErrUnsupportedFileType = errors.New("only PDF or DOC/DOCX files are allowed")
	ErrFileTooLarge        = errors.New("receipt file exceeds the size limit")
)

// MaxFileSize is the upload cap for a single receipt.
const MaxFileSize = 15 << 20 // 15 MiB

// URLPrefix is the public path receipts are served under.
const URLPrefix = "/receipts"

// AllowedContentType reports whether a receipt content type is accepted
// at the upload boundary.
func AllowedContentType(ct string) bool {
	switch ct {
	case "application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return true
	}
	return false
}

// Repository stores receipt files under generated names in a single
// directory.
type Repository struct {
	dir string
}

// New creates a repository rooted at dir, creating it if missing.
func New(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipts directory: %w", err)
	}
	return &Repository{dir: dir}, nil
}

// Dir returns the directory receipts are stored in.
func (r *Repository) Dir() string { return r.dir }

// Store writes the receipt bytes under a generated collision-free name,
// keeping the original extension when it is a known document type.
func (r *Repository) Store(originalName string, data []byte) (models.StoredReceipt, error) {
	stored := uuid.NewString() + "." + safeExtension(originalName)
	if err := os.WriteFile(filepath.Join(r.dir, stored), data, 0o644); err != nil {
		return models.StoredReceipt{}, fmt.Errorf("store receipt: %w", err)
	}
	return models.StoredReceipt{
		OriginalName: originalName,
		StoredName:   stored,
		URL:          URLFor(stored),
	}, nil
}

// Delete removes a stored receipt. Cleanup is best-effort: a missing
// file or a failing filesystem is not an error.
func (r *Repository) Delete(storedName string) {
	if storedName == "" {
		return
	}
	_ = os.Remove(filepath.Join(r.dir, storedName))
}

// URLFor returns the public path a stored receipt is served under.
func URLFor(storedName string) string {
	return URLPrefix + "/" + storedName
}

func safeExtension(originalName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	switch ext {
	case "pdf", "doc", "docx":
		return ext
	}
	return "bin"
}
