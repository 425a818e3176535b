package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"kosh/internal/daterange"
	"kosh/internal/exporter"
	"kosh/internal/services/ledger"
	"kosh/internal/utils"
	"kosh/internal/validation"
)

// TransactionHandler exposes the ledger service over HTTP.
type TransactionHandler struct {
	service ledger.Service
}

// NewTransactionHandler creates a transaction handler.
func NewTransactionHandler(service ledger.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// ListTransactions handles GET /api/transactions.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), rangeQuery(c))
	if err != nil {
		return h.fail(c, "list", err)
	}
	return utils.Success(c, fiber.Map{"transactions": list})
}

// CreateTransaction handles POST /api/manual-entry.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	input, err := transactionInput(c)
	if err != nil {
		return h.fail(c, "create", err)
	}

	tx, total, err := h.service.Create(c.Context(), input)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return utils.Success(c, fiber.Map{
		"added":       1,
		"total":       total,
		"transaction": tx,
	})
}

// UpdateTransaction handles PUT /api/transactions/:id.
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	input, err := transactionInput(c)
	if err != nil {
		return h.fail(c, "update", err)
	}

	tx, err := h.service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return h.fail(c, "update", err)
	}
	return utils.Success(c, fiber.Map{
		"ok":          true,
		"transaction": tx,
	})
}

// DeleteTransaction handles DELETE /api/transactions/:id.
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	total, err := h.service.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "delete", err)
	}
	return utils.Success(c, fiber.Map{
		"ok":    true,
		"total": total,
	})
}

// ClearTransactions handles POST /api/clear.
func (h *TransactionHandler) ClearTransactions(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context()); err != nil {
		return h.fail(c, "clear", err)
	}
	return utils.Success(c, fiber.Map{"ok": true})
}

// DownloadExcel handles GET /api/download-excel.
func (h *TransactionHandler) DownloadExcel(c *fiber.Ctx) error {
	data, filename, err := h.service.Export(c.Context(), rangeQuery(c))
	if err != nil {
		return h.fail(c, "export", err)
	}

	c.Set(fiber.HeaderContentType, exporter.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(data)
}

// fail maps service errors onto HTTP statuses. Validation and not-found
// failures carry their message to the caller; anything else is logged
// and reported as a generic server error.
func (h *TransactionHandler) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, validation.ErrMissingField),
		errors.Is(err, validation.ErrInvalidIdentity),
		errors.Is(err, validation.ErrInvalidPhone),
		errors.Is(err, validation.ErrInvalidAmount),
		errors.Is(err, exporter.ErrEmptySelection):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return utils.NotFound(c, err.Error())
	}
	log.Printf("transaction %s error: %v", op, err)
	return utils.InternalError(c, fmt.Sprintf("Failed to %s transaction", op))
}

func rangeQuery(c *fiber.Ctx) daterange.Query {
	return daterange.Query{
		Range: c.Query("range"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	}
}

// transactionInput collects the multipart form fields and the optional
// receipt file into a service input.
func transactionInput(c *fiber.Ctx) (ledger.Input, error) {
	input := ledger.Input{
		Date:            c.FormValue("date"),
		Name:            c.FormValue("name"),
		TransactionType: c.FormValue("transactionType"),
		Amount:          c.FormValue("amount"),
		AadharNumber:    c.FormValue("aadharNumber"),
		Phone:           c.FormValue("phone"),
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		// Receipt is optional.
		return input, nil
	}

	src, err := file.Open()
	if err != nil {
		return input, fmt.Errorf("open receipt upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return input, fmt.Errorf("read receipt upload: %w", err)
	}

	input.Receipt = &ledger.ReceiptFile{
		OriginalName: file.Filename,
		Data:         data,
	}
	return input, nil
}
