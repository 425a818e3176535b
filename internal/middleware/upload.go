// Package middleware holds request-boundary checks that run before the
// handlers.
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"kosh/internal/receipts"
	"kosh/internal/utils"
)

// ReceiptUpload rejects oversized or non-document receipt uploads
// before any business logic runs. Requests without a receipt file pass
// through untouched.
func ReceiptUpload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("receipt")
		if err != nil {
			// No file attached; the field is optional.
			return c.Next()
		}
		if file.Size > receipts.MaxFileSize {
			return utils.BadRequest(c, receipts.ErrFileTooLarge.Error())
		}
		if !receipts.AllowedContentType(file.Header.Get("Content-Type")) {
			return utils.BadRequest(c, receipts.ErrUnsupportedFileType.Error())
		}
		return c.Next()
	}
}
