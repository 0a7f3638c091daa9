// file: internals/features/billing/billingerr/errors.go
// Taksonomi error billing. Service mengembalikan sentinel (dibungkus %w),
// controller memetakan ke status HTTP lewat HTTPStatus.
package billingerr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrLeaseNotActive       = errors.New("lease is not active")
	ErrInvalidPeriod        = errors.New("invalid billing period")
	ErrMissingUsageData     = errors.New("missing usage data")
	ErrDuplicateUsage       = errors.New("duplicate usage record")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for period")
	ErrInvalidInvoiceState  = errors.New("invalid invoice state")
)

// HTTPStatus memetakan error billing ke status HTTP.
// Business-rule error tidak pernah di-retry; hanya race unique-constraint yang
// sudah diterjemahkan di boundary persistence sebelum sampai ke sini.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrLeaseNotActive),
		errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrInvalidInvoiceState):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrMissingUsageData):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicateUsage),
		errors.Is(err, ErrInvoiceAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
