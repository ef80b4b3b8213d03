package wizard

import (
	"errors"

	"listing-wizard/internal/application/drafts"
	"listing-wizard/internal/application/editors"
	"listing-wizard/internal/application/flow"
	uploadsvc "listing-wizard/internal/application/uploads"
	wizardsvc "listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"

	"github.com/gofiber/fiber/v2"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{flow.ErrSessionNotFound, fiber.StatusNotFound},
	{drafts.ErrNoDraft, fiber.StatusNotFound},

	{editors.ErrUnsupportedOp, fiber.StatusBadRequest},
	{editors.ErrInvalidValue, fiber.StatusBadRequest},
	{editors.ErrIndexOutOfRange, fiber.StatusBadRequest},
	{editors.ErrTooLong, fiber.StatusBadRequest},
	{editors.ErrUnknownStep, fiber.StatusBadRequest},
	{domain.ErrUnknownField, fiber.StatusBadRequest},
	{uploadsvc.ErrMissingCategory, fiber.StatusBadRequest},

	{editors.ErrEmptyTag, fiber.StatusUnprocessableEntity},
	{editors.ErrDuplicateTag, fiber.StatusUnprocessableEntity},
	{editors.ErrLastBed, fiber.StatusUnprocessableEntity},
	{editors.ErrIncomplete, fiber.StatusUnprocessableEntity},

	{editors.ErrAlreadySubmitting, fiber.StatusConflict},
	{flow.ErrWrongView, fiber.StatusConflict},

	{drafts.ErrNoStore, fiber.StatusNotImplemented},
	{editors.ErrNoMediaStore, fiber.StatusNotImplemented},
	{wizardsvc.ErrNoSubmitter, fiber.StatusNotImplemented},
}

// statusFor maps a wizard error to its HTTP status; 0 means unexpected.
func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return 0
}
