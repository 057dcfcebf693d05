// Package remote holds the GORM-backed table gateways. Each gateway owns one
// table and converts driver failures into apperr kinds so the stores never see
// raw database errors. The database must be opened with TranslateError so
// constraint violations surface as gorm sentinel errors.
package remote

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"supportdesk-backend/apperr"
)

// translate maps a gorm error onto the typed taxonomy. notFoundMsg is the
// user-facing message for the zero-rows case.
func translate(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.NotFound, notFoundMsg, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(apperr.Conflict, "record already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Wrap(apperr.Validation, "referenced record does not exist", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperr.Wrap(apperr.Transport, "request cancelled", err)
	default:
		return apperr.Wrap(apperr.Transport, "database error", err)
	}
}
