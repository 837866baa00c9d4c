package service

import (
	"errors"

	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/store"
)

// translateStoreError maps store sentinels onto the domain error taxonomy.
// Unrecognized errors pass through unchanged and are treated as internal
// failures by the API layer.
func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUserNotFound):
		return domain.ErrUserNotFound
	case errors.Is(err, store.ErrTaskListNotFound):
		return domain.ErrTaskListNotFound
	case errors.Is(err, store.ErrTaskItemNotFound):
		return domain.ErrTaskItemNotFound
	case errors.Is(err, store.ErrEmailExists):
		return domain.ErrDuplicatedEmail
	default:
		return err
	}
}
