package repository

import (
	"errors"
	"fmt"

	"chequeflow/internal/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notFound converts gorm's record-not-found into the application sentinel.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	return err
}

// requireAffected turns a write that matched no rows into ErrNotFound.
func requireAffected(res *gorm.DB, what string) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	return nil
}

// requireUnlocked reports a guarded cheque write that matched no rows as
// locked. Callers load the row first, so a miss means it was printed meanwhile.
func requireUnlocked(res *gorm.DB, chequeID, documentID uuid.UUID) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewChequeLockedError(chequeID, documentID)
	}
	return nil
}
