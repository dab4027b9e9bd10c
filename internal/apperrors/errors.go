package apperrors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that a requested mutation violates a business rule.
var ErrValidation = errors.New("validation error")

// ErrLocked indicates a mutation attempted on a print-locked cheque or document.
var ErrLocked = errors.New("resource is locked")

// ErrPersistence indicates that a durable write failed. The caller decides whether to retry.
var ErrPersistence = errors.New("persistence error")

// ErrDuplicate indicates a batch containing duplicate cheques.
var ErrDuplicate = errors.New("duplicate cheques")

// ValidationError carries the user-facing reason a mutation was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LockedError is returned when a cheque or document is locked after printing.
// Only an explicit unlock with a reason makes the cheque mutable again.
type LockedError struct {
	ChequeID   uuid.UUID
	DocumentID uuid.UUID
}

func NewChequeLockedError(chequeID, documentID uuid.UUID) *LockedError {
	return &LockedError{ChequeID: chequeID, DocumentID: documentID}
}

func NewDocumentLockedError(documentID uuid.UUID) *LockedError {
	return &LockedError{DocumentID: documentID}
}

func (e *LockedError) Error() string {
	if e.ChequeID == uuid.Nil {
		return fmt.Sprintf("document %s is locked: documents are locked after printing to maintain the audit trail", e.DocumentID)
	}
	return fmt.Sprintf("cheque %s has been printed and is locked; unlock it with a reason before editing", e.ChequeID)
}

func (e *LockedError) Is(target error) bool {
	return target == ErrLocked
}

// PersistenceError wraps a failed backend write for a single operation.
type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// DuplicateBatchError rejects a batch so a human can review the duplicate groups.
type DuplicateBatchError struct {
	Count int
}

func (e *DuplicateBatchError) Error() string {
	return fmt.Sprintf("Found %d duplicate cheques. Please review before processing.", e.Count)
}

func (e *DuplicateBatchError) Is(target error) bool {
	return target == ErrDuplicate || target == ErrValidation
}
