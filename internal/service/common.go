package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/model"
	"chequeflow/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Events pushed to websocket clients.
const (
	EventDocumentImported   = "document.imported"
	EventDocumentUpdated    = "document.updated"
	EventDocumentDeleted    = "document.deleted"
	EventChequeUpdated      = "cheque.updated"
	EventChequesBulkUpdated = "cheques.bulk_updated"
	EventChequesPrinted     = "cheques.printed"
	EventStatisticsSnapshot = "statistics.snapshot"
)

// EventPublisher delivers change notifications to connected clients.
// Implementations must not block.
type EventPublisher interface {
	Publish(event string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// BatchFailure reports one cheque a bulk operation could not complete.
type BatchFailure struct {
	ChequeID     string `json:"cheque_id,omitempty"`
	ChequeNumber string `json:"cheque_number,omitempty"`
	DocumentID   string `json:"document_id,omitempty"`
	Error        string `json:"error"`
}

func failureOf(c model.Cheque, err error) BatchFailure {
	return BatchFailure{ChequeID: c.ID.String(), ChequeNumber: c.ChequeNumber, Error: err.Error()}
}

// readErr keeps not-found errors as they are and wraps anything else as a
// persistence failure so callers can offer a retry.
func readErr(op string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return apperrors.NewPersistenceError(op, err)
}

// isReported tells whether err already carries an application error kind, as
// opposed to a raw backend failure such as a failed commit.
func isReported(err error) bool {
	for _, kind := range []error{apperrors.ErrNotFound, apperrors.ErrValidation, apperrors.ErrLocked, apperrors.ErrPersistence} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func actorPtr(actor uuid.UUID) *uuid.UUID {
	if actor == uuid.Nil {
		return nil
	}
	return &actor
}

func writeAudit(ctx context.Context, repo repository.AuditRepository, actor uuid.UUID, action, entityID, entityName string, details interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}
	entry := &model.AuditLog{
		UserID:     actorPtr(actor),
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(payload),
	}
	if err := repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// validationError converts the first validator failure into a user-facing ValidationError.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		msg = fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "datetime":
		msg = fmt.Sprintf("%s must be a date formatted as %s", fe.Field(), fe.Param())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}
	return apperrors.NewValidationError(fe.Namespace(), msg)
}
