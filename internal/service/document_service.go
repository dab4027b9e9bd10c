package service

import (
	"context"
	"strings"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/model"
	"chequeflow/internal/repository"

	"github.com/google/uuid"
)

type RenameDocumentRequest struct {
	FileName string `json:"file_name" binding:"required"`
}

type DocumentService interface {
	List(ctx context.Context, page, limit int) ([]model.Document, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Document, error)
	Rename(ctx context.Context, actor, id uuid.UUID, fileName string) (*model.Document, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
	Lock(ctx context.Context, actor, id uuid.UUID) (*model.Document, error)
}

type documentService struct {
	documentRepo repository.DocumentRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	events       EventPublisher
}

func NewDocumentService(
	documentRepo repository.DocumentRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		events:       publisherOrNoop(events),
	}
}

func (s *documentService) List(ctx context.Context, page, limit int) ([]model.Document, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	docs, total, err := s.documentRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, readErr("list documents", err)
	}
	return docs, total, nil
}

// Get returns the document together with its cheques.
func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	doc, err := s.documentRepo.FindByID(ctx, id, true)
	if err != nil {
		return nil, readErr("load document", err)
	}
	return doc, nil
}

func (s *documentService) Rename(ctx context.Context, actor, id uuid.UUID, fileName string) (*model.Document, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, apperrors.NewValidationError("file_name", "Document name cannot be empty")
	}

	doc, err := s.documentRepo.FindByID(ctx, id, false)
	if err != nil {
		return nil, readErr("load document", err)
	}
	oldName := doc.FileName

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.documentRepo.Rename(txCtx, id, fileName); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionRenameDocument, id.String(), fileName,
			map[string]string{"from": oldName, "to": fileName})
	})
	if err != nil {
		return nil, apperrors.NewPersistenceError("rename document", err)
	}

	doc.FileName = fileName
	s.events.Publish(EventDocumentUpdated, doc)
	return doc, nil
}

// Delete removes an unlocked document and its cheques. Printed documents are
// kept for the audit trail.
func (s *documentService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	doc, err := s.documentRepo.FindByID(ctx, id, false)
	if err != nil {
		return readErr("load document", err)
	}
	if doc.IsLocked {
		return apperrors.NewDocumentLockedError(id)
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.documentRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionDeleteDocument, id.String(), doc.FileName, nil)
	})
	if err != nil {
		return apperrors.NewPersistenceError("delete document", err)
	}

	s.events.Publish(EventDocumentDeleted, map[string]interface{}{"document_id": id})
	return nil
}

func (s *documentService) Lock(ctx context.Context, actor, id uuid.UUID) (*model.Document, error) {
	doc, err := s.documentRepo.FindByID(ctx, id, false)
	if err != nil {
		return nil, readErr("load document", err)
	}
	if doc.IsLocked {
		return doc, nil
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.documentRepo.LockDocument(txCtx, id); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionLockDocument, id.String(), doc.FileName,
			map[string]string{"reason": "manual"})
	})
	if err != nil {
		return nil, apperrors.NewPersistenceError("lock document", err)
	}

	doc.IsLocked = true
	s.events.Publish(EventDocumentUpdated, doc)
	return doc, nil
}
