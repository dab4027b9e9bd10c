package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/engine"
	"chequeflow/internal/logger"
	"chequeflow/internal/model"
	"chequeflow/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DTOs
type ImportChequeRow struct {
	ChequeNumber string `json:"cheque_number" validate:"required,max=64"`
	Amount       string `json:"amount" validate:"required,numeric"`
	ClientName   string `json:"client_name" validate:"required,max=255"`
	IssueDate    string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ImportBatchRequest struct {
	FileName        string            `json:"file_name" validate:"required,max=255"`
	Rows            []ImportChequeRow `json:"rows" validate:"required,min=1,dive"`
	AllowDuplicates bool              `json:"allow_duplicates"`
	DuplicateReason string            `json:"duplicate_reason" validate:"max=500"`
}

type ChequeListQuery struct {
	DocumentID *uuid.UUID
	Status     string
	Search     string
	Page       int
	Limit      int
}

type SetStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

type BatchResult struct {
	Changed  []model.Cheque `json:"changed"`
	Skipped  int            `json:"skipped"`
	Failures []BatchFailure `json:"failures"`
}

type PrintResponse struct {
	Printed         []model.Cheque       `json:"printed"`
	Slips           []engine.Slip        `json:"slips"`
	Excluded        []engine.Shortfall   `json:"excluded"`
	Unprintable     []engine.Unprintable `json:"unprintable"`
	AlreadyLocked   []model.Cheque       `json:"already_locked"`
	LockedDocuments []uuid.UUID          `json:"locked_documents"`
	Failures        []BatchFailure       `json:"failures"`
}

type ChequeService interface {
	ImportBatch(ctx context.Context, actor uuid.UUID, req ImportBatchRequest) (*model.Document, error)
	ListCheques(ctx context.Context, query ChequeListQuery) ([]model.Cheque, int64, error)
	GetCheque(ctx context.Context, id uuid.UUID) (*model.Cheque, error)
	SetStatus(ctx context.Context, actor, id uuid.UUID, req SetStatusRequest) (*model.Cheque, error)
	Sign(ctx context.Context, actor, id uuid.UUID) (*model.Cheque, error)
	UpdateIssueDate(ctx context.Context, actor, id uuid.UUID, date time.Time) (*model.Cheque, error)
	UnlockPrinted(ctx context.Context, actor, id uuid.UUID, reason string) (*model.Cheque, error)
	SelectAll(ctx context.Context, actor, documentID uuid.UUID, approve bool) (*BatchResult, error)
	PreviewPrint(ctx context.Context, documentID *uuid.UUID) (*engine.PrintPlan, error)
	Print(ctx context.Context, actor uuid.UUID, documentID *uuid.UUID) (*PrintResponse, error)
	DetectDuplicates(ctx context.Context, documentID *uuid.UUID) ([]model.Cheque, error)
}

type chequeService struct {
	chequeRepo   repository.ChequeRepository
	documentRepo repository.DocumentRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	events       EventPublisher
	validate     *validator.Validate

	// prior statuses recorded by SelectAll, per document
	priorsMu sync.Mutex
	priors   map[uuid.UUID]engine.PriorStatuses
}

func NewChequeService(
	chequeRepo repository.ChequeRepository,
	documentRepo repository.DocumentRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) ChequeService {
	return &chequeService{
		chequeRepo:   chequeRepo,
		documentRepo: documentRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		events:       publisherOrNoop(events),
		validate:     validator.New(),
		priors:       make(map[uuid.UUID]engine.PriorStatuses),
	}
}

// ImportBatch stores a parsed spreadsheet as a new document. Every cheque
// starts Pending with no signatures regardless of the source data. A batch
// containing duplicates is rejected unless AllowDuplicates is set together with
// a DuplicateReason, which is kept in the audit trail.
func (s *chequeService) ImportBatch(ctx context.Context, actor uuid.UUID, req ImportBatchRequest) (*model.Document, error) {
	req.FileName = strings.TrimSpace(req.FileName)
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	doc := &model.Document{ID: uuid.New(), FileName: req.FileName}
	cheques := make([]model.Cheque, 0, len(req.Rows))
	for i, row := range req.Rows {
		c, err := chequeFromRow(doc.ID, row)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("rows[%d]", i), err.Error())
		}
		cheques = append(cheques, c)
	}

	details := map[string]interface{}{"cheques": len(cheques)}
	if dups := engine.DetectDuplicates(cheques); len(dups) > 0 {
		if !req.AllowDuplicates {
			return nil, &apperrors.DuplicateBatchError{Count: len(dups)}
		}
		reason := strings.TrimSpace(req.DuplicateReason)
		if reason == "" {
			return nil, apperrors.NewValidationError("duplicate_reason",
				"A reason is required to import a batch containing duplicate cheques")
		}
		details["duplicates"] = len(dups)
		details["duplicate_reason"] = reason
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.documentRepo.Create(txCtx, doc); err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}
		if err := s.chequeRepo.CreateBatch(txCtx, cheques); err != nil {
			return fmt.Errorf("failed to create cheques: %w", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionImportDocument, doc.ID.String(), doc.FileName, details)
	})
	if err != nil {
		return nil, apperrors.NewPersistenceError("import document", err)
	}

	doc.Cheques = cheques
	s.events.Publish(EventDocumentImported, map[string]interface{}{"document_id": doc.ID, "cheques": len(cheques)})
	return doc, nil
}

func chequeFromRow(documentID uuid.UUID, row ImportChequeRow) (model.Cheque, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return model.Cheque{}, fmt.Errorf("invalid amount %q", row.Amount)
	}
	if amount.IsNegative() {
		return model.Cheque{}, fmt.Errorf("amount must not be negative")
	}

	c := model.Cheque{
		ID:           uuid.New(),
		DocumentID:   documentID,
		ChequeNumber: strings.TrimSpace(row.ChequeNumber),
		Amount:       amount.Round(2),
		ClientName:   strings.TrimSpace(row.ClientName),
		Status:       model.StatusPending,
	}
	if c.IssueDate, err = parseOptionalDate(row.IssueDate); err != nil {
		return model.Cheque{}, err
	}
	if c.Date, err = parseOptionalDate(row.Date); err != nil {
		return model.Cheque{}, err
	}
	return c, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", raw)
	}
	return &d, nil
}

func (s *chequeService) ListCheques(ctx context.Context, query ChequeListQuery) ([]model.Cheque, int64, error) {
	filter := repository.ChequeFilter{
		DocumentID: query.DocumentID,
		Page:       query.Page,
		Limit:      query.Limit,
	}
	if query.Status != "" {
		status, ok := model.ParseChequeStatus(query.Status)
		if !ok {
			return nil, 0, apperrors.NewValidationError("status", fmt.Sprintf("Unknown status %q", query.Status))
		}
		filter.Status = status
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		return s.searchCheques(ctx, filter, search)
	}

	cheques, total, err := s.chequeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, readErr("list cheques", err)
	}
	return cheques, total, nil
}

// searchCheques matches the query in memory over the working set so issue and
// transaction dates are compared in their YYYY-MM-DD form. Results are newest
// first, like the unfiltered listing.
func (s *chequeService) searchCheques(ctx context.Context, filter repository.ChequeFilter, search string) ([]model.Cheque, int64, error) {
	working, err := s.workingSet(ctx, filter.DocumentID)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]model.Cheque, 0)
	for _, c := range engine.Search(working, search) {
		if filter.Status == "" || c.Status == filter.Status {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []model.Cheque{}, total, nil
	}
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], total, nil
}

func (s *chequeService) GetCheque(ctx context.Context, id uuid.UUID) (*model.Cheque, error) {
	cheque, err := s.chequeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, readErr("load cheque", err)
	}
	return cheque, nil
}

// chequeMutation describes one single-cheque change: the engine rule, how to
// persist its result and what to record in the audit trail.
type chequeMutation struct {
	op      string
	action  string
	apply   func(model.Cheque) (model.Cheque, error)
	persist func(ctx context.Context, updated *model.Cheque) error
	details func(before, after model.Cheque) interface{}
}

// mutate loads, changes and persists the cheque inside one transaction so the
// engine rule sees the row as it is written.
func (s *chequeService) mutate(ctx context.Context, actor, id uuid.UUID, m chequeMutation) (*model.Cheque, error) {
	var before, updated model.Cheque
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.chequeRepo.FindByID(txCtx, id)
		if err != nil {
			return readErr("load cheque", err)
		}
		before = *current

		if updated, err = m.apply(before); err != nil {
			return err
		}
		if err := m.persist(txCtx, &updated); err != nil {
			if errors.Is(err, apperrors.ErrLocked) {
				return err
			}
			return apperrors.NewPersistenceError(m.op, err)
		}
		if err := writeAudit(txCtx, s.auditRepo, actor, m.action, updated.ID.String(), updated.ChequeNumber, m.details(before, updated)); err != nil {
			return apperrors.NewPersistenceError(m.op, err)
		}
		return nil
	})
	if err != nil {
		if !isReported(err) {
			err = apperrors.NewPersistenceError(m.op, err)
		}
		return nil, err
	}

	s.events.Publish(EventChequeUpdated, updated)
	return &updated, nil
}

func statusDetails(before, after model.Cheque) interface{} {
	return map[string]interface{}{
		"from":               before.Status,
		"to":                 after.Status,
		"remarks":            after.Remarks,
		"current_signatures": after.CurrentSignatures,
		"required":           engine.RequiredSignatures(after.Amount),
	}
}

func (s *chequeService) SetStatus(ctx context.Context, actor, id uuid.UUID, req SetStatusRequest) (*model.Cheque, error) {
	status, ok := model.ParseChequeStatus(req.Status)
	if !ok {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("Unknown status %q", req.Status))
	}

	return s.mutate(ctx, actor, id, chequeMutation{
		op:     "update cheque status",
		action: model.ActionChangeChequeStatus,
		apply: func(c model.Cheque) (model.Cheque, error) {
			return engine.SetStatus(c, status, req.Remarks, actor)
		},
		persist: s.chequeRepo.UpdateStatus,
		details: statusDetails,
	})
}

func (s *chequeService) Sign(ctx context.Context, actor, id uuid.UUID) (*model.Cheque, error) {
	return s.mutate(ctx, actor, id, chequeMutation{
		op:     "sign cheque",
		action: model.ActionSignCheque,
		apply: func(c model.Cheque) (model.Cheque, error) {
			return engine.Sign(c, actor)
		},
		persist: s.chequeRepo.UpdateStatus,
		details: statusDetails,
	})
}

func (s *chequeService) UpdateIssueDate(ctx context.Context, actor, id uuid.UUID, date time.Time) (*model.Cheque, error) {
	return s.mutate(ctx, actor, id, chequeMutation{
		op:     "update issue date",
		action: model.ActionChangeIssueDate,
		apply: func(c model.Cheque) (model.Cheque, error) {
			return engine.SetIssueDate(c, date)
		},
		persist: func(ctx context.Context, updated *model.Cheque) error {
			return s.chequeRepo.UpdateIssueDate(ctx, updated.ID, *updated.IssueDate)
		},
		details: func(before, after model.Cheque) interface{} {
			return map[string]interface{}{"from": before.IssueDate, "to": after.IssueDate}
		},
	})
}

func (s *chequeService) UnlockPrinted(ctx context.Context, actor, id uuid.UUID, reason string) (*model.Cheque, error) {
	return s.mutate(ctx, actor, id, chequeMutation{
		op:     "unlock cheque",
		action: model.ActionUnlockCheque,
		apply: func(c model.Cheque) (model.Cheque, error) {
			return engine.UnlockPrinted(c, reason)
		},
		persist: func(ctx context.Context, updated *model.Cheque) error {
			return s.chequeRepo.UnlockPrintedCheque(ctx, updated.ID, updated.UnlockReason)
		},
		details: func(before, after model.Cheque) interface{} {
			return map[string]interface{}{"reason": after.UnlockReason, "print_count": after.PrintCount}
		},
	})
}

// SelectAll approves, or reverts a previous bulk approval of, every cheque in
// the document. Each cheque is persisted on its own; a failed write is
// reported in Failures and leaves that cheque's bookkeeping untouched.
func (s *chequeService) SelectAll(ctx context.Context, actor, documentID uuid.UUID, approve bool) (*BatchResult, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID, false)
	if err != nil {
		return nil, readErr("load document", err)
	}
	if doc.IsLocked {
		return nil, apperrors.NewDocumentLockedError(doc.ID)
	}

	cheques, err := s.chequeRepo.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, readErr("list cheques", err)
	}

	s.priorsMu.Lock()
	defer s.priorsMu.Unlock()

	previous := s.priors[documentID]
	res := engine.SelectAll(cheques, approve, previous, actor)

	out := &BatchResult{
		Changed:  make([]model.Cheque, 0, len(res.Changed)),
		Skipped:  len(res.Skipped),
		Failures: make([]BatchFailure, 0, len(res.Failures)),
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, failureOf(f.Cheque, f.Err))
	}

	before := make(map[uuid.UUID]model.Cheque, len(cheques))
	for _, c := range cheques {
		before[c.ID] = c
	}

	log := logger.FromContext(ctx)
	for i := range res.Changed {
		updated := res.Changed[i]
		err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.chequeRepo.UpdateStatus(txCtx, &updated); err != nil {
				return err
			}
			return writeAudit(txCtx, s.auditRepo, actor, model.ActionChangeChequeStatus, updated.ID.String(), updated.ChequeNumber,
				statusDetails(before[updated.ID], updated))
		})
		if err != nil {
			perr := apperrors.NewPersistenceError("update cheque status", err)
			log.Warn().Err(err).Str("cheque_id", updated.ID.String()).Msg("bulk status update failed")
			out.Failures = append(out.Failures, failureOf(updated, perr))

			// keep the recorded prior in line with what is actually stored
			if approve {
				delete(res.Priors, updated.ID)
			} else if prior, ok := previous[updated.ID]; ok {
				res.Priors[updated.ID] = prior
			}
			continue
		}
		out.Changed = append(out.Changed, updated)
	}

	if len(res.Priors) == 0 {
		delete(s.priors, documentID)
	} else {
		s.priors[documentID] = res.Priors
	}

	if len(out.Changed) > 0 {
		s.events.Publish(EventChequesBulkUpdated, map[string]interface{}{
			"document_id": documentID,
			"approve":     approve,
			"changed":     len(out.Changed),
		})
	}
	return out, nil
}

func (s *chequeService) workingSet(ctx context.Context, documentID *uuid.UUID) ([]model.Cheque, error) {
	if documentID == nil {
		cheques, err := s.chequeRepo.ListAll(ctx)
		if err != nil {
			return nil, readErr("list cheques", err)
		}
		return cheques, nil
	}

	if _, err := s.documentRepo.FindByID(ctx, *documentID, false); err != nil {
		return nil, readErr("load document", err)
	}
	cheques, err := s.chequeRepo.ListByDocument(ctx, *documentID)
	if err != nil {
		return nil, readErr("list cheques", err)
	}
	return cheques, nil
}

func (s *chequeService) PreviewPrint(ctx context.Context, documentID *uuid.UUID) (*engine.PrintPlan, error) {
	working, err := s.workingSet(ctx, documentID)
	if err != nil {
		return nil, err
	}
	plan, err := engine.MarkPrinted(working)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Print confirms a print run over the working set. Every printed cheque and
// every containing document is persisted separately; failures are collected
// and never abort the rest of the run.
func (s *chequeService) Print(ctx context.Context, actor uuid.UUID, documentID *uuid.UUID) (*PrintResponse, error) {
	working, err := s.workingSet(ctx, documentID)
	if err != nil {
		return nil, err
	}
	plan, err := engine.MarkPrinted(working)
	if err != nil {
		return nil, err
	}
	result := engine.ConfirmPrint(plan)

	out := &PrintResponse{
		Printed:         make([]model.Cheque, 0, len(result.Printed)),
		Slips:           make([]engine.Slip, 0, len(result.Slips)),
		Excluded:        result.Excluded,
		Unprintable:     result.Unprintable,
		AlreadyLocked:   plan.AlreadyLocked,
		LockedDocuments: make([]uuid.UUID, 0, len(result.DocumentIDs)),
		Failures:        []BatchFailure{},
	}

	log := logger.FromContext(ctx)
	printedDocs := make(map[uuid.UUID]bool)
	for i, c := range result.Printed {
		err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.chequeRepo.IncrementPrintCount(txCtx, c.ID); err != nil {
				return err
			}
			return writeAudit(txCtx, s.auditRepo, actor, model.ActionPrintCheque, c.ID.String(), c.ChequeNumber,
				map[string]interface{}{
					"print_count":     c.PrintCount,
					"amount":          c.Amount.StringFixed(2),
					"amount_in_words": result.Slips[i].AmountInWords,
				})
		})
		if err != nil {
			log.Warn().Err(err).Str("cheque_id", c.ID.String()).Msg("failed to record print")
			out.Failures = append(out.Failures, failureOf(c, apperrors.NewPersistenceError("record print", err)))
			continue
		}
		out.Printed = append(out.Printed, c)
		out.Slips = append(out.Slips, result.Slips[i])
		printedDocs[c.DocumentID] = true
	}

	for _, docID := range result.DocumentIDs {
		if !printedDocs[docID] {
			continue
		}
		err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.documentRepo.LockDocument(txCtx, docID); err != nil {
				return err
			}
			return writeAudit(txCtx, s.auditRepo, actor, model.ActionLockDocument, docID.String(), "",
				map[string]interface{}{"reason": "printed"})
		})
		if err != nil {
			log.Warn().Err(err).Str("document_id", docID.String()).Msg("failed to lock document")
			out.Failures = append(out.Failures, BatchFailure{
				DocumentID: docID.String(),
				Error:      apperrors.NewPersistenceError("lock document", err).Error(),
			})
			continue
		}
		out.LockedDocuments = append(out.LockedDocuments, docID)
	}

	if len(out.Printed) > 0 {
		s.events.Publish(EventChequesPrinted, map[string]interface{}{
			"printed":          len(out.Printed),
			"locked_documents": out.LockedDocuments,
		})
	}
	return out, nil
}

func (s *chequeService) DetectDuplicates(ctx context.Context, documentID *uuid.UUID) ([]model.Cheque, error) {
	working, err := s.workingSet(ctx, documentID)
	if err != nil {
		return nil, err
	}
	dups := engine.DetectDuplicates(working)
	if dups == nil {
		dups = []model.Cheque{}
	}
	return dups, nil
}
