package service_test

import (
	"context"
	"sync"
	"time"

	"chequeflow/internal/model"
	"chequeflow/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- ChequeRepository ---

type MockChequeRepository struct {
	mock.Mock
}

func (m *MockChequeRepository) CreateBatch(ctx context.Context, cheques []model.Cheque) error {
	args := m.Called(ctx, cheques)
	return args.Error(0)
}

func (m *MockChequeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Cheque, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cheque), args.Error(1)
}

func (m *MockChequeRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]model.Cheque, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cheque), args.Error(1)
}

func (m *MockChequeRepository) List(ctx context.Context, filter repository.ChequeFilter) ([]model.Cheque, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Cheque), args.Get(1).(int64), args.Error(2)
}

func (m *MockChequeRepository) ListAll(ctx context.Context) ([]model.Cheque, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cheque), args.Error(1)
}

func (m *MockChequeRepository) UpdateStatus(ctx context.Context, cheque *model.Cheque) error {
	args := m.Called(ctx, cheque)
	return args.Error(0)
}

func (m *MockChequeRepository) IncrementPrintCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChequeRepository) UnlockPrintedCheque(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockChequeRepository) UpdateIssueDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	args := m.Called(ctx, id, date)
	return args.Error(0)
}

var _ repository.ChequeRepository = (*MockChequeRepository)(nil)

// --- DocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id uuid.UUID, withCheques bool) (*model.Document, error) {
	args := m.Called(ctx, id, withCheques)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context, page, limit int) ([]model.Document, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Document), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocumentRepository) Rename(ctx context.Context, id uuid.UUID, fileName string) error {
	args := m.Called(ctx, id, fileName)
	return args.Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) LockDocument(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repository.DocumentRepository = (*MockDocumentRepository)(nil)

// --- AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) List(ctx context.Context, filter repository.AuditFilter) ([]model.AuditLog, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.AuditLog), args.Get(1).(int64), args.Error(2)
}

var _ repository.AuditRepository = (*MockAuditRepository)(nil)

// --- helpers ---

// fakeTxManager runs fn inline without a database transaction.
type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type txMarker struct{}

// markingTxManager tags the context it hands to fn and can fail the commit.
type markingTxManager struct {
	calls     int
	commitErr error
}

func (m *markingTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.calls++
	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		return err
	}
	return m.commitErr
}

func inTx(ctx context.Context) bool {
	marked, _ := ctx.Value(txMarker{}).(bool)
	return marked
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(event string, _ interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func auditAction(action string) interface{} {
	return mock.MatchedBy(func(entry *model.AuditLog) bool {
		return entry.Action == action
	})
}
