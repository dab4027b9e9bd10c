package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/engine"
	"chequeflow/internal/handler"
	"chequeflow/internal/middleware"
	"chequeflow/internal/model"
	"chequeflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ChequeService ---
type MockChequeService struct {
	mock.Mock
}

func (m *MockChequeService) ImportBatch(ctx context.Context, actor uuid.UUID, req service.ImportBatchRequest) (*model.Document, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}
func (m *MockChequeService) ListCheques(ctx context.Context, query service.ChequeListQuery) ([]model.Cheque, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Cheque), args.Get(1).(int64), args.Error(2)
}
func (m *MockChequeService) GetCheque(ctx context.Context, id uuid.UUID) (*model.Cheque, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cheque), args.Error(1)
}
func (m *MockChequeService) SetStatus(ctx context.Context, actor, id uuid.UUID, req service.SetStatusRequest) (*model.Cheque, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cheque), args.Error(1)
}
func (m *MockChequeService) Sign(ctx context.Context, actor, id uuid.UUID) (*model.Cheque, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cheque), args.Error(1)
}
func (m *MockChequeService) UpdateIssueDate(ctx context.Context, actor, id uuid.UUID, date time.Time) (*model.Cheque, error) {
	args := m.Called(ctx, actor, id, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cheque), args.Error(1)
}
func (m *MockChequeService) UnlockPrinted(ctx context.Context, actor, id uuid.UUID, reason string) (*model.Cheque, error) {
	args := m.Called(ctx, actor, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cheque), args.Error(1)
}
func (m *MockChequeService) SelectAll(ctx context.Context, actor, documentID uuid.UUID, approve bool) (*service.BatchResult, error) {
	args := m.Called(ctx, actor, documentID, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BatchResult), args.Error(1)
}
func (m *MockChequeService) PreviewPrint(ctx context.Context, documentID *uuid.UUID) (*engine.PrintPlan, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.PrintPlan), args.Error(1)
}
func (m *MockChequeService) Print(ctx context.Context, actor uuid.UUID, documentID *uuid.UUID) (*service.PrintResponse, error) {
	args := m.Called(ctx, actor, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PrintResponse), args.Error(1)
}
func (m *MockChequeService) DetectDuplicates(ctx context.Context, documentID *uuid.UUID) ([]model.Cheque, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cheque), args.Error(1)
}

var _ service.ChequeService = (*MockChequeService)(nil)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, page, limit int) ([]model.Document, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Document), args.Get(1).(int64), args.Error(2)
}
func (m *MockDocumentService) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}
func (m *MockDocumentService) Rename(ctx context.Context, actor, id uuid.UUID, fileName string) (*model.Document, error) {
	args := m.Called(ctx, actor, id, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}
func (m *MockDocumentService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
func (m *MockDocumentService) Lock(ctx context.Context, actor, id uuid.UUID) (*model.Document, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

var _ service.DocumentService = (*MockDocumentService)(nil)

// --- Test Suite Setup ---

type HandlerTestSuite struct {
	suite.Suite
	chequeService   *MockChequeService
	documentService *MockDocumentService
	router          *gin.Engine
	actor           uuid.UUID
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.chequeService = new(MockChequeService)
	s.documentService = new(MockDocumentService)
	s.actor = uuid.New()

	s.router = gin.New()
	handler.NewChequeHandler(s.chequeService).RegisterRoutes(s.router.Group(""))
	handler.NewDocumentHandler(s.documentService, s.chequeService).RegisterRoutes(s.router.Group(""))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.chequeService.AssertExpectations(s.T())
	s.documentService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) do(method, path string, body interface{}, withActor bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withActor {
		req.Header.Set(middleware.ActorHeader, s.actor.String())
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) TestSetStatus_Success() {
	id := uuid.New()
	req := service.SetStatusRequest{Status: "Approved"}
	s.chequeService.On("SetStatus", mock.Anything, s.actor, id, req).
		Return(&model.Cheque{ID: id, Status: model.StatusApproved, CurrentSignatures: 1}, nil).Once()

	w := s.do(http.MethodPut, "/api/cheques/"+id.String()+"/status", req, true)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Data model.Cheque `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(model.StatusApproved, body.Data.Status)
	s.Equal(1, body.Data.CurrentSignatures)
}

func (s *HandlerTestSuite) TestSetStatus_RequiresActor() {
	w := s.do(http.MethodPut, "/api/cheques/"+uuid.NewString()+"/status", service.SetStatusRequest{Status: "Approved"}, false)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestSetStatus_InvalidID() {
	w := s.do(http.MethodPut, "/api/cheques/not-a-uuid/status", service.SetStatusRequest{Status: "Approved"}, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestSetStatus_LockedCheque() {
	id := uuid.New()
	req := service.SetStatusRequest{Status: "Pending"}
	s.chequeService.On("SetStatus", mock.Anything, s.actor, id, req).
		Return(nil, apperrors.NewChequeLockedError(id, uuid.New())).Once()

	w := s.do(http.MethodPut, "/api/cheques/"+id.String()+"/status", req, true)

	s.Equal(http.StatusLocked, w.Code)
}

func (s *HandlerTestSuite) TestRequiredSignatures() {
	w := s.do(http.MethodGet, "/api/cheques/required-signatures?amount=1500.01", nil, false)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Required int `json:"required_signatures"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(2, body.Data.Required)

	bad := s.do(http.MethodGet, "/api/cheques/required-signatures?amount=abc", nil, false)
	s.Equal(http.StatusBadRequest, bad.Code)
}

func (s *HandlerTestSuite) TestAmountInWords() {
	w := s.do(http.MethodGet, "/api/cheques/amount-in-words?amount=1205.50", nil, false)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Amount string `json:"amount"`
			Words  string `json:"amount_in_words"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("1205.50", body.Data.Amount)
	s.Equal("One Thousand Two Hundred and Five Dollars and Fifty Cents", body.Data.Words)

	tooLarge := s.do(http.MethodGet, "/api/cheques/amount-in-words?amount=25000000.01", nil, false)
	s.Equal(http.StatusUnprocessableEntity, tooLarge.Code)
	s.Contains(tooLarge.Body.String(), "Amount exceeds the limit of 25 million.")

	bad := s.do(http.MethodGet, "/api/cheques/amount-in-words?amount=ten", nil, false)
	s.Equal(http.StatusBadRequest, bad.Code)
}

func (s *HandlerTestSuite) TestUpdateIssueDate_BadFormat() {
	w := s.do(http.MethodPut, "/api/cheques/"+uuid.NewString()+"/issue-date",
		map[string]string{"issue_date": "30/06/2026"}, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListCheques_PassesFilters() {
	docID := uuid.New()
	s.chequeService.On("ListCheques", mock.Anything, service.ChequeListQuery{
		DocumentID: &docID, Status: "approved", Search: "bob", Page: 2, Limit: 10,
	}).Return([]model.Cheque{}, int64(11), nil).Once()

	w := s.do(http.MethodGet, "/api/cheques?document_id="+docID.String()+"&status=approved&search=bob&page=2&limit=10", nil, false)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int64 `json:"total_pages"`
		} `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(int64(11), body.Meta.Total)
	s.Equal(int64(2), body.Meta.TotalPages)
}

func (s *HandlerTestSuite) TestImport_Duplicates() {
	req := service.ImportBatchRequest{
		FileName: "a.xlsx",
		Rows:     []service.ImportChequeRow{{ChequeNumber: "1", Amount: "1", ClientName: "X"}},
	}
	s.chequeService.On("ImportBatch", mock.Anything, s.actor, req).
		Return(nil, &apperrors.DuplicateBatchError{Count: 2}).Once()

	w := s.do(http.MethodPost, "/api/documents/import", req, true)

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "Found 2 duplicate cheques. Please review before processing.")
}

func (s *HandlerTestSuite) TestSelectAll() {
	docID := uuid.New()
	s.chequeService.On("SelectAll", mock.Anything, s.actor, docID, false).
		Return(&service.BatchResult{Changed: []model.Cheque{}, Failures: []service.BatchFailure{}}, nil).Once()

	w := s.do(http.MethodPost, "/api/documents/"+docID.String()+"/select-all", map[string]bool{"approve": false}, true)

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestSelectAll_MissingFlag() {
	w := s.do(http.MethodPost, "/api/documents/"+uuid.NewString()+"/select-all", map[string]string{}, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDeleteLockedDocument() {
	docID := uuid.New()
	s.documentService.On("Delete", mock.Anything, s.actor, docID).
		Return(apperrors.NewDocumentLockedError(docID)).Once()

	w := s.do(http.MethodDelete, "/api/documents/"+docID.String(), nil, true)

	s.Equal(http.StatusLocked, w.Code)
}

func (s *HandlerTestSuite) TestPrint_UnremarkedDecline() {
	docID := uuid.New()
	s.chequeService.On("Print", mock.Anything, s.actor, &docID).
		Return(nil, apperrors.NewValidationError("remarks", "All declined cheques must include a remark before printing")).Once()

	w := s.do(http.MethodPost, "/api/documents/"+docID.String()+"/print", nil, true)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(w.Body.String(), "All declined cheques must include a remark before printing")
}

func (s *HandlerTestSuite) TestPreviewPrintAll() {
	s.chequeService.On("PreviewPrint", mock.Anything, (*uuid.UUID)(nil)).
		Return(&engine.PrintPlan{}, nil).Once()

	w := s.do(http.MethodGet, "/api/print/preview", nil, false)

	s.Equal(http.StatusOK, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
