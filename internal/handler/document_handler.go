package handler

import (
	"net/http"

	"chequeflow/internal/middleware"
	"chequeflow/internal/service"
	"chequeflow/pkg/pagination"
	"chequeflow/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	documentService service.DocumentService
	chequeService   service.ChequeService
}

func NewDocumentHandler(documentService service.DocumentService, chequeService service.ChequeService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, chequeService: chequeService}
}

type SelectAllRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	docs := router.Group("/api/documents")
	{
		docs.GET("", h.ListDocuments)
		docs.POST("/import", middleware.RequireActor(), h.Import)
		docs.GET("/:id", h.GetDocument)
		docs.PATCH("/:id", middleware.RequireActor(), h.Rename)
		docs.DELETE("/:id", middleware.RequireActor(), h.Delete)
		docs.POST("/:id/lock", middleware.RequireActor(), h.Lock)
		docs.POST("/:id/select-all", middleware.RequireActor(), h.SelectAll)
		docs.GET("/:id/duplicates", h.Duplicates)
		docs.GET("/:id/print/preview", h.PreviewPrint)
		docs.POST("/:id/print", middleware.RequireActor(), h.Print)
	}
	router.GET("/api/print/preview", h.PreviewPrintAll)
	router.POST("/api/print", middleware.RequireActor(), h.PrintAll)
}

// ListDocuments returns imported documents, newest first
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        page  query int false "Page number (default 1)"
// @Param        limit query int false "Items per page (default 20)"
// @Success      200 {object} response.Response{data=[]model.Document}
// @Router       /api/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	p := pagination.Parse(c)
	docs, total, err := h.documentService.List(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, docs, p.Meta(total)))
}

// Import stores a parsed spreadsheet as a new document of Pending cheques
// @Summary      Import cheque batch
// @Description  Rejects batches containing duplicate cheques unless allow_duplicates is set with a duplicate_reason.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        X-User-ID header string                     true "Acting user id"
// @Param        request   body   service.ImportBatchRequest true "Parsed rows"
// @Success      201 {object} response.Response{data=model.Document}
// @Failure      409 {object} response.Response "Duplicates found"
// @Failure      422 {object} response.Response
// @Router       /api/documents/import [post]
func (h *DocumentHandler) Import(c *gin.Context) {
	var req service.ImportBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	doc, err := h.chequeService.ImportBatch(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, doc))
}

// GetDocument returns a document with its cheques
// @Summary      Get document
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document id"
// @Success      200 {object} response.Response{data=model.Document}
// @Failure      404 {object} response.Response
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.documentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// Rename changes a document's display name
// @Summary      Rename document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        X-User-ID header string                        true "Acting user id"
// @Param        id        path   string                        true "Document id"
// @Param        request   body   service.RenameDocumentRequest true "New name"
// @Success      200 {object} response.Response{data=model.Document}
// @Failure      422 {object} response.Response
// @Router       /api/documents/{id} [patch]
func (h *DocumentHandler) Rename(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.RenameDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	doc, err := h.documentService.Rename(c.Request.Context(), middleware.GetActor(c), id, req.FileName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// Delete removes an unlocked document and its cheques
// @Summary      Delete document
// @Tags         documents
// @Produce      json
// @Param        X-User-ID header string true "Acting user id"
// @Param        id        path   string true "Document id"
// @Success      200 {object} response.Response
// @Failure      423 {object} response.Response "Document is locked"
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.documentService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"id": id}))
}

// Lock marks a document as locked
// @Summary      Lock document
// @Tags         documents
// @Produce      json
// @Param        X-User-ID header string true "Acting user id"
// @Param        id        path   string true "Document id"
// @Success      200 {object} response.Response{data=model.Document}
// @Router       /api/documents/{id}/lock [post]
func (h *DocumentHandler) Lock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.documentService.Lock(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// SelectAll bulk-approves the document's cheques, or reverts a previous bulk approval
// @Summary      Bulk approve or revert
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        X-User-ID header string           true "Acting user id"
// @Param        id        path   string           true "Document id"
// @Param        request   body   SelectAllRequest true "approve=true to approve, false to revert"
// @Success      200 {object} response.Response{data=service.BatchResult}
// @Failure      423 {object} response.Response
// @Router       /api/documents/{id}/select-all [post]
func (h *DocumentHandler) SelectAll(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req SelectAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	res, err := h.chequeService.SelectAll(c.Request.Context(), middleware.GetActor(c), id, *req.Approve)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// Duplicates lists cheques sharing client name, amount and cheque number
// @Summary      Detect duplicates
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document id"
// @Success      200 {object} response.Response{data=[]model.Cheque}
// @Router       /api/documents/{id}/duplicates [get]
func (h *DocumentHandler) Duplicates(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	dups, err := h.chequeService.DetectDuplicates(c.Request.Context(), &id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, dups))
}

// PreviewPrint shows what a print run over the document would print and exclude
// @Summary      Preview print run
// @Tags         printing
// @Produce      json
// @Param        id path string true "Document id"
// @Success      200 {object} response.Response{data=engine.PrintPlan}
// @Failure      422 {object} response.Response "Declined cheque without remark"
// @Router       /api/documents/{id}/print/preview [get]
func (h *DocumentHandler) PreviewPrint(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	h.previewPrint(c, &id)
}

// PreviewPrintAll previews a print run over every stored cheque
// @Summary      Preview print run over all cheques
// @Tags         printing
// @Produce      json
// @Success      200 {object} response.Response{data=engine.PrintPlan}
// @Router       /api/print/preview [get]
func (h *DocumentHandler) PreviewPrintAll(c *gin.Context) {
	h.previewPrint(c, nil)
}

func (h *DocumentHandler) previewPrint(c *gin.Context, documentID *uuid.UUID) {
	plan, err := h.chequeService.PreviewPrint(c.Request.Context(), documentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, plan))
}

// Print confirms a print run, locking printed cheques and their document
// @Summary      Print cheques
// @Tags         printing
// @Produce      json
// @Param        X-User-ID header string true "Acting user id"
// @Param        id        path   string true "Document id"
// @Success      200 {object} response.Response{data=service.PrintResponse}
// @Failure      422 {object} response.Response "Declined cheque without remark"
// @Router       /api/documents/{id}/print [post]
func (h *DocumentHandler) Print(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	h.print(c, &id)
}

// PrintAll confirms a print run over every stored cheque
// @Summary      Print all cheques
// @Tags         printing
// @Produce      json
// @Param        X-User-ID header string true "Acting user id"
// @Success      200 {object} response.Response{data=service.PrintResponse}
// @Router       /api/print [post]
func (h *DocumentHandler) PrintAll(c *gin.Context) {
	h.print(c, nil)
}

func (h *DocumentHandler) print(c *gin.Context, documentID *uuid.UUID) {
	res, err := h.chequeService.Print(c.Request.Context(), middleware.GetActor(c), documentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
