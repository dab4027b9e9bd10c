package handler

import (
	"net/http"
	"strings"
	"time"

	"chequeflow/internal/engine"
	"chequeflow/internal/middleware"
	"chequeflow/internal/service"
	"chequeflow/pkg/pagination"
	"chequeflow/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ChequeHandler struct {
	chequeService service.ChequeService
}

func NewChequeHandler(chequeService service.ChequeService) *ChequeHandler {
	return &ChequeHandler{chequeService: chequeService}
}

type UpdateIssueDateRequest struct {
	IssueDate string `json:"issue_date" binding:"required"`
}

type UnlockRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *ChequeHandler) RegisterRoutes(router *gin.RouterGroup) {
	cheques := router.Group("/api/cheques")
	{
		cheques.GET("", h.ListCheques)
		cheques.GET("/required-signatures", h.RequiredSignatures)
		cheques.GET("/amount-in-words", h.AmountInWords)
		cheques.GET("/:id", h.GetCheque)
		cheques.PUT("/:id/status", middleware.RequireActor(), h.SetStatus)
		cheques.POST("/:id/sign", middleware.RequireActor(), h.Sign)
		cheques.PUT("/:id/issue-date", middleware.RequireActor(), h.UpdateIssueDate)
		cheques.POST("/:id/unlock", middleware.RequireActor(), h.Unlock)
	}
}

// ListCheques returns a filtered page of cheques
// @Summary      List cheques
// @Tags         cheques
// @Produce      json
// @Param        document_id query  string false "Document id"
// @Param        status      query  string false "Pending, Approved or Declined"
// @Param        search      query  string false "Client name, cheque number or amount"
// @Param        page        query  int    false "Page number (default 1)"
// @Param        limit       query  int    false "Items per page (default 20)"
// @Success      200 {object} response.Response{data=[]model.Cheque}
// @Failure      422 {object} response.Response
// @Router       /api/cheques [get]
func (h *ChequeHandler) ListCheques(c *gin.Context) {
	docID, ok := parseOptionalUUIDQuery(c, "document_id")
	if !ok {
		return
	}
	p := pagination.Parse(c)

	cheques, total, err := h.chequeService.ListCheques(c.Request.Context(), service.ChequeListQuery{
		DocumentID: docID,
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		Page:       p.Page,
		Limit:      p.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, cheques, p.Meta(total)))
}

// GetCheque returns one cheque
// @Summary      Get cheque
// @Tags         cheques
// @Produce      json
// @Param        id  path  string true "Cheque id"
// @Success      200 {object} response.Response{data=model.Cheque}
// @Failure      404 {object} response.Response
// @Router       /api/cheques/{id} [get]
func (h *ChequeHandler) GetCheque(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cheque, err := h.chequeService.GetCheque(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cheque))
}

// RequiredSignatures reports how many signatures an amount needs
// @Summary      Required signatures for an amount
// @Tags         cheques
// @Produce      json
// @Param        amount query string true "Cheque amount"
// @Success      200 {object} response.Response{data=object}
// @Failure      400 {object} response.Response
// @Router       /api/cheques/required-signatures [get]
func (h *ChequeHandler) RequiredSignatures(c *gin.Context) {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.Query("amount")))
	if err != nil {
		badRequest(c, "Invalid amount")
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"amount":              amount.StringFixed(2),
		"required_signatures": engine.RequiredSignatures(amount),
		"threshold":           engine.DualSignatureThreshold.StringFixed(2),
	}))
}

// AmountInWords spells out an amount as written on the cheque slip
// @Summary      Amount in words
// @Tags         cheques
// @Produce      json
// @Param        amount query string true "Cheque amount, at most two decimals and 25,000,000"
// @Success      200 {object} response.Response{data=object}
// @Failure      400 {object} response.Response
// @Failure      422 {object} response.Response
// @Router       /api/cheques/amount-in-words [get]
func (h *ChequeHandler) AmountInWords(c *gin.Context) {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.Query("amount")))
	if err != nil {
		badRequest(c, "Invalid amount")
		return
	}

	words, err := engine.AmountInWords(amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"amount":          amount.StringFixed(2),
		"amount_in_words": words,
	}))
}

// SetStatus moves a cheque to Pending, Approved or Declined
// @Summary      Set cheque status
// @Description  Approving adds the acting user's signature. Declining requires remarks.
// @Tags         cheques
// @Accept       json
// @Produce      json
// @Param        X-User-ID header string true "Acting user id"
// @Param        id        path   string                   true "Cheque id"
// @Param        request   body   service.SetStatusRequest true "New status"
// @Success      200 {object} response.Response{data=model.Cheque}
// @Failure      422 {object} response.Response
// @Failure      423 {object} response.Response
// @Router       /api/cheques/{id}/status [put]
func (h *ChequeHandler) SetStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	cheque, err := h.chequeService.SetStatus(c.Request.Context(), middleware.GetActor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cheque))
}

// Sign adds the acting user's signature to an approved cheque
// @Summary      Co-sign cheque
// @Tags         cheques
// @Produce      json
// @Param        X-User-ID header string true "Acting user id"
// @Param        id        path   string true "Cheque id"
// @Success      200 {object} response.Response{data=model.Cheque}
// @Failure      422 {object} response.Response
// @Failure      423 {object} response.Response
// @Router       /api/cheques/{id}/sign [post]
func (h *ChequeHandler) Sign(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cheque, err := h.chequeService.Sign(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cheque))
}

// UpdateIssueDate changes the issue date of an unlocked cheque
// @Summary      Update issue date
// @Tags         cheques
// @Accept       json
// @Produce      json
// @Param        X-User-ID header string                 true "Acting user id"
// @Param        id        path   string                 true "Cheque id"
// @Param        request   body   UpdateIssueDateRequest true "Date as YYYY-MM-DD"
// @Success      200 {object} response.Response{data=model.Cheque}
// @Failure      423 {object} response.Response
// @Router       /api/cheques/{id}/issue-date [put]
func (h *ChequeHandler) UpdateIssueDate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateIssueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		badRequest(c, "issue_date must be formatted as YYYY-MM-DD")
		return
	}

	cheque, err := h.chequeService.UpdateIssueDate(c.Request.Context(), middleware.GetActor(c), id, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cheque))
}

// Unlock makes a printed cheque editable again
// @Summary      Unlock printed cheque
// @Tags         cheques
// @Accept       json
// @Produce      json
// @Param        X-User-ID header string        true "Acting user id"
// @Param        id        path   string        true "Cheque id"
// @Param        request   body   UnlockRequest true "Reason for the unlock"
// @Success      200 {object} response.Response{data=model.Cheque}
// @Failure      422 {object} response.Response
// @Router       /api/cheques/{id}/unlock [post]
func (h *ChequeHandler) Unlock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	cheque, err := h.chequeService.UnlockPrinted(c.Request.Context(), middleware.GetActor(c), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cheque))
}
