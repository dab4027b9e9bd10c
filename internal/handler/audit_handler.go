package handler

import (
	"net/http"
	"time"

	"chequeflow/internal/service"
	"chequeflow/pkg/pagination"
	"chequeflow/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs returns the audit trail, newest first
// @Summary      Get audit logs
// @Description  Every status change, signature, print and unlock is recorded with the acting user
// @Tags         audit
// @Produce      json
// @Param        entity_id query string false "Cheque or document id"
// @Param        user_id   query string false "Acting user id"
// @Param        action    query string false "Action, e.g. PRINT_CHEQUE"
// @Param        from      query string false "Inclusive start date (YYYY-MM-DD)"
// @Param        to        query string false "Exclusive end date (YYYY-MM-DD)"
// @Param        page      query int    false "Page number (default 1)"
// @Param        limit     query int    false "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=[]service.AuditLogResponse}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)
	userID, ok := parseOptionalUUIDQuery(c, "user_id")
	if !ok {
		return
	}
	from, ok := parseOptionalDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseOptionalDateQuery(c, "to")
	if !ok {
		return
	}

	entityID := c.Query("entity_id")
	if entityID == "" {
		entityID = c.Query("cheque_id")
	}

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), service.AuditQuery{
		EntityID: entityID,
		UserID:   userID,
		Action:   c.Query("action"),
		From:     from,
		To:       to,
		Page:     p.Page,
		Limit:    p.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, logs, p.Meta(total)))
}

func parseOptionalDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		badRequest(c, name+" must be formatted as YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}
