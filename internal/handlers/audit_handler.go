package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/pagination"
	"arsenal/internal/services"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// AuditQuery holds the audit log filters.
type AuditQuery struct {
	EntityType string `form:"entityType" binding:"omitempty,max=32"`
	EntityID   string `form:"entityId" binding:"omitempty,max=36"`
	UserID     string `form:"userId" binding:"omitempty,max=36"`
}

// ListAuditLogs returns audit entries, newest first.
// @Summary     List audit logs
// @Tags        audit
// @Produce     json
// @Security    BearerAuth
// @Param       entityType query string false "Entity type"
// @Param       entityId   query string false "Entity ID"
// @Param       userId     query string false "Acting user ID"
// @Param       page       query int    false "Page number (default 1)"
// @Param       pageSize   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Paginated audit logs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	var q AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.auditService.List(services.AuditFilter{
		EntityType: q.EntityType,
		EntityID:   q.EntityID,
		UserID:     q.UserID,
	}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
