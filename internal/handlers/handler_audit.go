package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// auditHandler handles direct lookups of audit trail rows.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers routes related to the audit trail.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	rg.GET("/audit/:audit_id", h.getAuditEntry)
}

// getAuditEntry godoc
// @Summary Get a single audit trail entry by ID
// @Tags audit
// @Produce  json
// @Param   audit_id path string true "Audit entry ID"
// @Success 200 {object} dto.AuditEntryResponse
// @Failure 404 {object} map[string]string "Audit entry not found"
// @Security BearerAuth
// @Router /audit/{audit_id} [get]
func (h *auditHandler) getAuditEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.auditService.GetAuditEntryByID(c.Request.Context(), c.Param("audit_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load audit entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditEntryResponse(entry))
}
