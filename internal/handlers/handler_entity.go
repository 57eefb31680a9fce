package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// entityHandler handles HTTP requests over coverage entity wrappers.
type entityHandler struct {
	entityService portssvc.EntitySvcFacade
	auditService  portssvc.AuditSvcFacade
}

func newEntityHandler(es portssvc.EntitySvcFacade, as portssvc.AuditSvcFacade) *entityHandler {
	return &entityHandler{entityService: es, auditService: as}
}

// registerEntityRoutes registers routes related to coverage entities.
func registerEntityRoutes(rg *gin.RouterGroup, entityService portssvc.EntitySvcFacade, auditService portssvc.AuditSvcFacade) {
	h := newEntityHandler(entityService, auditService)

	entities := rg.Group("/entities")
	{
		entities.GET("/:entity_id", h.getEntity)
		entities.GET("/:entity_id/audit", h.listEntityAudit)
	}
}

// getEntity godoc
// @Summary Get a coverage entity by ID
// @Tags entities
// @Produce  json
// @Param   entity_id path string true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} map[string]string "Entity not found"
// @Security BearerAuth
// @Router /entities/{entity_id} [get]
func (h *entityHandler) getEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entity, err := h.entityService.GetEntityByID(c.Request.Context(), c.Param("entity_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load entity")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// listEntityAudit godoc
// @Summary List the audit history for a coverage entity
// @Tags entities
// @Produce  json
// @Param   entity_id path string true "Entity ID"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination cursor from a previous page"
// @Success 200 {object} dto.ListAuditResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Security BearerAuth
// @Router /entities/{entity_id}/audit [get]
func (h *entityHandler) listEntityAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.auditService.ListEntityAudit(c.Request.Context(), c.Param("entity_id"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, page)
}
