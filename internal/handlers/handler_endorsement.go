package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// endorsementHandler handles HTTP requests related to endorsements.
type endorsementHandler struct {
	endorsementService portssvc.EndorsementSvcFacade
	auditService       portssvc.AuditSvcFacade
}

func newEndorsementHandler(es portssvc.EndorsementSvcFacade, as portssvc.AuditSvcFacade) *endorsementHandler {
	return &endorsementHandler{
		endorsementService: es,
		auditService:       as,
	}
}

// registerEndorsementRoutes registers routes related to endorsements.
func registerEndorsementRoutes(rg *gin.RouterGroup, es portssvc.EndorsementSvcFacade, as portssvc.AuditSvcFacade) {
	h := newEndorsementHandler(es, as)

	endorsements := rg.Group("/endorsements")
	{
		endorsements.GET("/:endorsement_id", h.getEndorsement)
		endorsements.GET("/:endorsement_id/audit", h.listAudit)
		endorsements.POST("/:endorsement_id/certificate", h.regenerateCertificate)
		endorsements.DELETE("/:endorsement_id", h.deleteEndorsement)
	}
}

// getEndorsement godoc
// @Summary Get an endorsement by ID
// @Tags endorsements
// @Produce  json
// @Param   endorsement_id path string true "Endorsement ID"
// @Success 200 {object} dto.EndorsementResponse
// @Failure 404 {object} map[string]string "Endorsement not found"
// @Security BearerAuth
// @Router /endorsements/{endorsement_id} [get]
func (h *endorsementHandler) getEndorsement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	endorsement, err := h.endorsementService.GetEndorsementByID(c.Request.Context(), c.Param("endorsement_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load endorsement")
		return
	}
	c.JSON(http.StatusOK, dto.ToEndorsementResponse(endorsement))
}

// listAudit godoc
// @Summary List the audit rows written under an endorsement
// @Tags audit
// @Produce  json
// @Param   endorsement_id path string true "Endorsement ID"
// @Success 200 {array} dto.AuditEntryResponse
// @Security BearerAuth
// @Router /endorsements/{endorsement_id}/audit [get]
func (h *endorsementHandler) listAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entries, err := h.auditService.ListEndorsementAudit(c.Request.Context(), c.Param("endorsement_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list endorsement audit")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}

// regenerateCertificate godoc
// @Summary Regenerate the PDF certificate for an endorsement
// @Description Rebuilds the certificate from the endorsement's audit trail
// @Description and stores it as a new document.
// @Tags endorsements
// @Produce  json
// @Param   endorsement_id path string true "Endorsement ID"
// @Success 201 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Endorsement not found"
// @Failure 409 {object} map[string]string "No audit trail to rebuild from"
// @Security BearerAuth
// @Router /endorsements/{endorsement_id}/certificate [post]
func (h *endorsementHandler) regenerateCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.endorsementService.RegenerateCertificate(c.Request.Context(), c.Param("endorsement_id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to regenerate certificate")
		return
	}

	logger.Info("Certificate regenerated", slog.String("document_id", doc.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// deleteEndorsement godoc
// @Summary Delete an endorsement record
// @Description Removes the endorsement record. Audit entries and balance movements are kept.
// @Tags endorsements
// @Param   endorsement_id path string true "Endorsement ID"
// @Success 204 "Endorsement deleted"
// @Failure 404 {object} map[string]string "Endorsement not found"
// @Security BearerAuth
// @Router /endorsements/{endorsement_id} [delete]
func (h *endorsementHandler) deleteEndorsement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.endorsementService.DeleteEndorsement(c.Request.Context(), c.Param("endorsement_id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete endorsement")
		return
	}

	c.Status(http.StatusNoContent)
}
