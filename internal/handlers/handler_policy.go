package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// policyHandler handles HTTP requests related to policies.
type policyHandler struct {
	policyService      portssvc.PolicySvcFacade
	endorsementService portssvc.EndorsementSvcFacade
	auditService       portssvc.AuditSvcFacade
}

func newPolicyHandler(ps portssvc.PolicySvcFacade, es portssvc.EndorsementSvcFacade, as portssvc.AuditSvcFacade) *policyHandler {
	return &policyHandler{
		policyService:      ps,
		endorsementService: es,
		auditService:       as,
	}
}

// registerPolicyRoutes registers routes related to policies and their
// endorsement/audit/premium sub-resources. Coverage (student) sub-routes are
// registered separately by registerCoverageRoutes on the same group.
func registerPolicyRoutes(rg *gin.RouterGroup, ps portssvc.PolicySvcFacade, es portssvc.EndorsementSvcFacade, as portssvc.AuditSvcFacade) {
	h := newPolicyHandler(ps, es, as)

	policies := rg.Group("/policies")
	{
		policies.POST("", h.createPolicy)
		policies.GET("", h.listPolicies)
		policies.GET("/:policy_id", h.getPolicy)
		policies.PUT("/:policy_id", h.updatePolicy)
		policies.DELETE("/:policy_id", h.deletePolicy)
		policies.GET("/:policy_id/attachments", h.listAttachments)
		policies.GET("/:policy_id/endorsements", h.listEndorsements)
		policies.GET("/:policy_id/audit", h.listAudit)
		policies.GET("/:policy_id/premiums", h.listPremiums)
	}
}

// createPolicy godoc
// @Summary Create a new policy
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policy body dto.CreatePolicyRequest true "Policy details"
// @Success 201 {object} dto.PolicyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Policy number already exists"
// @Security BearerAuth
// @Router /policies [post]
func (h *policyHandler) createPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.policyService.CreatePolicy(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create policy")
		return
	}

	logger.Info("Policy created", slog.String("policy_id", policy.PolicyID))
	c.JSON(http.StatusCreated, dto.ToPolicyResponse(policy))
}

// listPolicies godoc
// @Summary List policies
// @Tags policies
// @Produce  json
// @Param   status query string false "Filter by status" Enums(ACTIVE, EXPIRED, UNDER_REVIEW, CANCELLED)
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListPoliciesResponse
// @Security BearerAuth
// @Router /policies [get]
func (h *policyHandler) listPolicies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPoliciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.policyService.ListPolicies(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list policies")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getPolicy godoc
// @Summary Get a policy by ID
// @Tags policies
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Success 200 {object} dto.PolicyResponse
// @Failure 404 {object} map[string]string "Policy not found"
// @Security BearerAuth
// @Router /policies/{policy_id} [get]
func (h *policyHandler) getPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	policy, err := h.policyService.GetPolicyByID(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load policy")
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicyResponse(policy))
}

// updatePolicy godoc
// @Summary Update a policy
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   policy body dto.UpdatePolicyRequest true "Fields to update"
// @Success 200 {object} dto.PolicyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Policy not found"
// @Security BearerAuth
// @Router /policies/{policy_id} [put]
func (h *policyHandler) updatePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.policyService.UpdatePolicy(c.Request.Context(), c.Param("policy_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update policy")
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicyResponse(policy))
}

// deletePolicy godoc
// @Summary Delete a policy without coverage history
// @Tags policies
// @Param   policy_id path string true "Policy ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Policy not found"
// @Failure 409 {object} map[string]string "Policy has coverage history"
// @Security BearerAuth
// @Router /policies/{policy_id} [delete]
func (h *policyHandler) deletePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.policyService.DeletePolicy(c.Request.Context(), c.Param("policy_id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete policy")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAttachments godoc
// @Summary List a policy's coverage attachments
// @Tags policies
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   activeOnly query bool false "Exclude terminated attachments"
// @Success 200 {array} dto.AttachmentResponse
// @Security BearerAuth
// @Router /policies/{policy_id}/attachments [get]
func (h *policyHandler) listAttachments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.Query("activeOnly") == "true"

	attachments, err := h.policyService.ListPolicyAttachments(c.Request.Context(), c.Param("policy_id"), activeOnly)
	if err != nil {
		respondError(c, logger, err, "Failed to list attachments")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttachmentResponses(attachments))
}

// listEndorsements godoc
// @Summary List a policy's endorsements
// @Tags endorsements
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListEndorsementsResponse
// @Security BearerAuth
// @Router /policies/{policy_id}/endorsements [get]
func (h *policyHandler) listEndorsements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEndorsementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.endorsementService.ListEndorsementsByPolicy(c.Request.Context(), c.Param("policy_id"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list endorsements")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listAudit godoc
// @Summary List a policy's audit history
// @Tags audit
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Cursor token from the previous page"
// @Success 200 {object} dto.ListAuditResponse
// @Security BearerAuth
// @Router /policies/{policy_id}/audit [get]
func (h *policyHandler) listAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.auditService.ListPolicyAudit(c.Request.Context(), c.Param("policy_id"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list audit history")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listPremiums godoc
// @Summary List premium records written against a policy
// @Tags premiums
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.PremiumResponse
// @Security BearerAuth
// @Router /policies/{policy_id}/premiums [get]
func (h *policyHandler) listPremiums(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEndorsementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	premiums, err := h.policyService.ListPolicyPremiums(c.Request.Context(), c.Param("policy_id"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list premiums")
		return
	}
	c.JSON(http.StatusOK, dto.ToPremiumResponses(premiums))
}
