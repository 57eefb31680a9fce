package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// adminHandler exposes the scheduled scanner passes for manual runs.
type adminHandler struct {
	scannerService portssvc.ExpiryScannerSvc
}

func newAdminHandler(ss portssvc.ExpiryScannerSvc) *adminHandler {
	return &adminHandler{scannerService: ss}
}

// registerAdminRoutes registers the manual scan trigger routes.
func registerAdminRoutes(rg *gin.RouterGroup, scannerService portssvc.ExpiryScannerSvc) {
	h := newAdminHandler(scannerService)

	scans := rg.Group("/admin/scans")
	{
		scans.POST("/policy-expiries", h.runPolicyExpiryScan)
		scans.POST("/endorsement-alerts", h.runEndorsementAlertScan)
		scans.POST("/notification-cleanup", h.runNotificationCleanup)
	}
}

// runPolicyExpiryScan godoc
// @Summary Run the policy expiry scan immediately
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ScanRunResponse
// @Security BearerAuth
// @Router /admin/scans/policy-expiries [post]
func (h *adminHandler) runPolicyExpiryScan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	result, err := h.scannerService.CheckPolicyExpiries(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, logger, err, "Policy expiry scan failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// runEndorsementAlertScan godoc
// @Summary Run the endorsement alert scan immediately
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ScanRunResponse
// @Security BearerAuth
// @Router /admin/scans/endorsement-alerts [post]
func (h *adminHandler) runEndorsementAlertScan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	result, err := h.scannerService.CheckEndorsementAlerts(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, logger, err, "Endorsement alert scan failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// runNotificationCleanup godoc
// @Summary Prune expired and stale read notifications immediately
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.CleanupRunResponse
// @Security BearerAuth
// @Router /admin/scans/notification-cleanup [post]
func (h *adminHandler) runNotificationCleanup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	result, err := h.scannerService.CleanupOldNotifications(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, logger, err, "Notification cleanup failed")
		return
	}
	c.JSON(http.StatusOK, result)
}
