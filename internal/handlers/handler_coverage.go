package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// coverageHandler handles the bulk add/remove ledger operations and the
// student coverage listings under a policy.
type coverageHandler struct {
	coverageService portssvc.CoverageSvcFacade
}

func newCoverageHandler(cs portssvc.CoverageSvcFacade) *coverageHandler {
	return &coverageHandler{coverageService: cs}
}

// registerCoverageRoutes registers the student coverage routes under /policies.
func registerCoverageRoutes(rg *gin.RouterGroup, coverageService portssvc.CoverageSvcFacade) {
	h := newCoverageHandler(coverageService)

	policies := rg.Group("/policies/:policy_id")
	{
		policies.GET("/students", h.listStudents)
		policies.GET("/students/available", h.listAvailableStudents)
		policies.POST("/students", h.addStudents)
		policies.DELETE("/students", h.removeStudents)
	}
}

// addStudents godoc
// @Summary Add students to a policy in one atomic batch
// @Description Calculates each student's pro-rata premium, debits the policy
// @Description sum insured by the batch total and records the endorsement,
// @Description audit and premium rows. Per-student failures are reported
// @Description without aborting the batch.
// @Tags coverage
// @Accept  json
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   request body dto.AddStudentsRequest true "Student IDs to add"
// @Success 200 {object} dto.BulkCoverageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Policy not found"
// @Failure 422 {object} map[string]string "Policy not active or insufficient balance"
// @Security BearerAuth
// @Router /policies/{policy_id}/students [post]
func (h *coverageHandler) addStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	outcome, err := h.coverageService.AddStudentsToPolicy(c.Request.Context(), c.Param("policy_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to add students to policy")
		return
	}

	logger.Info("Bulk student addition completed",
		slog.Int("succeeded", len(outcome.Succeeded)),
		slog.Int("failed", len(outcome.Failed)))
	c.JSON(http.StatusOK, dto.ToBulkCoverageResponse(outcome))
}

// removeStudents godoc
// @Summary Remove students from a policy in one atomic batch
// @Description Terminates each student's attachment and credits the pro-rata
// @Description refund back to the policy sum insured. Accepts either JSON or
// @Description multipart form data; files uploaded under "documents" are
// @Description linked to the created endorsement as supporting documents.
// @Tags coverage
// @Accept  json
// @Accept  mpfd
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   request body dto.RemoveStudentsRequest true "Student IDs, reason and optional documents"
// @Success 200 {object} dto.BulkCoverageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Policy not found"
// @Security BearerAuth
// @Router /policies/{policy_id}/students [delete]
func (h *coverageHandler) removeStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RemoveStudentsRequest
	if c.ContentType() == "multipart/form-data" {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form: " + err.Error()})
			return
		}
		for _, header := range form.File["documents"] {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload: " + header.Filename})
				return
			}
			defer file.Close()
			req.Documents = append(req.Documents, dto.DocumentUpload{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Contents:    file,
			})
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	outcome, err := h.coverageService.RemoveStudentsFromPolicy(c.Request.Context(), c.Param("policy_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to remove students from policy")
		return
	}

	logger.Info("Bulk student removal completed",
		slog.Int("succeeded", len(outcome.Succeeded)),
		slog.Int("failed", len(outcome.Failed)))
	c.JSON(http.StatusOK, dto.ToBulkCoverageResponse(outcome))
}

// listStudents godoc
// @Summary List the students currently covered by a policy
// @Tags coverage
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Success 200 {array} dto.StudentResponse
// @Failure 404 {object} map[string]string "Policy not found"
// @Security BearerAuth
// @Router /policies/{policy_id}/students [get]
func (h *coverageHandler) listStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	students, err := h.coverageService.ListPolicyStudents(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list covered students")
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}

// listAvailableStudents godoc
// @Summary List a company's students not covered by the policy
// @Tags coverage
// @Produce  json
// @Param   policy_id path string true "Policy ID"
// @Param   companyID query string true "Company ID"
// @Success 200 {array} dto.StudentResponse
// @Failure 400 {object} map[string]string "Missing company ID"
// @Security BearerAuth
// @Router /policies/{policy_id}/students/available [get]
func (h *coverageHandler) listAvailableStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}

	students, err := h.coverageService.ListAvailableStudents(c.Request.Context(), c.Param("policy_id"), companyID)
	if err != nil {
		respondError(c, logger, err, "Failed to list available students")
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}
