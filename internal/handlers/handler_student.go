package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// studentHandler handles HTTP requests related to students.
type studentHandler struct {
	studentService portssvc.StudentSvcFacade
}

func newStudentHandler(ss portssvc.StudentSvcFacade) *studentHandler {
	return &studentHandler{studentService: ss}
}

// registerStudentRoutes registers routes related to students.
func registerStudentRoutes(rg *gin.RouterGroup, studentService portssvc.StudentSvcFacade) {
	h := newStudentHandler(studentService)

	students := rg.Group("/students")
	{
		students.POST("", h.createStudent)
		students.GET("", h.listStudents)
		students.GET("/:student_id", h.getStudent)
		students.PUT("/:student_id", h.updateStudent)
		students.DELETE("/:student_id", h.deleteStudent)
		students.GET("/:student_id/premiums", h.listStudentPremiums)
	}
}

// createStudent godoc
// @Summary Create a new student
// @Tags students
// @Accept  json
// @Produce  json
// @Param   student body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /students [post]
func (h *studentHandler) createStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create student")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// listStudents godoc
// @Summary List students, optionally filtered by company
// @Tags students
// @Produce  json
// @Param   companyId query string false "Filter by company ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.StudentResponse
// @Security BearerAuth
// @Router /students [get]
func (h *studentHandler) listStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	students, err := h.studentService.ListStudents(c.Request.Context(), c.Query("companyId"), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list students")
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}

// getStudent godoc
// @Summary Get a student by ID
// @Tags students
// @Produce  json
// @Param   student_id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{student_id} [get]
func (h *studentHandler) getStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	student, err := h.studentService.GetStudentByID(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load student")
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// updateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept  json
// @Produce  json
// @Param   student_id path string true "Student ID"
// @Param   student body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{student_id} [put]
func (h *studentHandler) updateStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), c.Param("student_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update student")
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// deleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Param   student_id path string true "Student ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{student_id} [delete]
func (h *studentHandler) deleteStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), c.Param("student_id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete student")
		return
	}
	c.Status(http.StatusNoContent)
}

// listStudentPremiums godoc
// @Summary List the premium history recorded for a student
// @Tags students
// @Produce  json
// @Param   student_id path string true "Student ID"
// @Success 200 {array} dto.PremiumResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{student_id}/premiums [get]
func (h *studentHandler) listStudentPremiums(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	premiums, err := h.studentService.ListStudentPremiums(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list premiums")
		return
	}
	c.JSON(http.StatusOK, dto.ToPremiumResponses(premiums))
}
