package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// insuredHandler handles HTTP requests for the non-student insurable records.
type insuredHandler struct {
	insuredService portssvc.InsuredSvcFacade
}

func newInsuredHandler(is portssvc.InsuredSvcFacade) *insuredHandler {
	return &insuredHandler{insuredService: is}
}

// registerInsuredRoutes registers routes for employees, vessels and vehicles.
func registerInsuredRoutes(rg *gin.RouterGroup, insuredService portssvc.InsuredSvcFacade) {
	h := newInsuredHandler(insuredService)

	rg.POST("/employees", h.createEmployee)
	rg.GET("/employees/:employee_id", h.getEmployee)
	rg.POST("/vessels", h.createVessel)
	rg.GET("/vessels/:vessel_id", h.getVessel)
	rg.POST("/vehicles", h.createVehicle)
	rg.GET("/vehicles/:vehicle_id", h.getVehicle)
}

// createEmployee godoc
// @Summary Create a new employee record
// @Tags insured
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /employees [post]
func (h *insuredHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	employee, err := h.insuredService.CreateEmployee(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// getEmployee godoc
// @Summary Get an employee record by ID
// @Tags insured
// @Produce  json
// @Param   employee_id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{employee_id} [get]
func (h *insuredHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employee, err := h.insuredService.GetEmployeeByID(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// createVessel godoc
// @Summary Create a new vessel record
// @Tags insured
// @Accept  json
// @Produce  json
// @Param   vessel body dto.CreateVesselRequest true "Vessel details"
// @Success 201 {object} domain.Vessel
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /vessels [post]
func (h *insuredHandler) createVessel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vessel, err := h.insuredService.CreateVessel(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create vessel")
		return
	}
	c.JSON(http.StatusCreated, vessel)
}

// getVessel godoc
// @Summary Get a vessel record by ID
// @Tags insured
// @Produce  json
// @Param   vessel_id path string true "Vessel ID"
// @Success 200 {object} domain.Vessel
// @Failure 404 {object} map[string]string "Vessel not found"
// @Security BearerAuth
// @Router /vessels/{vessel_id} [get]
func (h *insuredHandler) getVessel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vessel, err := h.insuredService.GetVesselByID(c.Request.Context(), c.Param("vessel_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load vessel")
		return
	}
	c.JSON(http.StatusOK, vessel)
}

// createVehicle godoc
// @Summary Create a new vehicle record
// @Tags insured
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} domain.Vehicle
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *insuredHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vehicle, err := h.insuredService.CreateVehicle(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create vehicle")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// getVehicle godoc
// @Summary Get a vehicle record by ID
// @Tags insured
// @Produce  json
// @Param   vehicle_id path string true "Vehicle ID"
// @Success 200 {object} domain.Vehicle
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{vehicle_id} [get]
func (h *insuredHandler) getVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicle, err := h.insuredService.GetVehicleByID(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
