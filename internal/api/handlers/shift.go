package handlers

import (
	"net/http"

	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shift template operations
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// ListShifts handles GET /shifts
// @Summary List shift templates
// @Tags shifts
// @Produce json
// @Param active query bool false "Only active shifts"
// @Success 200 {array} service.ShiftResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftService.GetAll(c.Query("active") == "true")
	if err != nil {
		respondError(c, err, "Failed to get shifts")
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetShift handles GET /shifts/:id
// @Summary Get a shift template
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}

// CreateShift handles POST /shifts
// @Summary Create a shift template
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.ShiftRequest true "Shift"
// @Success 201 {object} service.ShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Shift already exists"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	shift, err := h.shiftService.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create shift")
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update a shift template
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param shift body service.ShiftRequest true "Shift"
// @Success 200 {object} service.ShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Shift already exists"
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	shift, err := h.shiftService.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete a shift template
// @Tags shifts
// @Param id path string true "Shift ID"
// @Success 204 "Shift deleted"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Shift is in use"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		respondError(c, err, "Failed to delete shift")
		return
	}

	c.Status(http.StatusNoContent)
}
