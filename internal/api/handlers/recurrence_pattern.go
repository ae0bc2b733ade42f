package handlers

import (
	"net/http"

	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecurrencePatternHandler handles HTTP requests for recurrence pattern operations
type RecurrencePatternHandler struct {
	patternService service.RecurrencePatternServiceInterface
}

// NewRecurrencePatternHandler creates a new recurrence pattern handler
func NewRecurrencePatternHandler(patternService service.RecurrencePatternServiceInterface) *RecurrencePatternHandler {
	return &RecurrencePatternHandler{
		patternService: patternService,
	}
}

// ListRecurrencePatterns handles GET /recurrence-patterns
// @Summary List recurrence patterns
// @Tags recurrence-patterns
// @Produce json
// @Success 200 {array} service.RecurrencePatternResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /recurrence-patterns [get]
func (h *RecurrencePatternHandler) ListRecurrencePatterns(c *gin.Context) {
	patterns, err := h.patternService.GetAll()
	if err != nil {
		respondError(c, err, "Failed to get recurrence patterns")
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// GetRecurrencePattern handles GET /recurrence-patterns/:id
// @Summary Get a recurrence pattern
// @Tags recurrence-patterns
// @Produce json
// @Param id path string true "Recurrence pattern ID"
// @Success 200 {object} service.RecurrencePatternResponse
// @Failure 400 {object} ErrorResponse "Invalid recurrence pattern ID"
// @Failure 404 {object} ErrorResponse "Recurrence pattern not found"
// @Security BearerAuth
// @Router /recurrence-patterns/{id} [get]
func (h *RecurrencePatternHandler) GetRecurrencePattern(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pattern, err := h.patternService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get recurrence pattern")
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// CreateRecurrencePattern handles POST /recurrence-patterns
// @Summary Create a recurrence pattern
// @Description DAILY patterns need interval_days, WEEKLY patterns need day_of_week
// @Tags recurrence-patterns
// @Accept json
// @Produce json
// @Param pattern body service.RecurrencePatternRequest true "Recurrence pattern"
// @Success 201 {object} service.RecurrencePatternResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Recurrence pattern already exists"
// @Security BearerAuth
// @Router /recurrence-patterns [post]
func (h *RecurrencePatternHandler) CreateRecurrencePattern(c *gin.Context) {
	var req service.RecurrencePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	pattern, err := h.patternService.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create recurrence pattern")
		return
	}

	c.JSON(http.StatusCreated, pattern)
}

// UpdateRecurrencePattern handles PUT /recurrence-patterns/:id
// @Summary Update a recurrence pattern
// @Tags recurrence-patterns
// @Accept json
// @Produce json
// @Param id path string true "Recurrence pattern ID"
// @Param pattern body service.RecurrencePatternRequest true "Recurrence pattern"
// @Success 200 {object} service.RecurrencePatternResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Recurrence pattern not found"
// @Failure 409 {object} ErrorResponse "Recurrence pattern already exists"
// @Security BearerAuth
// @Router /recurrence-patterns/{id} [put]
func (h *RecurrencePatternHandler) UpdateRecurrencePattern(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.RecurrencePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	pattern, err := h.patternService.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update recurrence pattern")
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// DeleteRecurrencePattern handles DELETE /recurrence-patterns/:id
// @Summary Delete a recurrence pattern
// @Tags recurrence-patterns
// @Param id path string true "Recurrence pattern ID"
// @Success 204 "Recurrence pattern deleted"
// @Failure 404 {object} ErrorResponse "Recurrence pattern not found"
// @Failure 409 {object} ErrorResponse "Recurrence pattern is in use"
// @Security BearerAuth
// @Router /recurrence-patterns/{id} [delete]
func (h *RecurrencePatternHandler) DeleteRecurrencePattern(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.patternService.Delete(id); err != nil {
		respondError(c, err, "Failed to delete recurrence pattern")
		return
	}

	c.Status(http.StatusNoContent)
}
