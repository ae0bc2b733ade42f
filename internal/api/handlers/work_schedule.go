package handlers

import (
	"net/http"

	"coffee-shop-backend/internal/auth"
	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkScheduleHandler handles HTTP requests for work schedule operations
type WorkScheduleHandler struct {
	workScheduleService service.WorkScheduleServiceInterface
}

// NewWorkScheduleHandler creates a new work schedule handler
func NewWorkScheduleHandler(workScheduleService service.WorkScheduleServiceInterface) *WorkScheduleHandler {
	return &WorkScheduleHandler{
		workScheduleService: workScheduleService,
	}
}

// GenerateFromPattern handles POST /work-schedules/generate-from-pattern
// @Summary Generate occurrences from a recurrence rule
// @Description Copy the occurrences of the anchor date onto every date the rule selects in [startDate, endDate].
// @Description With preview=true nothing is written and the candidate dates are returned instead.
// @Tags work-schedules
// @Accept json
// @Produce json
// @Param request body service.GenerateFromPatternRequest true "Generation request"
// @Success 200 {object} service.GenerationCommit "Generation summary"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Recurrence pattern not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /work-schedules/generate-from-pattern [post]
func (h *WorkScheduleHandler) GenerateFromPattern(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.GenerateFromPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	resp, err := h.workScheduleService.GenerateFromPattern(actorID, &req)
	if err != nil {
		respondError(c, err, "Failed to generate work schedule")
		return
	}

	if resp.Preview != nil {
		c.JSON(http.StatusOK, resp.Preview)
		return
	}
	c.JSON(http.StatusOK, resp.Commit)
}

// DeleteWorkSchedule handles DELETE /work-schedules/:id
// @Summary Delete a work schedule
// @Description Delete future occurrences of the schedule, unlink past and present ones, and remove the schedule once unreferenced
// @Tags work-schedules
// @Produce json
// @Param id path string true "Work schedule ID"
// @Success 200 {object} service.DeleteWorkScheduleResponse "Deletion summary"
// @Failure 400 {object} ErrorResponse "Invalid work schedule ID"
// @Failure 404 {object} ErrorResponse "Work schedule not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /work-schedules/{id} [delete]
func (h *WorkScheduleHandler) DeleteWorkSchedule(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.workScheduleService.Delete(actorID, id)
	if err != nil {
		respondError(c, err, "Failed to delete work schedule")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListWorkSchedules handles GET /work-schedules
// @Summary List work schedules
// @Tags work-schedules
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkScheduleListResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /work-schedules [get]
func (h *WorkScheduleHandler) ListWorkSchedules(c *gin.Context) {
	resp, err := h.workScheduleService.GetAll(queryInt(c, "page", 1), queryInt(c, "page_size", 20))
	if err != nil {
		respondError(c, err, "Failed to get work schedules")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorkSchedule handles GET /work-schedules/:id
// @Summary Get a work schedule
// @Tags work-schedules
// @Produce json
// @Param id path string true "Work schedule ID"
// @Success 200 {object} service.WorkScheduleResponse
// @Failure 400 {object} ErrorResponse "Invalid work schedule ID"
// @Failure 404 {object} ErrorResponse "Work schedule not found"
// @Security BearerAuth
// @Router /work-schedules/{id} [get]
func (h *WorkScheduleHandler) GetWorkSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.workScheduleService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get work schedule")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorkScheduleShifts handles GET /work-schedules/:id/shifts
// @Summary List the occurrences of a work schedule
// @Tags work-schedules
// @Produce json
// @Param id path string true "Work schedule ID"
// @Success 200 {array} service.EmployeeShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid work schedule ID"
// @Failure 404 {object} ErrorResponse "Work schedule not found"
// @Security BearerAuth
// @Router /work-schedules/{id}/shifts [get]
func (h *WorkScheduleHandler) GetWorkScheduleShifts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	shifts, err := h.workScheduleService.GetShifts(id)
	if err != nil {
		respondError(c, err, "Failed to get work schedule shifts")
		return
	}

	c.JSON(http.StatusOK, shifts)
}
