package handlers

import (
	"net/http"

	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeShiftHandler handles HTTP requests for occurrence listings
type EmployeeShiftHandler struct {
	employeeShiftService service.EmployeeShiftServiceInterface
}

// NewEmployeeShiftHandler creates a new employee shift handler
func NewEmployeeShiftHandler(employeeShiftService service.EmployeeShiftServiceInterface) *EmployeeShiftHandler {
	return &EmployeeShiftHandler{
		employeeShiftService: employeeShiftService,
	}
}

// ListEmployeeShifts handles GET /employee-shifts
// @Summary List occurrences in a date range
// @Description Defaults to the current Monday to Sunday week when from/to are omitted
// @Tags employee-shifts
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} service.EmployeeShiftListResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /employee-shifts [get]
func (h *EmployeeShiftHandler) ListEmployeeShifts(c *gin.Context) {
	resp, err := h.employeeShiftService.GetByDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err, "Failed to get employee shifts")
		return
	}

	c.JSON(http.StatusOK, resp)
}
