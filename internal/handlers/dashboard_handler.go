package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arsenal/internal/services"
)

// DashboardHandler serves read-only balance and movement aggregates.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetMetrics returns balance totals and movements for the caller's scope.
// @Summary     Dashboard metrics
// @Description Opening, closing and current balances with purchase, transfer, assignment and expenditure totals.
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       baseId        query string false "Base ID"
// @Param       equipmentType query string false "Asset type"
// @Param       startDate     query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate       query string false "End date (YYYY-MM-DD or RFC3339)"
// @Success     200 {object} services.DashboardMetrics "Metrics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, _, err := bindRecordFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	metrics, err := h.dashboardService.GetMetrics(policy, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// GetMovements returns the records behind the net movement figure.
// @Summary     Dashboard movements
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       baseId        query string false "Base ID"
// @Param       equipmentType query string false "Asset type"
// @Param       startDate     query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate       query string false "End date (YYYY-MM-DD or RFC3339)"
// @Success     200 {object} services.Movements "Purchases and transfers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/movements [get]
func (h *DashboardHandler) GetMovements(c *gin.Context) {
	policy, err := getPolicy(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, _, err := bindRecordFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	movements, err := h.dashboardService.GetMovements(policy, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"movements": movements})
}
