package handlers

import (
	"github.com/gin-gonic/gin"

	"tailor-service/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.Dashboard.GetOverview()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, overview, "Overview fetched")
}
