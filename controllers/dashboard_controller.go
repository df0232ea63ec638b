package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
	GuestSvc     *services.GuestService
}

func NewDashboardController(dash *services.DashboardService, guests *services.GuestService) *DashboardController {
	return &DashboardController{DashboardSvc: dash, GuestSvc: guests}
}

// GetDashboard serves occupancy/revenue metrics and the activity feed.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, dc.DashboardSvc.Dashboard(c.Request.Context()))
}

// GetStatus reports cache freshness and whether the station degraded to
// sample data. The desk renders its error banner off this.
func (dc *DashboardController) GetStatus(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, dc.GuestSvc.Status())
}

// Refresh is the banner's manual retry: a full reload of both lists.
func (dc *DashboardController) Refresh(c *gin.Context) {
	if err := dc.GuestSvc.LoadAll(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dc.GuestSvc.Status())
}
