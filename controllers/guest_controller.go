package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type GuestController struct {
	GuestSvc  *services.GuestService
	ExportSvc services.ExportService
	Logger    *zap.Logger
}

func NewGuestController(svc *services.GuestService, export services.ExportService, logger *zap.Logger) *GuestController {
	return &GuestController{
		GuestSvc:  svc,
		ExportSvc: export,
		Logger:    logger,
	}
}

// GetGuests serves the display projection: free-text search plus status
// filter, newest first.
func (gc *GuestController) GetGuests(c *gin.Context) {
	query := c.Query("q")
	status := c.DefaultQuery("status", "all")
	utils.JSONSuccess(c, http.StatusOK, gc.GuestSvc.Search(query, status))
}

// CreateGuest runs the add-guest flow.
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var req services.AddGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := gc.GuestSvc.AddGuest(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// ExportGuests streams the current (filtered) guest list as an xlsx
// workbook.
func (gc *GuestController) ExportGuests(c *gin.Context) {
	query := c.Query("q")
	status := c.DefaultQuery("status", "all")

	f, err := gc.ExportSvc.GuestWorkbook(query, status)
	if err != nil {
		gc.Logger.Error("guest export failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "export failed")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("guests-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		gc.Logger.Error("guest export write failed", zap.Error(err))
	}
}
