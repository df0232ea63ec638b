package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type RoomController struct {
	RoomSvc services.RoomService
}

func NewRoomController(svc services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms serves the cached room inventory; ?available=true narrows it to
// assignable rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	if c.Query("available") == "true" {
		utils.JSONSuccess(c, http.StatusOK, rc.RoomSvc.Available())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.RoomSvc.List())
}
