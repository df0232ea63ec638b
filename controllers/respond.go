package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// respondServiceError maps service-layer errors onto the response envelope.
// Validation failures carry the offending field so the UI can render the
// message inline.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   vErr.Message,
			"field":   vErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrGuestNotFound), errors.Is(err, services.ErrNoDraft):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotCheckedIn), errors.Is(err, services.ErrDraftSubmitting):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		// Mutations that die at the network layer surface as a transient
		// notification; the cache is left alone.
		utils.JSONError(c, http.StatusBadGateway, err.Error())
	}
}
