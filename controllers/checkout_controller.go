package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type CheckoutController struct {
	CheckoutSvc *services.CheckoutService
}

func NewCheckoutController(svc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{CheckoutSvc: svc}
}

func guestIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return 0, false
	}
	return id, true
}

// Begin opens a checkout draft for a checked-in guest.
func (cc *CheckoutController) Begin(c *gin.Context) {
	id, ok := guestIDParam(c)
	if !ok {
		return
	}
	draft, err := cc.CheckoutSvc.Begin(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, draft)
}

// GetDraft returns the open draft.
func (cc *CheckoutController) GetDraft(c *gin.Context) {
	id, ok := guestIDParam(c)
	if !ok {
		return
	}
	draft, err := cc.CheckoutSvc.Draft(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, draft)
}

// UpdateDraft applies edits to the open draft.
func (cc *CheckoutController) UpdateDraft(c *gin.Context) {
	id, ok := guestIDParam(c)
	if !ok {
		return
	}
	var req services.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	draft, err := cc.CheckoutSvc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, draft)
}

// Submit finalizes the checkout.
func (cc *CheckoutController) Submit(c *gin.Context) {
	id, ok := guestIDParam(c)
	if !ok {
		return
	}
	guest, message, err := cc.CheckoutSvc.Submit(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"guest":   guest,
		"message": message,
	})
}

// Cancel discards the open draft.
func (cc *CheckoutController) Cancel(c *gin.Context) {
	id, ok := guestIDParam(c)
	if !ok {
		return
	}
	if err := cc.CheckoutSvc.Cancel(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "checkout cancelled"})
}
