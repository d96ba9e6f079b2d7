package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-listing-backend/internal/mw"
)

type postSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	TimeStart string `json:"time_start" binding:"required"`
	TimeEnd   string `json:"time_end" binding:"required"`
}

// PostSlot handles POST /api/apartments/:id/reserve_choices. Owner only.
func (h *Handler) PostSlot(c *gin.Context) {
	apartmentID, ok := pathID(c)
	if !ok {
		return
	}
	var req postSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	slot, err := h.store.CreateSlot(c.Request.Context(), apartmentID, mw.Username(c),
		req.Date, req.TimeStart, req.TimeEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reserve_choice": slot})
}

// ListSlots handles GET /api/apartments/:id/reserve_choices. Public:
// prospective tenants browse viewing times before authenticating.
func (h *Handler) ListSlots(c *gin.Context) {
	apartmentID, ok := pathID(c)
	if !ok {
		return
	}
	slots, err := h.store.ListSlots(c.Request.Context(), apartmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reserve_choices": slots})
}

// GetSlot handles GET /api/reserve_choices/:id. Public.
func (h *Handler) GetSlot(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	slot, err := h.store.GetSlot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reserve_choice": slot})
}
