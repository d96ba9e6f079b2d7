package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-listing-backend/internal/mw"
	"rental-listing-backend/internal/notification"
	"rental-listing-backend/internal/store"
)

type postReserveRequest struct {
	ReserveChoiceID int64 `json:"reserve_choice_id" binding:"required"`
}

// PostReserve handles POST /api/reserves: booking a viewing slot for the
// authenticated tenant.
func (h *Handler) PostReserve(c *gin.Context) {
	var req postReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reserve, err := h.store.CreateReserve(c.Request.Context(), req.ReserveChoiceID, mw.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if h.notifier != nil {
		h.notifier.Dispatch(notification.Event{
			Kind:      notification.EventReserveCreated,
			ReserveID: reserve.ID,
		})
	}
	c.JSON(http.StatusCreated, gin.H{"reserve": reserve})
}

type putReserveRequest struct {
	Cancelled *bool `json:"cancelled" binding:"required"`
}

// PutReserve handles PUT /api/reserves/:id: flipping the cancelled flag.
// Tenant or apartment owner only.
func (h *Handler) PutReserve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req putReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reserve, err := h.store.SetReserveCancelled(c.Request.Context(), id, mw.Username(c), *req.Cancelled)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.notifier != nil && *req.Cancelled {
		h.notifier.Dispatch(notification.Event{
			Kind:      notification.EventReserveCancelled,
			ReserveID: reserve.ID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reserve": reserve})
}

// GetReserve handles GET /api/reserves/:id. Tenant or apartment owner only.
func (h *Handler) GetReserve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reserve, err := h.store.GetReserve(c.Request.Context(), id, mw.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reserve": reserve})
}

// ListReserves handles GET /api/reserves.
func (h *Handler) ListReserves(c *gin.Context) {
	apartmentID, ok := queryInt64(c, "apartment_id")
	if !ok {
		return
	}
	slotID, ok := queryInt64(c, "reserve_choice_id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	reserves, err := h.store.ListReserves(c.Request.Context(), store.ListReservesParams{
		Username:        c.Query("username"),
		ApartmentID:     apartmentID,
		ReserveChoiceID: slotID,
		Limit:           limit,
		Offset:          offset,
	}, mw.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reserves": reserves})
}
