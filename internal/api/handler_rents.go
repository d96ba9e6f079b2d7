package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rental-listing-backend/internal/mw"
	"rental-listing-backend/internal/store"
)

type postRentRequest struct {
	RoomID    int64  `json:"room_id" binding:"required"`
	DateStart string `json:"date_start" binding:"required"`
	DateEnd   string `json:"date_end" binding:"required"`
}

// PostRent handles POST /api/rents: recording a lease of a room.
func (h *Handler) PostRent(c *gin.Context) {
	var req postRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	dateStart, err := store.ParseDate("date_start", req.DateStart)
	if err != nil {
		respondError(c, err)
		return
	}
	dateEnd, err := store.ParseDate("date_end", req.DateEnd)
	if err != nil {
		respondError(c, err)
		return
	}

	rent, err := h.store.CreateRent(c.Request.Context(), mw.Username(c), req.RoomID, dateStart, dateEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rent": rent})
}

// GetRent handles GET /api/rents/:id. Tenant or apartment owner only.
func (h *Handler) GetRent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rent, err := h.store.GetRent(c.Request.Context(), id, mw.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rent": rent})
}

// ListRents handles GET /api/rents. Without an apartment filter the listing
// is scoped to the requester's own leases; with one, to the apartments they
// own.
func (h *Handler) ListRents(c *gin.Context) {
	apartmentID, ok := queryInt64(c, "apartment_id")
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

	params := store.ListRentsParams{
		ApartmentID: apartmentID,
		Limit:       limit,
		Offset:      offset,
	}
	if apartmentID != 0 {
		detail, err := h.store.GetApartment(c.Request.Context(), apartmentID, store.GetApartmentOptions{})
		if err != nil {
			respondError(c, err)
			return
		}
		if detail.Username != mw.Username(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized to operate on this apartment"})
			return
		}
	} else {
		params.Username = mw.Username(c)
	}

	rents, err := h.store.ListRents(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rents": rents})
}

// GetRoomStatus handles GET /api/rooms/:id/status?as_of=2021-03-01. The
// occupancy is derived from the room's lease records on every read.
func (h *Handler) GetRoomStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := store.ParseDate("as_of", raw)
		if err != nil {
			respondError(c, err)
			return
		}
		asOf = parsed
	}

	status, err := h.store.GetRoomStatus(c.Request.Context(), id, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room_id": id, "as_of": asOf.Format(store.DateFormat), "status": status})
}
