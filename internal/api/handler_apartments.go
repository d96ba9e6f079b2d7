package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-listing-backend/internal/mw"
	"rental-listing-backend/internal/store"
)

// PostApartment handles POST /api/apartments: creation of a full listing
// aggregate in one request.
func (h *Handler) PostApartment(c *gin.Context) {
	var in store.ApartmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	apartment, err := h.store.CreateApartment(c.Request.Context(), mw.Username(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"apartment": apartment})
}

// PutApartment handles PUT /api/apartments/:id: a partial update where absent
// fields stay untouched.
func (h *Handler) PutApartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var upd store.ApartmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	apartment, err := h.store.UpdateApartment(c.Request.Context(), id, mw.Username(c), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"apartment": apartment})
}

// GetApartment handles GET /api/apartments/:id.
func (h *Handler) GetApartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	includeDeleted, ok := queryBool(c, "include_deleted", false)
	if !ok {
		return
	}

	detail, err := h.store.GetApartment(c.Request.Context(), id, store.GetApartmentOptions{
		RequestingUser: mw.Username(c),
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"apartment": detail})
}

// DeleteApartment handles DELETE /api/apartments/:id: a soft delete.
func (h *Handler) DeleteApartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.SetApartmentDeleted(c.Request.Context(), id, mw.Username(c), true); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListApartments handles GET /api/apartments.
func (h *Handler) ListApartments(c *gin.Context) {
	communityID, ok := queryInt64(c, "community_id")
	if !ok {
		return
	}
	schoolID, ok := queryInt64(c, "school_id")
	if !ok {
		return
	}
	filterCancelled, ok := queryBool(c, "filter_cancelled", true)
	if !ok {
		return
	}
	filterDeleted, ok := queryBool(c, "filter_deleted", true)
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

	apartments, err := h.store.ListApartments(c.Request.Context(), store.ListApartmentsParams{
		Owner:           c.Query("username"),
		CommunityID:     communityID,
		SchoolID:        schoolID,
		FilterCancelled: filterCancelled,
		FilterDeleted:   filterDeleted,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"apartments": apartments})
}

// SearchApartments handles GET /api/apartments/search?q=.
func (h *Handler) SearchApartments(c *gin.Context) {
	apartments, err := h.store.SearchApartments(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"apartments": apartments})
}

// PostApartmentPhotos handles POST /api/apartments/:id/photos: a multipart
// upload of listing photos plus an optional contract scan. The files land in
// the asset store; only the opaque references reach the database.
func (h *Handler) PostApartmentPhotos(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	var contractRef string
	if files := form.File["contract"]; len(files) > 0 {
		contractRef, err = h.saveUpload(files[0])
		if err != nil {
			respondError(c, err)
			return
		}
	}

	var photoRefs []string
	for _, file := range form.File["photos"] {
		ref, err := h.saveUpload(file)
		if err != nil {
			respondError(c, err)
			return
		}
		photoRefs = append(photoRefs, ref)
	}

	detail, err := h.store.AddApartmentPhotos(c.Request.Context(), id, mw.Username(c), contractRef, photoRefs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"apartment": detail})
}

// PostFavorite handles POST /api/apartments/:id/fav.
func (h *Handler) PostFavorite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.FavoriteApartment(c.Request.Context(), mw.Username(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteFavorite handles DELETE /api/apartments/:id/fav.
func (h *Handler) DeleteFavorite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.UnfavoriteApartment(c.Request.Context(), mw.Username(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFavorites handles GET /api/favorites.
func (h *Handler) ListFavorites(c *gin.Context) {
	apartments, err := h.store.ListFavoriteApartments(c.Request.Context(), mw.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"apartments": apartments})
}
