package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCommunities handles GET /api/communities?school_id=. Public, cached.
func (h *Handler) ListCommunities(c *gin.Context) {
	schoolID, ok := queryInt64(c, "school_id")
	if !ok {
		return
	}
	communities, err := h.store.ListCommunities(c.Request.Context(), schoolID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"communities": communities})
}

// GetCommunity handles GET /api/communities/:id.
func (h *Handler) GetCommunity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	community, err := h.store.GetCommunity(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"community": community})
}

// SearchCommunities handles GET /api/communities/search?q=.
func (h *Handler) SearchCommunities(c *gin.Context) {
	communities, err := h.store.SearchCommunities(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"communities": communities})
}

// ListSchools handles GET /api/schools. Public, cached.
func (h *Handler) ListSchools(c *gin.Context) {
	schools, err := h.store.ListSchools(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schools": schools})
}

// SearchSchools handles GET /api/schools/search?q=.
func (h *Handler) SearchSchools(c *gin.Context) {
	schools, err := h.store.SearchSchools(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schools": schools})
}
