package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"rental-listing-backend/internal/assets"
	"rental-listing-backend/internal/notification"
	"rental-listing-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	assets   *assets.Store
	notifier *notification.WorkerPool
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, a *assets.Store, n *notification.WorkerPool, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:    s,
		assets:   a,
		notifier: n,
		webpush:  webpushOptions,
	}
}

// saveUpload streams one uploaded file into the asset store and returns its
// opaque reference.
func (h *Handler) saveUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()
	return h.assets.Save(f)
}

// respondError maps store error kinds to HTTP statuses. The error kinds carry
// their own entity/field context, so the message passes through unchanged.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case store.IsBadInput(err):
		status = http.StatusBadRequest
	case store.IsNotAuthorized(err):
		status = http.StatusForbidden
	case store.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// queryInt64 parses an optional integer query parameter, 0 when absent.
func queryInt64(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return v, true
}

// queryInt parses an optional integer query parameter, 0 when absent.
func queryInt(c *gin.Context, key string) (int, bool) {
	v, ok := queryInt64(c, key)
	return int(v), ok
}

// queryBool parses an optional boolean query parameter with a default.
func queryBool(c *gin.Context, key string, def bool) (bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return false, false
	}
	return v, true
}
