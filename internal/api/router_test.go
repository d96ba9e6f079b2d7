package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rental-listing-backend/config"
	"rental-listing-backend/internal/assets"
	"rental-listing-backend/internal/db"
	"rental-listing-backend/internal/search"
	"rental-listing-backend/internal/store"
)

const testAuthHeader = "X-Auth-Username"

// newTestServer builds the full router on an isolated in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api-%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))

	cfg := &config.ServerConfig{
		RateLimitPerSec:    1000,
		RateLimitBurst:     1000,
		CacheTTLSeconds:    1,
		AuthUsernameHeader: testAuthHeader,
	}
	s := store.NewGormStore(gormDB, search.NewLikeSearcher(gormDB))
	a := assets.NewStore(t.TempDir())
	webpushOptions := &webpush.Options{VAPIDPublicKey: "test-public-key"}

	return NewRouter(cfg, s, a, nil, webpushOptions), gormDB
}

// doJSON performs one request with an optional JSON body and authenticated
// username.
func doJSON(t *testing.T, r *gin.Engine, method, path, username string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if username != "" {
		req.Header.Set(testAuthHeader, username)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
