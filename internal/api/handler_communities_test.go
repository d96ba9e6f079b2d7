package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

func seedTestDirectory(t *testing.T, gormDB *gorm.DB) (model.School, model.Community) {
	t.Helper()

	community := model.Community{Name: "阳光花园", Address: "学院路 30 号"}
	require.NoError(t, gormDB.Create(&community).Error)

	school := model.School{Name: "师范大学", Communities: []*model.Community{&community}}
	require.NoError(t, gormDB.Create(&school).Error)
	return school, community
}

func TestCommunityEndpointsPublic(t *testing.T) {
	r, gormDB := newTestServer(t)
	school, community := seedTestDirectory(t, gormDB)

	// All directory reads work unauthenticated.
	w := doJSON(t, r, http.MethodGet, "/api/communities", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var communities struct {
		Communities []map[string]any `json:"communities"`
	}
	decodeBody(t, w, &communities)
	assert.Len(t, communities.Communities, 1)

	w = doJSON(t, r, http.MethodGet, "/api/communities/"+strconv.FormatInt(community.ID, 10), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/communities/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/communities/search?q=花园", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &communities)
	assert.Len(t, communities.Communities, 1)

	w = doJSON(t, r, http.MethodGet, "/api/schools", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var schools struct {
		Schools []map[string]any `json:"schools"`
	}
	decodeBody(t, w, &schools)
	assert.Len(t, schools.Schools, 1)

	w = doJSON(t, r, http.MethodGet, "/api/schools/search?q=师范", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &schools)
	assert.Len(t, schools.Schools, 1)

	w = doJSON(t, r, http.MethodGet, "/api/communities?school_id="+strconv.FormatInt(school.ID, 10), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &communities)
	assert.Len(t, communities.Communities, 1)
}
