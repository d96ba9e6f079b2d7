package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// seedDirectory inserts one school linked to the first of two communities.
func seedDirectory(t *testing.T, db *gorm.DB) (school model.School, near, far model.Community) {
	t.Helper()

	near = model.Community{Name: "阳光花园"}
	far = model.Community{Name: "碧水湾"}
	require.NoError(t, db.Create(&near).Error)
	require.NoError(t, db.Create(&far).Error)

	school = model.School{Name: "师范大学", Communities: []*model.Community{&near}}
	require.NoError(t, db.Create(&school).Error)
	return school, near, far
}

func TestCommunityIDsForSchool(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	school, near, _ := seedDirectory(t, db)

	ids, err := s.CommunityIDsForSchool(ctx, school.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{near.ID}, ids)

	_, err = s.CommunityIDsForSchool(ctx, 404)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListCommunities(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	school, near, _ := seedDirectory(t, db)

	all, err := s.ListCommunities(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := s.ListCommunities(ctx, school.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, near.ID, scoped[0].ID)
}

func TestSearchCommunitiesAndSchools(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	seedDirectory(t, db)

	communities, err := s.SearchCommunities(ctx, "花园")
	require.NoError(t, err)
	require.Len(t, communities, 1)
	assert.Equal(t, "阳光花园", communities[0].Name)

	schools, err := s.SearchSchools(ctx, "师范")
	require.NoError(t, err)
	require.Len(t, schools, 1)

	none, err := s.SearchSchools(ctx, "职业学院")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListApartmentsBySchool(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	school, near, far := seedDirectory(t, db)

	_, err := s.CreateApartment(ctx, "landlord", ApartmentInput{
		CommunityID: near.ID, Title: "校旁两室",
	})
	require.NoError(t, err)
	_, err = s.CreateApartment(ctx, "landlord", ApartmentInput{
		CommunityID: far.ID, Title: "远郊三室",
	})
	require.NoError(t, err)

	nearby, err := s.ListApartments(ctx, ListApartmentsParams{SchoolID: school.ID})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "校旁两室", nearby[0].Title)
}
