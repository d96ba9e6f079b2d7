package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rental-listing-backend/internal/db"
	"rental-listing-backend/internal/model"
)

// newTestStore opens an isolated in-memory SQLite database, migrates the
// schema and returns a store backed by it.
func newTestStore(t *testing.T) (*gormStore, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))

	s := &gormStore{db: gormDB, search: &testSearcher{db: gormDB}}
	return s, gormDB
}

// testSearcher matches apartment titles with LIKE, mirroring the default
// searcher without an import cycle.
type testSearcher struct {
	db *gorm.DB
}

func (ts *testSearcher) Search(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	err := ts.db.WithContext(ctx).
		Model(&model.Apartment{}).
		Where("title LIKE ?", "%"+query+"%").
		Pluck("id", &ids).Error
	return ids, err
}

// createTestApartment inserts a minimal aggregate owned by owner and returns
// it with its nested collections loaded.
func createTestApartment(t *testing.T, s *gormStore, owner string, rooms ...RoomInput) *model.Apartment {
	t.Helper()

	apartment, err := s.CreateApartment(context.Background(), owner, ApartmentInput{
		CommunityID: 1,
		Title:       "两室一厅近地铁",
		Subtitle:    "拎包入住",
		Address:     "学院路 30 号",
		NumBedroom:  2,
		Rooms:       rooms,
	})
	require.NoError(t, err)
	return apartment
}
