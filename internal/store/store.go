package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// Store defines all database operations of the booking engine.
type Store interface {
	// Apartment aggregate
	CreateApartment(ctx context.Context, owner string, in ApartmentInput) (*model.Apartment, error)
	UpdateApartment(ctx context.Context, id int64, requester string, upd ApartmentUpdate) (*model.Apartment, error)
	GetApartment(ctx context.Context, id int64, opts GetApartmentOptions) (*ApartmentDetail, error)
	ListApartments(ctx context.Context, params ListApartmentsParams) ([]model.Apartment, error)
	SearchApartments(ctx context.Context, query string) ([]model.Apartment, error)
	SetApartmentDeleted(ctx context.Context, id int64, requester string, deleted bool) error
	AddApartmentPhotos(ctx context.Context, id int64, requester, contractRef string, photoRefs []string) (*ApartmentDetail, error)

	// Viewing slots
	CreateSlot(ctx context.Context, apartmentID int64, requester, date, timeStart, timeEnd string) (*model.ReserveChoice, error)
	ListSlots(ctx context.Context, apartmentID int64) ([]model.ReserveChoice, error)
	GetSlot(ctx context.Context, id int64) (*model.ReserveChoice, error)

	// Bookings
	CreateReserve(ctx context.Context, slotID int64, requester string) (*model.Reserve, error)
	SetReserveCancelled(ctx context.Context, id int64, requester string, cancelled bool) (*model.Reserve, error)
	GetReserve(ctx context.Context, id int64, requester string) (*model.Reserve, error)
	ListReserves(ctx context.Context, params ListReservesParams, requester string) ([]model.Reserve, error)

	// Leases
	CreateRent(ctx context.Context, username string, roomID int64, dateStart, dateEnd time.Time) (*model.Rent, error)
	GetRent(ctx context.Context, id int64, requester string) (*model.Rent, error)
	ListRents(ctx context.Context, params ListRentsParams) ([]model.Rent, error)
	GetRoomStatus(ctx context.Context, roomID int64, asOf time.Time) (RoomStatus, error)

	// Favorites
	Favorites
	FavoriteApartment(ctx context.Context, username string, apartmentID int64) error
	UnfavoriteApartment(ctx context.Context, username string, apartmentID int64) error
	ListFavoriteApartments(ctx context.Context, username string) ([]model.Apartment, error)

	// Communities and schools
	SchoolDirectory
	GetCommunity(ctx context.Context, id int64) (*model.Community, error)
	ListCommunities(ctx context.Context, schoolID int64) ([]model.Community, error)
	SearchCommunities(ctx context.Context, query string) ([]model.Community, error)
	ListSchools(ctx context.Context) ([]model.School, error)
	SearchSchools(ctx context.Context, query string) ([]model.School, error)

	// DB exposes the underlying connection for transport-level wiring.
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db     *gorm.DB
	search Searcher
}

// NewGormStore creates a new GORM-backed store. The searcher handles free-text
// apartment queries; the store itself backs the favorites and school lookups.
func NewGormStore(db *gorm.DB, search Searcher) Store {
	return &gormStore{db: db, search: search}
}

// DB returns the underlying gorm connection.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}
