package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// RoomStatus is the derived occupancy of a room at a point in time.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

// ListRentsParams filters a lease listing query.
type ListRentsParams struct {
	Username    string
	ApartmentID int64
	RoomID      int64
	Limit       int
	Offset      int
}

// ComputeRoomStatus derives occupancy from a room's lease set: occupied iff a
// live rent covers asOf (date_start inclusive, date_end exclusive). Pure;
// recomputed on every read, never stored.
func ComputeRoomStatus(rents []model.Rent, asOf time.Time) RoomStatus {
	for i := range rents {
		if rents[i].Covers(asOf) {
			return RoomStatusOccupied
		}
	}
	return RoomStatusAvailable
}

// CreateRent records a lease of a room. The apartment ID is resolved from the
// room, and the insert is rejected when the date range overlaps an existing
// live lease on the same room. The check and the insert run in one
// transaction so concurrent writers cannot slip past each other.
func (s *gormStore) CreateRent(ctx context.Context, username string, roomID int64, dateStart, dateEnd time.Time) (*model.Rent, error) {
	if !dateEnd.After(dateStart) {
		return nil, &InvalidError{Field: "date_end"}
	}

	var rent model.Rent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.Where("deleted = ?", false).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: EntityRoom}
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		// Half-open ranges [start, end) overlap iff each starts before the
		// other ends.
		var overlapping int64
		err := tx.Model(&model.Rent{}).
			Where("room_id = ? AND deleted = ? AND date_start < ? AND ? < date_end",
				roomID, false, dateEnd, dateStart).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("failed to check lease overlap for room %d: %w", roomID, err)
		}
		if overlapping > 0 {
			return &InvalidError{Field: "date_start"}
		}

		rent = model.Rent{
			Username:    username,
			ApartmentID: room.ApartmentID,
			RoomID:      room.ID,
			DateStart:   dateStart,
			DateEnd:     dateEnd,
		}
		if err := tx.Create(&rent).Error; err != nil {
			return fmt.Errorf("failed to create rent: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rent, nil
}

// GetRent returns one lease record to the tenant or the apartment owner.
func (s *gormStore) GetRent(ctx context.Context, id int64, requester string) (*model.Rent, error) {
	var rent model.Rent
	err := s.db.WithContext(ctx).
		Where("deleted = ?", false).
		First(&rent, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityRent}
		}
		return nil, fmt.Errorf("failed to load rent %d: %w", id, err)
	}

	owner, err := s.apartmentOwner(ctx, rent.ApartmentID)
	if err != nil {
		return nil, err
	}
	if err := verifyRentParty(&rent, owner, requester); err != nil {
		return nil, err
	}
	return &rent, nil
}

// ListRents returns lease records matching the filters.
func (s *gormStore) ListRents(ctx context.Context, params ListRentsParams) ([]model.Rent, error) {
	q := s.db.WithContext(ctx).Where("deleted = ?", false)
	if params.Username != "" {
		q = q.Where("username = ?", params.Username)
	}
	if params.ApartmentID != 0 {
		q = q.Where("apartment_id = ?", params.ApartmentID)
	}
	if params.RoomID != 0 {
		q = q.Where("room_id = ?", params.RoomID)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var rents []model.Rent
	if err := q.Order("date_start DESC, id DESC").Limit(limit).Offset(params.Offset).Find(&rents).Error; err != nil {
		return nil, fmt.Errorf("failed to list rents: %w", err)
	}
	return rents, nil
}

// GetRoomStatus loads the room's live leases and derives its occupancy at the
// given date.
func (s *gormStore) GetRoomStatus(ctx context.Context, roomID int64, asOf time.Time) (RoomStatus, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Where("deleted = ?", false).First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: EntityRoom}
		}
		return "", fmt.Errorf("failed to load room %d: %w", roomID, err)
	}

	var rents []model.Rent
	err = s.db.WithContext(ctx).
		Where("room_id = ? AND deleted = ?", roomID, false).
		Find(&rents).Error
	if err != nil {
		return "", fmt.Errorf("failed to load rents for room %d: %w", roomID, err)
	}
	return ComputeRoomStatus(rents, asOf), nil
}
