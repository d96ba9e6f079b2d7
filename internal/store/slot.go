package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// CreateSlot publishes a viewing slot for an apartment. Only the owner may
// create slots, and the window must end after it starts.
func (s *gormStore) CreateSlot(ctx context.Context, apartmentID int64, requester, date, timeStart, timeEnd string) (*model.ReserveChoice, error) {
	apartment, err := s.loadApartment(ctx, apartmentID, false)
	if err != nil {
		return nil, err
	}
	if err := verifyApartmentOwner(apartment, requester); err != nil {
		return nil, err
	}

	in := SlotInput{Date: date, TimeStart: timeStart, TimeEnd: timeEnd}
	if err := in.validate(); err != nil {
		return nil, err
	}

	slot := model.ReserveChoice{
		ApartmentID: apartmentID,
		Date:        in.date,
		TimeStart:   in.TimeStart,
		TimeEnd:     in.TimeEnd,
	}
	if err := s.db.WithContext(ctx).Create(&slot).Error; err != nil {
		return nil, fmt.Errorf("failed to create reserve choice: %w", err)
	}
	return &slot, nil
}

// ListSlots returns all live viewing slots of an apartment. The read is
// public: prospective tenants browse slots before they ever authenticate.
func (s *gormStore) ListSlots(ctx context.Context, apartmentID int64) ([]model.ReserveChoice, error) {
	var slots []model.ReserveChoice
	err := s.db.WithContext(ctx).
		Where("apartment_id = ? AND deleted = ?", apartmentID, false).
		Order("date, time_start").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reserve choices: %w", err)
	}
	return slots, nil
}

// GetSlot returns one viewing slot, NotFound if missing or soft-deleted.
func (s *gormStore) GetSlot(ctx context.Context, id int64) (*model.ReserveChoice, error) {
	var slot model.ReserveChoice
	err := s.db.WithContext(ctx).
		Where("deleted = ?", false).
		First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityReserveChoice}
		}
		return nil, fmt.Errorf("failed to load reserve choice %d: %w", id, err)
	}
	return &slot, nil
}
