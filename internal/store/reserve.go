package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// ListReservesParams filters a booking listing query.
type ListReservesParams struct {
	Username        string
	ApartmentID     int64
	ReserveChoiceID int64
	Limit           int
	Offset          int
}

// CreateReserve books a viewing slot for the requester. The apartment ID is
// always derived from the slot, never accepted from the caller. Multiple
// tenants may book the same slot (group viewings).
func (s *gormStore) CreateReserve(ctx context.Context, slotID int64, requester string) (*model.Reserve, error) {
	var reserve model.Reserve
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot model.ReserveChoice
		if err := tx.Where("deleted = ?", false).First(&slot, slotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: EntityReserveChoice}
			}
			return fmt.Errorf("failed to load reserve choice %d: %w", slotID, err)
		}

		reserve = model.Reserve{
			Username:        requester,
			ApartmentID:     slot.ApartmentID,
			ReserveChoiceID: slot.ID,
			Cancelled:       false,
		}
		if err := tx.Create(&reserve).Error; err != nil {
			return fmt.Errorf("failed to create reserve: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reserve, nil
}

// SetReserveCancelled flips the cancelled flag. Allowed for the booking tenant
// and the apartment owner; the row itself is never hard-deleted.
func (s *gormStore) SetReserveCancelled(ctx context.Context, id int64, requester string, cancelled bool) (*model.Reserve, error) {
	reserve, err := s.loadReserve(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.apartmentOwner(ctx, reserve.ApartmentID)
	if err != nil {
		return nil, err
	}
	if err := verifyReserveParty(reserve, owner, requester); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(reserve).Update("cancelled", cancelled).Error; err != nil {
		return nil, fmt.Errorf("failed to update reserve %d: %w", id, err)
	}
	return reserve, nil
}

// GetReserve returns one booking to the tenant or the apartment owner.
func (s *gormStore) GetReserve(ctx context.Context, id int64, requester string) (*model.Reserve, error) {
	reserve, err := s.loadReserve(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.apartmentOwner(ctx, reserve.ApartmentID)
	if err != nil {
		return nil, err
	}
	if err := verifyReserveParty(reserve, owner, requester); err != nil {
		return nil, err
	}
	return reserve, nil
}

// ListReserves returns bookings visible to the requester. An apartment filter
// demands ownership of that apartment; without one, the listing is scoped to
// the requester's own bookings. Each returned row is independently re-checked
// against the party rule.
func (s *gormStore) ListReserves(ctx context.Context, params ListReservesParams, requester string) ([]model.Reserve, error) {
	q := s.db.WithContext(ctx).Where("deleted = ?", false)

	if params.ApartmentID != 0 {
		apartment, err := s.loadApartment(ctx, params.ApartmentID, false)
		if err != nil {
			return nil, err
		}
		if err := verifyApartmentOwner(apartment, requester); err != nil {
			return nil, err
		}
		q = q.Where("apartment_id = ?", params.ApartmentID)
		if params.Username != "" {
			q = q.Where("username = ?", params.Username)
		}
	} else {
		if params.Username != "" && params.Username != requester {
			return nil, &NotAuthorizedError{Entity: EntityReserve}
		}
		q = q.Where("username = ?", requester)
	}
	if params.ReserveChoiceID != 0 {
		q = q.Where("reserve_choice_id = ?", params.ReserveChoiceID)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var reserves []model.Reserve
	if err := q.Order("created_at DESC, id DESC").Limit(limit).Offset(params.Offset).Find(&reserves).Error; err != nil {
		return nil, fmt.Errorf("failed to list reserves: %w", err)
	}

	owners := make(map[int64]string)
	visible := reserves[:0]
	for i := range reserves {
		r := &reserves[i]
		owner, ok := owners[r.ApartmentID]
		if !ok {
			var err error
			owner, err = s.apartmentOwner(ctx, r.ApartmentID)
			if err != nil {
				return nil, err
			}
			owners[r.ApartmentID] = owner
		}
		if verifyReserveParty(r, owner, requester) == nil {
			visible = append(visible, *r)
		}
	}
	return visible, nil
}

// loadReserve fetches one booking, NotFound if missing or soft-deleted.
func (s *gormStore) loadReserve(ctx context.Context, id int64) (*model.Reserve, error) {
	var reserve model.Reserve
	err := s.db.WithContext(ctx).
		Where("deleted = ?", false).
		First(&reserve, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityReserve}
		}
		return nil, fmt.Errorf("failed to load reserve %d: %w", id, err)
	}
	return &reserve, nil
}

// apartmentOwner resolves the owner username of an apartment regardless of its
// soft-delete state, for party checks on historical bookings and leases.
func (s *gormStore) apartmentOwner(ctx context.Context, apartmentID int64) (string, error) {
	var apartment model.Apartment
	err := s.db.WithContext(ctx).
		Select("username").
		First(&apartment, apartmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve owner of apartment %d: %w", apartmentID, err)
	}
	return apartment.Username, nil
}
