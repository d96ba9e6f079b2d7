package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"rental-listing-backend/internal/model"
)

// IsFavorited reports whether the user has bookmarked the apartment.
func (s *gormStore) IsFavorited(ctx context.Context, apartmentID int64, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("username = ? AND apartment_id = ?", username, apartmentID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// FavoriteApartment bookmarks an apartment for the user. Repeated calls are
// no-ops.
func (s *gormStore) FavoriteApartment(ctx context.Context, username string, apartmentID int64) error {
	if _, err := s.loadApartment(ctx, apartmentID, false); err != nil {
		return err
	}
	favorite := model.Favorite{Username: username, ApartmentID: apartmentID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite).Error
	if err != nil {
		return fmt.Errorf("failed to favorite apartment %d: %w", apartmentID, err)
	}
	return nil
}

// UnfavoriteApartment removes the user's bookmark, if any.
func (s *gormStore) UnfavoriteApartment(ctx context.Context, username string, apartmentID int64) error {
	err := s.db.WithContext(ctx).
		Where("username = ? AND apartment_id = ?", username, apartmentID).
		Delete(&model.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to unfavorite apartment %d: %w", apartmentID, err)
	}
	return nil
}

// ListFavoriteApartments returns the user's bookmarked listings, excluding
// soft-deleted ones.
func (s *gormStore) ListFavoriteApartments(ctx context.Context, username string) ([]model.Apartment, error) {
	var apartments []model.Apartment
	err := s.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.apartment_id = apartments.id").
		Where("favorites.username = ? AND apartments.deleted = ?", username, false).
		Preload("Rooms", "deleted = ?", false).
		Order("favorites.created_at DESC").
		Find(&apartments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return apartments, nil
}
