package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// CommunityIDsForSchool resolves a school to the IDs of its nearby
// communities via the school_communities join table.
func (s *gormStore) CommunityIDsForSchool(ctx context.Context, schoolID int64) ([]int64, error) {
	var school model.School
	err := s.db.WithContext(ctx).Where("deleted = ?", false).First(&school, schoolID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntitySchool}
		}
		return nil, fmt.Errorf("failed to load school %d: %w", schoolID, err)
	}

	var ids []int64
	err = s.db.WithContext(ctx).
		Table("school_communities").
		Where("school_id = ?", schoolID).
		Pluck("community_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve communities of school %d: %w", schoolID, err)
	}
	return ids, nil
}

// GetCommunity returns one community, NotFound if missing or soft-deleted.
func (s *gormStore) GetCommunity(ctx context.Context, id int64) (*model.Community, error) {
	var community model.Community
	err := s.db.WithContext(ctx).Where("deleted = ?", false).First(&community, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityCommunity}
		}
		return nil, fmt.Errorf("failed to load community %d: %w", id, err)
	}
	return &community, nil
}

// ListCommunities returns live communities, optionally restricted to one
// school's reach.
func (s *gormStore) ListCommunities(ctx context.Context, schoolID int64) ([]model.Community, error) {
	q := s.db.WithContext(ctx).Where("deleted = ?", false)
	if schoolID != 0 {
		ids, err := s.CommunityIDsForSchool(ctx, schoolID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, nil
		}
		q = q.Where("id IN ?", ids)
	}

	var communities []model.Community
	if err := q.Order("name").Find(&communities).Error; err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}
	return communities, nil
}

// SearchCommunities matches community names against a substring query.
func (s *gormStore) SearchCommunities(ctx context.Context, query string) ([]model.Community, error) {
	var communities []model.Community
	err := s.db.WithContext(ctx).
		Where("deleted = ? AND name LIKE ?", false, "%"+query+"%").
		Order("name").
		Find(&communities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search communities: %w", err)
	}
	return communities, nil
}

// ListSchools returns all live schools.
func (s *gormStore) ListSchools(ctx context.Context) ([]model.School, error) {
	var schools []model.School
	err := s.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("name").
		Find(&schools).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return schools, nil
}

// SearchSchools matches school names against a substring query.
func (s *gormStore) SearchSchools(ctx context.Context, query string) ([]model.School, error) {
	var schools []model.School
	err := s.db.WithContext(ctx).
		Where("deleted = ? AND name LIKE ?", false, "%"+query+"%").
		Order("name").
		Find(&schools).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search schools: %w", err)
	}
	return schools, nil
}
