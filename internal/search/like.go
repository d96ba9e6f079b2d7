// Package search provides the default free-text matcher for apartment
// listings. It satisfies the store's Searcher contract with a plain substring
// match over the listing text columns; a dedicated index can be swapped in
// behind the same interface.
package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// LikeSearcher matches apartments with SQL LIKE over title, subtitle and
// address.
type LikeSearcher struct {
	db *gorm.DB
}

// NewLikeSearcher creates a LIKE-based searcher on the given connection.
func NewLikeSearcher(db *gorm.DB) *LikeSearcher {
	return &LikeSearcher{db: db}
}

// Search returns the IDs of apartments whose text columns contain the query.
// Soft-delete filtering is the caller's concern.
func (s *LikeSearcher) Search(ctx context.Context, query string) ([]int64, error) {
	if query == "" {
		return nil, nil
	}

	pattern := "%" + query + "%"
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&model.Apartment{}).
		Where("title LIKE ? OR subtitle LIKE ? OR address LIKE ?", pattern, pattern, pattern).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("like search failed: %w", err)
	}
	return ids, nil
}
