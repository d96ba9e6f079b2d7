package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// GetApartmentOptions controls a single-apartment read. RequestingUser, when
// set, enriches the response with that user's favorite status. IncludeDeleted
// bypasses the soft-delete filter for audit reads.
type GetApartmentOptions struct {
	RequestingUser string
	IncludeDeleted bool
}

// ApartmentDetail is a fully loaded apartment aggregate plus derived fields.
type ApartmentDetail struct {
	model.Apartment
	MinPrice  *int  `json:"min_price"`
	MaxPrice  *int  `json:"max_price"`
	Favorited *bool `json:"favorited,omitempty"`
}

// ListApartmentsParams filters an apartment listing query. SchoolID widens the
// community filter to every community near that school.
type ListApartmentsParams struct {
	Owner           string
	CommunityID     int64
	SchoolID        int64
	FilterCancelled bool
	FilterDeleted   bool
	Limit           int
	Offset          int
}

// DefaultListLimit caps list results when the caller does not set a limit.
const DefaultListLimit = 10

// CreateApartment validates the nested payload up front and commits the
// apartment row together with all of its rooms, devices, slots and tag links
// as one transaction. Any failure rolls the whole aggregate back.
func (s *gormStore) CreateApartment(ctx context.Context, owner string, in ApartmentInput) (*model.Apartment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	apartment := model.Apartment{
		Username:      owner,
		CommunityID:   in.CommunityID,
		Title:         in.Title,
		Subtitle:      in.Subtitle,
		Address:       in.Address,
		NumBedroom:    in.NumBedroom,
		NumLivingRoom: in.NumLivingRoom,
		NumBathroom:   in.NumBathroom,
		Type:          in.Type,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&apartment).Error; err != nil {
			return fmt.Errorf("failed to create apartment: %w", err)
		}

		for _, d := range in.Devices {
			device := model.Device{ApartmentID: apartment.ID, Name: d.Name, Count: d.Count}
			if err := tx.Create(&device).Error; err != nil {
				return fmt.Errorf("failed to create device %q: %w", d.Name, err)
			}
			apartment.Devices = append(apartment.Devices, device)
		}

		for _, sl := range in.ReserveChoices {
			slot := model.ReserveChoice{
				ApartmentID: apartment.ID,
				Date:        sl.date,
				TimeStart:   sl.TimeStart,
				TimeEnd:     sl.TimeEnd,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return fmt.Errorf("failed to create reserve choice: %w", err)
			}
			apartment.ReserveChoices = append(apartment.ReserveChoices, slot)
		}

		for _, r := range in.Rooms {
			room := model.Room{
				ApartmentID:  apartment.ID,
				Name:         r.Name,
				Area:         r.Area,
				Price:        r.Price,
				DateEntrance: r.dateEntrance,
			}
			if err := tx.Create(&room).Error; err != nil {
				return fmt.Errorf("failed to create room %q: %w", r.Name, err)
			}
			apartment.Rooms = append(apartment.Rooms, room)
		}

		if len(in.Tags) > 0 {
			var tags []model.Tag
			for _, t := range in.Tags {
				tag, err := getOrCreateTag(tx, t.Name)
				if err != nil {
					return err
				}
				tags = append(tags, tag)
			}
			if err := tx.Model(&apartment).Association("Tags").Replace(&tags); err != nil {
				return fmt.Errorf("failed to link tags: %w", err)
			}
			apartment.Tags = tags
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &apartment, nil
}

// getOrCreateTag resolves a tag by its globally unique name, creating it on
// first use. Repeated names always yield the same row.
func getOrCreateTag(tx *gorm.DB, name string) (model.Tag, error) {
	var tag model.Tag
	if err := tx.Where("name = ?", name).FirstOrCreate(&tag, model.Tag{Name: name}).Error; err != nil {
		return tag, fmt.Errorf("failed to get or create tag %q: %w", name, err)
	}
	return tag, nil
}

// UpdateApartment applies a partial update after an ownership check. Only
// non-nil fields of upd are written.
func (s *gormStore) UpdateApartment(ctx context.Context, id int64, requester string, upd ApartmentUpdate) (*model.Apartment, error) {
	apartment, err := s.loadApartment(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if err := verifyApartmentOwner(apartment, requester); err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if upd.CommunityID != nil {
		updates["community_id"] = *upd.CommunityID
	}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Subtitle != nil {
		updates["subtitle"] = *upd.Subtitle
	}
	if upd.Address != nil {
		updates["address"] = *upd.Address
	}
	if upd.NumBedroom != nil {
		updates["num_bedroom"] = *upd.NumBedroom
	}
	if upd.NumLivingRoom != nil {
		updates["num_living_room"] = *upd.NumLivingRoom
	}
	if upd.NumBathroom != nil {
		updates["num_bathroom"] = *upd.NumBathroom
	}
	if upd.Type != nil {
		updates["type"] = *upd.Type
	}
	if upd.ContractRef != nil {
		updates["contract_ref"] = *upd.ContractRef
	}
	if upd.Cancelled != nil {
		updates["cancelled"] = *upd.Cancelled
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(apartment).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update apartment %d: %w", id, err)
		}
	}
	return s.loadApartment(ctx, id, false)
}

// GetApartment returns the apartment with its nested collections, optionally
// enriched with the requesting user's favorite status.
func (s *gormStore) GetApartment(ctx context.Context, id int64, opts GetApartmentOptions) (*ApartmentDetail, error) {
	apartment, err := s.loadApartment(ctx, id, opts.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	detail := &ApartmentDetail{
		Apartment: *apartment,
		MinPrice:  apartment.MinPrice(),
		MaxPrice:  apartment.MaxPrice(),
	}

	if opts.RequestingUser != "" {
		favorited, err := s.IsFavorited(ctx, id, opts.RequestingUser)
		if err != nil {
			return nil, err
		}
		detail.Favorited = &favorited
	}
	return detail, nil
}

// ListApartments returns apartments matching the filters, newest first.
func (s *gormStore) ListApartments(ctx context.Context, params ListApartmentsParams) ([]model.Apartment, error) {
	q := s.db.WithContext(ctx).Model(&model.Apartment{})
	if params.FilterDeleted {
		q = q.Where("deleted = ?", false)
	}
	if params.FilterCancelled {
		q = q.Where("cancelled = ?", false)
	}
	if params.Owner != "" {
		q = q.Where("username = ?", params.Owner)
	}
	if params.CommunityID != 0 {
		q = q.Where("community_id = ?", params.CommunityID)
	}
	if params.SchoolID != 0 {
		communityIDs, err := s.CommunityIDsForSchool(ctx, params.SchoolID)
		if err != nil {
			return nil, err
		}
		if len(communityIDs) == 0 {
			return nil, nil
		}
		q = q.Where("community_id IN ?", communityIDs)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var apartments []model.Apartment
	err := q.Preload("Rooms", "deleted = ?", false).
		Preload("Tags", "deleted = ?", false).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(params.Offset).
		Find(&apartments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	return apartments, nil
}

// SearchApartments delegates free-text matching to the search collaborator
// and re-applies the soft-delete filter over the returned IDs.
func (s *gormStore) SearchApartments(ctx context.Context, query string) ([]model.Apartment, error) {
	ids, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var apartments []model.Apartment
	err = s.db.WithContext(ctx).
		Where("id IN ? AND deleted = ?", ids, false).
		Preload("Rooms", "deleted = ?", false).
		Preload("Tags", "deleted = ?", false).
		Order("created_at DESC, id DESC").
		Find(&apartments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load searched apartments: %w", err)
	}
	return apartments, nil
}

// SetApartmentDeleted soft-deletes (or restores) a listing. Owner only.
func (s *gormStore) SetApartmentDeleted(ctx context.Context, id int64, requester string, deleted bool) error {
	apartment, err := s.loadApartment(ctx, id, true)
	if err != nil {
		return err
	}
	if err := verifyApartmentOwner(apartment, requester); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(apartment).Update("deleted", deleted).Error; err != nil {
		return fmt.Errorf("failed to mark apartment %d deleted=%t: %w", id, deleted, err)
	}
	return nil
}

// AddApartmentPhotos attaches uploaded asset references to a listing: an
// optional contract scan plus any number of photos, committed together.
func (s *gormStore) AddApartmentPhotos(ctx context.Context, id int64, requester, contractRef string, photoRefs []string) (*ApartmentDetail, error) {
	apartment, err := s.loadApartment(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if err := verifyApartmentOwner(apartment, requester); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if contractRef != "" {
			if err := tx.Model(apartment).Update("contract_ref", contractRef).Error; err != nil {
				return fmt.Errorf("failed to set contract ref: %w", err)
			}
		}
		for _, ref := range photoRefs {
			photo := model.Photo{ApartmentID: id, Ref: ref}
			if err := tx.Create(&photo).Error; err != nil {
				return fmt.Errorf("failed to create photo: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetApartment(ctx, id, GetApartmentOptions{})
}

// loadApartment fetches one apartment with its live nested collections.
func (s *gormStore) loadApartment(ctx context.Context, id int64, includeDeleted bool) (*model.Apartment, error) {
	q := s.db.WithContext(ctx).
		Preload("Rooms", "deleted = ?", false).
		Preload("Devices", "deleted = ?", false).
		Preload("Photos", "deleted = ?", false).
		Preload("ReserveChoices", "deleted = ?", false).
		Preload("Tags", "deleted = ?", false)
	if !includeDeleted {
		q = q.Where("deleted = ?", false)
	}

	var apartment model.Apartment
	if err := q.First(&apartment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityApartment}
		}
		return nil, fmt.Errorf("failed to load apartment %d: %w", id, err)
	}
	return &apartment, nil
}
