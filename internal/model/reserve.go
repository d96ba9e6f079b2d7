package model

import "time"

// ReserveChoice is an owner-defined viewing slot: a date plus a time window
// during which the apartment can be visited. Time-of-day values are stored in
// HH:MM:SS form.
type ReserveChoice struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	ApartmentID int64     `gorm:"index;not null" json:"apartment_id"`
	Date        time.Time `gorm:"not null" json:"date"`
	TimeStart   string    `gorm:"size:8;not null" json:"time_start"`
	TimeEnd     string    `gorm:"size:8;not null" json:"time_end"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Associations
	Reserves []Reserve `gorm:"foreignKey:ReserveChoiceID" json:"reserves,omitempty"`
}

// Reserve is a tenant's booking of a viewing slot. ApartmentID is denormalized
// from the referenced slot for query speed; the write path always derives it
// from the slot, never from the caller.
type Reserve struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	Username        string `gorm:"size:64;index;not null" json:"username"` // tenant
	ApartmentID     int64  `gorm:"index;not null" json:"apartment_id"`
	ReserveChoiceID int64  `gorm:"index;not null" json:"reserve_choice_id"`

	// Cancelled reserves stay on record; they are never hard-deleted.
	Cancelled bool `gorm:"not null;default:false" json:"cancelled"`
	Deleted   bool `gorm:"not null;default:false" json:"deleted"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
