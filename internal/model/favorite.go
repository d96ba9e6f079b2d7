package model

import "time"

// Favorite marks an apartment as bookmarked by a user.
type Favorite struct {
	Username    string    `gorm:"primaryKey;size:64" json:"username"`
	ApartmentID int64     `gorm:"primaryKey" json:"apartment_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
