package model

import "time"

// Tag is a descriptive label shared across apartments. Names are globally
// unique; tag creation is get-or-create by name.
type Tag struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
