package model

import "time"

// Rent records a lease of one room for a date range. The range is half-open:
// date_start inclusive, date_end exclusive.
type Rent struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"size:64;index;not null" json:"username"` // tenant
	ApartmentID int64  `gorm:"index;not null" json:"apartment_id"`
	RoomID      int64  `gorm:"index;not null" json:"room_id"`

	DateStart time.Time `gorm:"not null" json:"date_start"`
	DateEnd   time.Time `gorm:"not null" json:"date_end"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// Covers reports whether the lease is active at the given date.
func (r *Rent) Covers(asOf time.Time) bool {
	return !r.Deleted && !r.DateStart.After(asOf) && asOf.Before(r.DateEnd)
}
