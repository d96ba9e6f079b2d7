package model

import "time"

// Room is a rentable room inside an apartment. Rooms are created only as part
// of apartment creation and are never re-parented. Occupancy is derived from
// the room's rent records, never stored here.
type Room struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	ApartmentID int64  `gorm:"index;not null" json:"apartment_id"`
	Name        string `gorm:"size:32;not null" json:"name"`
	Area        int    `json:"area"`
	Price       int    `json:"price"`

	// Earliest date a tenant can move in.
	DateEntrance time.Time `json:"date_entrance"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
