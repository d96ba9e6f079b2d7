package model

import "time"

// Listing types. 0: the whole apartment is rented as one unit,
// 1: rooms are rented out individually.
const (
	ListingTypeWhole  = 0
	ListingTypeShared = 1
)

// Apartment is a published rental listing together with the collections it
// exclusively owns (rooms, devices, photos, viewing slots). Tags are shared
// across apartments through the apartment_tags join table.
type Apartment struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"size:64;index;not null" json:"username"` // owner
	CommunityID int64  `gorm:"index" json:"community_id"`

	Title    string `gorm:"size:64;not null" json:"title"`
	Subtitle string `gorm:"size:64" json:"subtitle"`
	Address  string `gorm:"size:256" json:"address"`

	NumBedroom    int `json:"num_bedroom"`
	NumLivingRoom int `json:"num_livingroom"`
	NumBathroom   int `json:"num_bathroom"`
	Type          int `json:"type"`

	// Opaque asset reference for the scanned rental contract.
	ContractRef string `gorm:"size:64" json:"contract_ref"`

	// Cancelled hides the listing from default searches; Deleted soft-deletes
	// it. The two flags are independent.
	Cancelled bool `gorm:"not null;default:false" json:"cancelled"`
	Deleted   bool `gorm:"not null;default:false" json:"deleted"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Rooms          []Room          `gorm:"foreignKey:ApartmentID" json:"rooms,omitempty"`
	Devices        []Device        `gorm:"foreignKey:ApartmentID" json:"devices,omitempty"`
	Photos         []Photo         `gorm:"foreignKey:ApartmentID" json:"photos,omitempty"`
	ReserveChoices []ReserveChoice `gorm:"foreignKey:ApartmentID" json:"reserve_choices,omitempty"`
	Tags           []Tag           `gorm:"many2many:apartment_tags;" json:"tags,omitempty"`
}

// MinPrice returns the lowest price among the apartment's live rooms, or nil
// when the apartment has no rooms.
func (a *Apartment) MinPrice() *int {
	var min *int
	for i := range a.Rooms {
		r := &a.Rooms[i]
		if r.Deleted {
			continue
		}
		if min == nil || r.Price < *min {
			p := r.Price
			min = &p
		}
	}
	return min
}

// MaxPrice returns the highest price among the apartment's live rooms, or nil
// when the apartment has no rooms.
func (a *Apartment) MaxPrice() *int {
	var max *int
	for i := range a.Rooms {
		r := &a.Rooms[i]
		if r.Deleted {
			continue
		}
		if max == nil || r.Price > *max {
			p := r.Price
			max = &p
		}
	}
	return max
}

// Device is a piece of equipment included with an apartment (e.g. two air
// conditioners). Owned by exactly one apartment, never shared.
type Device struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	ApartmentID int64  `gorm:"index;not null" json:"apartment_id"`
	Name        string `gorm:"size:64;not null" json:"name"`
	Count       int    `gorm:"not null" json:"count"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// Photo references a binary asset attached to an apartment. Ref is an opaque
// content reference issued by the asset store.
type Photo struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	ApartmentID int64  `gorm:"index;not null" json:"apartment_id"`
	Ref         string `gorm:"size:64;not null" json:"ref"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
