package model

import "time"

// Community is a residential compound that apartments belong to.
type Community struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"uniqueIndex;size:64;not null" json:"name"`
	Address string `gorm:"size:256" json:"address"`
	Traffic string `json:"traffic"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Associations
	Apartments []Apartment `gorm:"foreignKey:CommunityID" json:"apartments,omitempty"`
	Schools    []*School   `gorm:"many2many:school_communities;" json:"schools,omitempty"`
}

// School groups the communities within reach of a campus. Used only to widen
// apartment list filters from a school to its communities.
type School struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Associations
	Communities []*Community `gorm:"many2many:school_communities;" json:"communities,omitempty"`
}
