package model

import "time"

// PushSubscription holds a user's browser push subscription, used to notify
// owners and tenants about booking events.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	Username  string    `gorm:"size:64;index;not null" json:"username"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
