package models

import "time"

// Preference is one persisted key/value pair in a namespace (a user id or a device id).
type Preference struct {
	Namespace string    `gorm:"primaryKey;size:64" json:"namespace"`
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Preference) TableName() string { return "preferences" }
