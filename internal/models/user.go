package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Responses    []Response `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"responses,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
