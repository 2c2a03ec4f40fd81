package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Username     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Advisory copy of the most recently issued session token. Never
	// consulted during validation; the token signature is authoritative.
	LastToken string

	// Relationships
	Todos []Todo `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
