package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Todo struct {
	gorm.Model

	UserID uint   `gorm:"not null;index"` // Owning user, set at creation, immutable
	Text   string `gorm:"not null"`

	Completed     bool `gorm:"not null;default:false"`
	CompletedDate *time.Time
	DueDate       *datatypes.Date

	Tag        string `gorm:"not null;default:Personal"`
	Priority   string `gorm:"not null;default:Low"`  // "Low", "Medium", "High"
	Recurrence string `gorm:"not null;default:None"` // "None", "Daily", "Weekly", "Monthly"
	Reminder   bool   `gorm:"not null;default:false"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
