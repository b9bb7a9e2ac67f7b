package model

import (
	"time"

	"github.com/google/uuid"
)

// Reservation represents the database model for reservations
type Reservation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssetID   uint64    `gorm:"not null;index"`
	UserID    string    `gorm:"not null;size:64;index"`
	Category  string    `gorm:"not null;size:100"`
	StartTime time.Time `gorm:"type:timestamptz;not null"`
	EndTime   time.Time `gorm:"type:timestamptz;not null"`
	Status    string    `gorm:"not null;size:20"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}
