package model

import (
	"time"

	"github.com/google/uuid"
)

// Fine represents the database model for fines
type Fine struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        string     `gorm:"not null;size:64;index"`
	ReservationID *uuid.UUID `gorm:"type:uuid"`
	Reason        string     `gorm:"type:text;not null"`
	AmountCents   int64      `gorm:"not null"`
	Paid          bool       `gorm:"not null;default:false"`
	IssuedAt      time.Time  `gorm:"not null"`
	PaidAt        *time.Time
}

// TableName specifies the table name for Fine
func (Fine) TableName() string {
	return "fines"
}
