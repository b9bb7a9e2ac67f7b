package model

import (
	"time"
)

// AdmissionLock is an expiring named lock held while an admission request
// checks and creates a reservation
type AdmissionLock struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Owner     string    `gorm:"not null;size:64"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AdmissionLock
func (AdmissionLock) TableName() string {
	return "admission_locks"
}
