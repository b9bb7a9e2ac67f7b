package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID                    string       `gorm:"primaryKey;size:64"`
	Email                 string       `gorm:"uniqueIndex;not null;size:255"`
	Name                  string       `gorm:"not null;size:255"`
	ExternalID            uint64       `gorm:"not null;default:0"` // inventory system user id
	Role                  string       `gorm:"not null;size:20;default:student"`
	HasOutstandingBalance bool         `gorm:"not null;default:false"`
	Enrollments           []Enrollment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time    `gorm:"not null"`
	UpdatedAt             time.Time    `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Enrollment records a user's enrollment in a course
type Enrollment struct {
	UserID string `gorm:"primaryKey;size:64"`
	Course string `gorm:"primaryKey;size:64"`
}

// TableName specifies the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}
