package model

import (
	"time"
)

// Asset represents the database model for the local inventory mirror.
// ID is the inventory system's hardware id and is never generated locally.
type Asset struct {
	ID        uint64        `gorm:"primaryKey;autoIncrement:false"`
	Tag       string        `gorm:"uniqueIndex;not null;size:64"`
	Name      string        `gorm:"not null;size:255"`
	Category  string        `gorm:"not null;size:100;index"`
	ImageURL  string        `gorm:"size:1024"`
	Courses   []AssetCourse `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time     `gorm:"not null"`
	UpdatedAt time.Time     `gorm:"not null"`
}

// TableName specifies the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// AssetCourse grants access to an asset to students enrolled in a course
type AssetCourse struct {
	AssetID uint64 `gorm:"primaryKey"`
	Course  string `gorm:"primaryKey;size:64"`
}

// TableName specifies the table name for AssetCourse
func (AssetCourse) TableName() string {
	return "asset_courses"
}
