package entity

import "time"

// Asset is a reservable physical item mirrored from the inventory system
type Asset struct {
	ID              uint64 // inventory system hardware id
	Tag             string // e.g. CAM-0001
	Name            string
	Category        string
	RequiredCourses []string // empty means unrestricted
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsRestricted reports whether the asset requires a course enrollment
func (a *Asset) IsRestricted() bool {
	return len(a.RequiredCourses) > 0
}
