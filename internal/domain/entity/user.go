package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
)

// Role is resolved once when the user is loaded and carried as a typed value
type Role string

// Roles
const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a stored role string into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleStaff, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleStudent, nil
	}
	return "", errs.NewValidationError("role", fmt.Sprintf("unknown role %q", s))
}

// IsStaff reports whether the role may run staff operations
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User is a person eligible to reserve equipment
type User struct {
	ID                    string
	Email                 string
	Name                  string
	ExternalID            uint64 // inventory system user id
	Role                  Role
	HasOutstandingBalance bool
	EnrolledCourses       []string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsEnrolledIn reports whether the user is enrolled in any of the courses
func (u *User) IsEnrolledIn(courses ...string) bool {
	for _, want := range courses {
		for _, have := range u.EnrolledCourses {
			if want == have {
				return true
			}
		}
	}
	return false
}
