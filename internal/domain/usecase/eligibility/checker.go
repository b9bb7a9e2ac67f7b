package eligibility

import (
	"fmt"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
)

// IsEligible reports whether the user's enrollments grant access to the asset.
// Unrestricted assets are open to everyone.
func IsEligible(user *entity.User, asset *entity.Asset) bool {
	if !asset.IsRestricted() {
		return true
	}
	return user.IsEnrolledIn(asset.RequiredCourses...)
}

// Check returns a COURSE_RESTRICTION denial when the user is not eligible
func Check(user *entity.User, asset *entity.Asset) error {
	if IsEligible(user, asset) {
		return nil
	}
	return errs.NewForbiddenError(errs.RuleCourseRestriction,
		fmt.Sprintf("%s requires enrollment in one of: %v", asset.Tag, asset.RequiredCourses))
}

// CheckStanding returns an OUTSTANDING_BALANCE denial when the user owes unpaid fines
func CheckStanding(user *entity.User) error {
	if user.HasOutstandingBalance {
		return errs.NewForbiddenError(errs.RuleOutstandingBalance, "unpaid fines must be settled before reserving equipment")
	}
	return nil
}
