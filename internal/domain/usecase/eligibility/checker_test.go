package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
)

func TestIsEligible(t *testing.T) {
	unrestricted := &entity.Asset{ID: 1, Tag: "CAM-0001", Category: "Video Camera"}
	restricted := &entity.Asset{ID: 2, Tag: "CAM-0002", Category: "Video Camera", RequiredCourses: []string{"FILM-201", "FILM-301"}}

	testCases := []struct {
		name     string
		courses  []string
		asset    *entity.Asset
		expected bool
	}{
		{"Unrestricted asset with no enrollments", nil, unrestricted, true},
		{"Unrestricted asset with enrollments", []string{"ART-100"}, unrestricted, true},
		{"Restricted asset with matching course", []string{"ART-100", "FILM-301"}, restricted, true},
		{"Restricted asset without matching course", []string{"ART-100"}, restricted, false},
		{"Restricted asset with no enrollments", nil, restricted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := &entity.User{ID: "u1", EnrolledCourses: tc.courses}
			assert.Equal(t, tc.expected, IsEligible(user, tc.asset))

			err := Check(user, tc.asset)
			if tc.expected {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.ErrForbidden)
				assert.Equal(t, errs.RuleCourseRestriction, errs.RuleOf(err))
			}
		})
	}
}

func TestCheckStanding(t *testing.T) {
	assert.NoError(t, CheckStanding(&entity.User{ID: "u1"}))

	err := CheckStanding(&entity.User{ID: "u1", HasOutstandingBalance: true})
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, errs.RuleOutstandingBalance, errs.RuleOf(err))
}
