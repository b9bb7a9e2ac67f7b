package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"Nil", nil, ""},
		{"Validation", NewValidationError("assetId", "must be positive"), KindValidation},
		{"Invalid block", NewInvalidBlockError("no block starts at 10:00"), KindValidation},
		{"Conflict", NewConflictError(RuleAssetUnavailable, "taken", nil), KindConflict},
		{"Weekly limit", NewWeeklyLimitError("Video Camera", 3, 3), KindConflict},
		{"Stale status", ErrStaleStatus, KindConflict},
		{"Lock held", fmt.Errorf("acquire: %w", ErrLockHeld), KindConflict},
		{"Transient", ErrTransient, KindConflict},
		{"Forbidden", NewForbiddenError(RuleCourseRestriction, "not enrolled"), KindForbidden},
		{"Not found", NewNotFoundError("asset", "7", ErrAssetNotFound), KindNotFound},
		{"Bare sentinel", ErrFineNotFound, KindNotFound},
		{"State transition", NewStateTransitionError("r1", "checkout", "PENDING", "CONFIRMED"), KindStateTransition},
		{"Expired", &StateTransitionError{ReservationID: "r1", Operation: "checkout", Err: ErrReservationExpired}, KindStateTransition},
		{"External", NewExternalServiceError("checkout", []string{"Asset not available"}, nil), KindExternalService},
		{"Unknown", errors.New("boom"), KindInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeInvalidBlock, ErrorCode(NewInvalidBlockError("bad")))
	assert.Equal(t, CodeValidation, ErrorCode(NewValidationError("x", "bad")))
	assert.Equal(t, CodeConflict, ErrorCode(NewWeeklyLimitError("Lighting", 3, 3)))
	assert.Equal(t, CodeForbidden, ErrorCode(NewForbiddenError(RuleInsufficientRole, "staff only")))
	assert.Equal(t, CodeNotFound, ErrorCode(NewNotFoundError("user", "u1", ErrUserNotFound)))
	assert.Equal(t, CodeInvalidTransition, ErrorCode(NewStateTransitionError("r1", "checkin", "CONFIRMED", "CHECKED_OUT")))
	assert.Equal(t, CodeReservationExpired, ErrorCode(&StateTransitionError{Err: ErrReservationExpired}))
	assert.Equal(t, CodeExternalService, ErrorCode(NewExternalServiceError("checkin", nil, errors.New("timeout"))))
	assert.Equal(t, CodeInternalServer, ErrorCode(errors.New("boom")))
}

func TestRuleOf(t *testing.T) {
	assert.Equal(t, RuleBlockLimitExceeded, RuleOf(NewWeeklyLimitError("Lighting", 3, 3)))
	assert.Equal(t, RuleOutstandingBalance, RuleOf(fmt.Errorf("admit: %w", NewForbiddenError(RuleOutstandingBalance, "fines"))))
	assert.Equal(t, RuleInvalidBlock, RuleOf(NewInvalidBlockError("bad")))
	assert.Equal(t, RuleConcurrentRequest, RuleOf(ErrTransient))
	assert.Equal(t, RuleConcurrentRequest, RuleOf(ErrStaleStatus))
	assert.Equal(t, Rule(""), RuleOf(NewValidationError("x", "bad")))
}

func TestWeeklyLimitError(t *testing.T) {
	err := NewWeeklyLimitError("Video Camera", 3, 3)
	assert.Equal(t, "Weekly limit exceeded for category Video Camera", err.Error())

	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))
	fields := conflict.LogFields()
	assert.Equal(t, "BLOCK_LIMIT_EXCEEDED", fields["rule"])
	assert.Equal(t, 3, fields["used"])
	assert.Equal(t, 3, fields["limit"])
}

func TestStateTransitionError_Message(t *testing.T) {
	err := NewStateTransitionError("r1", "checkout", "PENDING", "CONFIRMED")
	assert.Equal(t, "cannot checkout reservation r1: current status PENDING, expected CONFIRMED", err.Error())
	assert.True(t, IsStateTransitionError(err))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	expired := &StateTransitionError{ReservationID: "r1", Operation: "checkout", Current: "CONFIRMED", Err: ErrReservationExpired}
	assert.Equal(t, "cannot checkout reservation r1: reservation has expired", expired.Error())
	assert.NotErrorIs(t, expired, ErrInvalidTransition)
}

func TestExternalServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalServiceError("checkout", []string{"Asset is already checked out."}, cause)

	assert.True(t, IsExternalServiceError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "inventory checkout failed: Asset is already checked out.")

	var ext *ExternalServiceError
	assert.True(t, errors.As(err, &ext))
	assert.True(t, ext.Retryable())
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "assetId: must be positive", NewValidationError("assetId", "must be positive").Error())
	assert.Equal(t, "bad input", NewValidationError("", "bad input").Error())
}
