package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
)

// maxListLimit caps admin listings
const maxListLimit = 500

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errs.NewValidationError(field, "must be a UUID")
	}
	return id, nil
}

func parseUint(field, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil || n == 0 {
		return 0, errs.NewValidationError(field, "must be a positive integer")
	}
	return n, nil
}

func parseOptionalInt(c *gin.Context, field string) (int, error) {
	raw := c.Query(field)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errs.NewValidationError(field, "must be a non-negative integer")
	}
	return n, nil
}

func parseOptionalTime(c *gin.Context, field string) (time.Time, error) {
	raw := c.Query(field)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValidationError(field, "must be an RFC 3339 timestamp")
	}
	return t, nil
}

// parseOptionalDate accepts an RFC 3339 timestamp or a YYYY-MM-DD date taken as UTC midnight
func parseOptionalDate(c *gin.Context, field string) (time.Time, error) {
	raw := c.Query(field)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValidationError(field, "must be a date or an RFC 3339 timestamp")
	}
	return t, nil
}

// parseReservationFilter reads ?status=&assetId=&userId=&category=&from=&to=&limit=&offset=
func parseReservationFilter(c *gin.Context) (persistence.ReservationFilter, error) {
	var filter persistence.ReservationFilter

	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status, err := entity.ParseReservationStatus(strings.ToUpper(strings.TrimSpace(s)))
			if err != nil {
				return filter, err
			}
			filter.StatusIn = append(filter.StatusIn, status)
		}
	}

	if raw := c.Query("assetId"); raw != "" {
		id, err := parseUint("assetId", raw)
		if err != nil {
			return filter, err
		}
		filter.AssetID = id
	}

	filter.UserID = c.Query("userId")
	filter.Category = c.Query("category")

	var err error
	if filter.StartFrom, err = parseOptionalTime(c, "from"); err != nil {
		return filter, err
	}
	if filter.StartBefore, err = parseOptionalTime(c, "to"); err != nil {
		return filter, err
	}
	if filter.Limit, err = parseOptionalInt(c, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = parseOptionalInt(c, "offset"); err != nil {
		return filter, err
	}
	if filter.Limit == 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return filter, nil
}

func bindError(err error) error {
	return errs.NewValidationError("body", err.Error())
}
