package dto

import (
	"time"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
)

// CreateReservationRequest is the body of POST /reservations
type CreateReservationRequest struct {
	AssetID   uint64    `json:"assetId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Category  string    `json:"category"`
}

// CreateReservationResponse is returned when a reservation is admitted
type CreateReservationResponse struct {
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`
}

// ReservationIDRequest is the body of POST /checkout and POST /checkin
type ReservationIDRequest struct {
	ReservationID string `json:"reservationId" binding:"required,uuid"`
}

// ReservationResponse represents a reservation
type ReservationResponse struct {
	ID        string    `json:"id"`
	AssetID   uint64    `json:"assetId"`
	AssetTag  string    `json:"assetTag,omitempty"`
	ModelName string    `json:"modelName,omitempty"`
	UserID    string    `json:"userId"`
	Category  string    `json:"category"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserReservationsResponse is the per-user summary
type UserReservationsResponse struct {
	Upcoming      []ReservationResponse             `json:"upcoming"`
	Past          []ReservationResponse             `json:"past"`
	CategoryUsage map[string]usecase.CategoryUsage `json:"categoryUsage"`
}

// NewReservationResponse maps a reservation to its response form
func NewReservationResponse(r *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID.String(),
		AssetID:   r.AssetID,
		UserID:    r.UserID,
		Category:  r.Category,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// NewReservationResponses maps a list of reservations
func NewReservationResponses(reservations []*entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, NewReservationResponse(r))
	}
	return out
}

// NewUserReservationsResponse maps the per-user summary
func NewUserReservationsResponse(summary *usecase.UserReservations) UserReservationsResponse {
	resp := UserReservationsResponse{
		Upcoming:      viewsToResponses(summary.Upcoming),
		Past:          viewsToResponses(summary.Past),
		CategoryUsage: summary.CategoryUsage,
	}
	if resp.CategoryUsage == nil {
		resp.CategoryUsage = map[string]usecase.CategoryUsage{}
	}
	return resp
}

func viewsToResponses(views []usecase.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(views))
	for _, v := range views {
		r := NewReservationResponse(v.Reservation)
		r.AssetTag = v.AssetTag
		r.ModelName = v.ModelName
		out = append(out, r)
	}
	return out
}
