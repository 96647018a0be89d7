package dto

import (
	"hallbook/internal/domains/booking/model"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest uses pointers so that a missing id or purpose is told
// apart from a zero value.
type CreateBookingRequest struct {
	HallID    *int64  `json:"hall_id"    validate:"required"`
	UserID    *int64  `json:"user_id"    validate:"required"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time"   validate:"required"`
	Purpose   *string `json:"purpose"    validate:"required"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	booking := model.Booking{
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Status:    model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}

	if c.HallID != nil {
		booking.HallID = *c.HallID
	}

	if c.UserID != nil {
		booking.UserID = *c.UserID
	}

	if c.Purpose != nil {
		booking.Purpose = *c.Purpose
	}

	return booking
}

type CreateBookingResponse struct {
	Message   string `json:"message"    example:"Booking created"`
	BookingID int64  `json:"booking_id" example:"1"`
}

type AvailabilityResponse struct {
	StartTime string `json:"start_time" example:"2024-05-01 09:00"`
	EndTime   string `json:"end_time"   example:"2024-05-01 11:00"`
}

// NewAvailabilityResponse keeps storage order and never returns nil.
func NewAvailabilityResponse(models []model.Booking) []AvailabilityResponse {
	res := make([]AvailabilityResponse, len(models))
	for i, mod := range models {
		res[i] = AvailabilityResponse{
			StartTime: mod.StartTime,
			EndTime:   mod.EndTime,
		}
	}

	return res
}

// BookingCreatedEvent is published after a booking commits.
type BookingCreatedEvent struct {
	EventID   string    `json:"event_id"`
	BookingID int64     `json:"booking_id"`
	HallID    int64     `json:"hall_id"`
	UserID    int64     `json:"user_id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingCreatedEvent(id int64, booking model.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		EventID:   uuid.NewString(),
		BookingID: id,
		HallID:    booking.HallID,
		UserID:    booking.UserID,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		Purpose:   booking.Purpose,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
	}
}
