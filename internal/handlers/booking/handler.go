package booking

import (
	"hallbook/infras/otel"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/service"
	"hallbook/shared/constant"
	"hallbook/shared/failure"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgBookingCreated = "Booking created"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings", handler.CreateBooking)
	router.Get("/halls/{"+constant.RequestParamID+"}/availability", handler.GetAvailability)
}

// CreateBooking books a hall for a time slot.
// @Summary Create a booking
// @Description Book a hall. Rejected when it overlaps a confirmed booking of the same hall, endpoints included.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error "Validation error or overlapping time slot"
// @Failure 500 {object} response.Error
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.IsFailure(err) {
			log.Warn().Err(err).Msg("booking rejected")
		} else {
			log.Error().Err(err).Msg("failed to create booking")
		}

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{
		Message:   msgBookingCreated,
		BookingID: id,
	})
}

// GetAvailability lists the booked slots of a hall.
// @Summary Get hall availability
// @Description Retrieve the confirmed time slots of a hall. An unknown hall has none.
// @Tags Booking
// @Produce json
// @Param id path int true "Hall ID"
// @Success 200 {array} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /halls/{id}/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	hallID, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("malformed hall id")

		response.WithError(writer, failure.InvalidHallID)

		return
	}

	slots, err := handler.service.GetAvailability(ctx, hallID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("hallID", hallID).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, slots)
}
