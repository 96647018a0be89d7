package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"hallbook/config"
	"hallbook/infras/kafka"
	"hallbook/infras/metrics"
	"hallbook/infras/otel"
	"hallbook/internal/domains/booking/model"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/repository"
	"hallbook/shared/constant"
	"hallbook/shared/failure"
	"hallbook/shared/validator"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	GetAvailability(ctx context.Context, hallID int64) ([]dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

// Create accepts the booking only if no confirmed booking of the same hall
// overlaps it. Lock, check and insert share one transaction, so concurrent
// requests for a hall are decided one at a time.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		metrics.ObserveBooking(metrics.BookingOutcomeInvalid)

		return 0, err //nolint:wrapcheck
	}

	booking := req.ToModel()
	scope.SetAttribute(constant.OtelHallIDAttributeKey, booking.HallID)

	if booking.StartTime >= booking.EndTime {
		log.Warn().
			Int64("hallID", booking.HallID).
			Str("startTime", booking.StartTime).
			Str("endTime", booking.EndTime).
			Msg("booking start time is not before end time")
	}

	var bookingID int64

	err = s.repo.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if err := s.repo.LockHallTx(ctx, sqltx, booking.HallID); err != nil {
			return fmt.Errorf("failed to lock hall: %w", err)
		}

		count, err := s.repo.CountOverlappingTx(ctx, sqltx, booking.HallID, booking.StartTime, booking.EndTime)
		if err != nil {
			return fmt.Errorf("failed to count overlapping bookings: %w", err)
		}

		if count > 0 {
			return failure.OverlappingBooking
		}

		bookingID, err = s.repo.InsertTx(ctx, sqltx, booking)
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, failure.OverlappingBooking) {
			metrics.ObserveBooking(metrics.BookingOutcomeConflict)
			log.Info().
				Int64("hallID", booking.HallID).
				Str("startTime", booking.StartTime).
				Str("endTime", booking.EndTime).
				Msg("booking rejected, overlapping time slot")

			return 0, err //nolint:wrapcheck
		}

		metrics.ObserveBooking(metrics.BookingOutcomeError)

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.ObserveBooking(metrics.BookingOutcomeCreated)
	scope.AddEvent("booking committed")

	s.publishCreated(ctx, bookingID, booking)

	return bookingID, nil
}

// publishCreated is best effort. The booking is already committed.
func (s *serviceImpl) publishCreated(ctx context.Context, id int64, booking model.Booking) {
	message := kafka.Message{
		Key:   strconv.FormatInt(booking.HallID, 10),
		Value: dto.NewBookingCreatedEvent(id, booking),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.Booking, message); err != nil {
		log.Warn().Err(err).Int64("bookingID", id).Msg("failed to publish booking created event")
	}
}

// GetAvailability returns the confirmed slots of hallID in booking order.
// An unknown hall has no bookings and yields an empty slice. Slots are always
// read from storage so a committed booking is visible to the next read.
func (s *serviceImpl) GetAvailability(ctx context.Context, hallID int64) (res []dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelHallIDAttributeKey, hallID)

	models, err := s.repo.GetAllByHall(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	return dto.NewAvailabilityResponse(models), nil
}
