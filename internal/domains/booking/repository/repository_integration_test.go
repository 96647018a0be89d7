//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbook/config"
	"hallbook/helper"
	"hallbook/infras/kafka"
	"hallbook/infras/otel/mocks"
	"hallbook/infras/postgres"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/repository"
	"hallbook/internal/domains/booking/service"
	"hallbook/shared/failure"
)

const migrationsSource = "file://../../../../migrations/postgres"

type nopCache struct{}

func (nopCache) Clear(context.Context, string) error          { return nil }
func (nopCache) Delete(context.Context, string) error         { return nil }
func (nopCache) Get(context.Context, string, any) error       { return nil }
func (nopCache) Save(context.Context, string, any, int) error { return nil }

func setup(t *testing.T) service.Booking {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	require.NoError(t, helper.Run(migrationsSource, dsn, helper.ActionUp))

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	_, err = db.Exec("TRUNCATE bookings RESTART IDENTITY")
	require.NoError(t, err)

	conn := &postgres.Connection{Read: db, Write: db}
	t.Cleanup(conn.Close)

	cfg := &config.Config{}
	client, cleanup := kafka.New(cfg)
	t.Cleanup(cleanup)

	ot := mocks.NewOtel()

	return service.New(repository.New(conn, ot), cfg, nopCache{}, client, ot)
}

func request(hallID int64, start, end string) dto.CreateBookingRequest {
	userID := int64(1)
	purpose := "integration"

	return dto.CreateBookingRequest{HallID: &hallID, UserID: &userID, StartTime: start, EndTime: end, Purpose: &purpose}
}

func TestIntegration_ConcurrentCreatesOnOneHall(t *testing.T) {
	svc := setup(t)

	const n = 16

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Create(context.Background(), request(1, fmt.Sprintf("2024-05-01 09:%02d", i), "2024-05-01 10:30"))
			if err == nil {
				successes.Add(1)

				return
			}

			assert.ErrorIs(t, err, failure.OverlappingBooking)
			conflicts.Add(1)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(n-1), conflicts.Load())

	res, err := svc.GetAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestIntegration_BoundaryAndHalls(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, request(1, "2024-05-01 10:00", "2024-05-01 11:00"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, request(1, "2024-05-01 11:00", "2024-05-01 12:00"))
	assert.ErrorIs(t, err, failure.OverlappingBooking)

	_, err = svc.Create(ctx, request(2, "2024-05-01 10:00", "2024-05-01 11:00"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, request(1, "2024-05-01 11:01", "2024-05-01 12:00"))
	require.NoError(t, err)

	res, err := svc.GetAvailability(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []dto.AvailabilityResponse{
		{StartTime: "2024-05-01 10:00", EndTime: "2024-05-01 11:00"},
		{StartTime: "2024-05-01 11:01", EndTime: "2024-05-01 12:00"},
	}, res)

	res, err = svc.GetAvailability(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
