package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbook/config"
	"hallbook/infras/kafka"
	"hallbook/infras/otel/mocks"
	"hallbook/internal/domains/booking/model"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/service"
	"hallbook/shared/failure"
	gRepo "hallbook/shared/repository"
)

type txKey struct{}

// overlaps mirrors the storage predicate: closed intervals compared byte-wise,
// so intervals that only touch still overlap.
func overlaps(s1, e1, s2, e2 string) bool {
	return s1 <= e2 && e1 >= s2
}

type memTx struct {
	locked  []*sync.Mutex
	pending []model.Booking
}

// memLedger stands in for postgres: a mutex per hall plays the advisory lock
// and rows become visible only when the enclosing transaction succeeds.
type memLedger struct {
	mu     sync.Mutex
	locks  map[int64]*sync.Mutex
	rows   []model.Booking
	nextID int64

	// onLocked runs while the hall lock is held.
	onLocked func(hallID int64)
}

func newMemLedger() *memLedger {
	return &memLedger{locks: map[int64]*sync.Mutex{}}
}

func (l *memLedger) WithinTx(ctx context.Context, fn gRepo.TxFunc) error {
	tx := &memTx{}

	err := fn(context.WithValue(ctx, txKey{}, tx), nil)

	if err == nil {
		l.mu.Lock()
		l.rows = append(l.rows, tx.pending...)
		l.mu.Unlock()
	}

	for _, lock := range tx.locked {
		lock.Unlock()
	}

	return err
}

func (l *memLedger) LockHallTx(ctx context.Context, _ *sqlx.Tx, hallID int64) error {
	l.mu.Lock()
	lock, ok := l.locks[hallID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[hallID] = lock
	}
	l.mu.Unlock()

	lock.Lock()

	tx := ctx.Value(txKey{}).(*memTx)
	tx.locked = append(tx.locked, lock)

	if l.onLocked != nil {
		l.onLocked(hallID)
	}

	return nil
}

func (l *memLedger) CountOverlappingTx(_ context.Context, _ *sqlx.Tx, hallID int64, startTime, endTime string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0

	for _, row := range l.rows {
		if row.HallID == hallID && row.Status == model.StatusConfirmed &&
			overlaps(row.StartTime, row.EndTime, startTime, endTime) {
			count++
		}
	}

	return count, nil
}

func (l *memLedger) InsertTx(ctx context.Context, _ *sqlx.Tx, booking model.Booking) (int64, error) {
	l.mu.Lock()
	l.nextID++
	booking.ID = l.nextID
	l.mu.Unlock()

	tx := ctx.Value(txKey{}).(*memTx)
	tx.pending = append(tx.pending, booking)

	return booking.ID, nil
}

func (l *memLedger) GetAllByHall(_ context.Context, hallID int64) ([]model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := []model.Booking{}

	for _, row := range l.rows {
		if row.HallID == hallID && row.Status == model.StatusConfirmed {
			res = append(res, row)
		}
	}

	return res, nil
}

func (l *memLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.rows)
}

func newLedgerService(ledger *memLedger) service.Booking {
	cfg := &config.Config{}
	client, _ := kafka.New(cfg)

	return service.New(ledger, cfg, client, mocks.NewOtel())
}

func TestLedger_ConcurrentOverlappingCreates(t *testing.T) {
	for _, n := range []int{2, 8, 32} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ledger := newMemLedger()
			svc := newLedgerService(ledger)

			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				conflicts int
			)

			start := make(chan struct{})

			for i := range n {
				wg.Add(1)

				go func() {
					defer wg.Done()
					<-start

					// every interval contains 10:00, so all pairs overlap
					req := newRequest(1, fmt.Sprintf("2024-05-01 09:%02d", i%60), "2024-05-01 10:30")
					_, err := svc.Create(context.Background(), req)

					mu.Lock()
					defer mu.Unlock()

					if err == nil {
						successes++

						return
					}

					assert.ErrorIs(t, err, failure.OverlappingBooking)
					conflicts++
				}()
			}

			close(start)
			wg.Wait()

			assert.Equal(t, 1, successes)
			assert.Equal(t, n-1, conflicts)
			assert.Equal(t, 1, ledger.count())
		})
	}
}

func TestLedger_DisjointHallsDoNotBlock(t *testing.T) {
	ledger := newMemLedger()
	svc := newLedgerService(ledger)

	held := make(chan struct{})
	release := make(chan struct{})

	ledger.onLocked = func(hallID int64) {
		if hallID == 1 {
			close(held)
			<-release
		}
	}

	hallOneDone := make(chan error, 1)

	go func() {
		_, err := svc.Create(context.Background(), newRequest(1, "2024-05-01 09:00", "2024-05-01 10:00"))
		hallOneDone <- err
	}()

	<-held

	hallTwoDone := make(chan error, 1)

	go func() {
		_, err := svc.Create(context.Background(), newRequest(2, "2024-05-01 09:00", "2024-05-01 10:00"))
		hallTwoDone <- err
	}()

	select {
	case err := <-hallTwoDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("booking on hall 2 waited for the lock of hall 1")
	}

	close(release)
	require.NoError(t, <-hallOneDone)
	assert.Equal(t, 2, ledger.count())
}

func TestLedger_RepeatedRequestIsRejected(t *testing.T) {
	ledger := newMemLedger()
	svc := newLedgerService(ledger)
	req := newRequest(1, "2024-05-01 09:00", "2024-05-01 10:00")

	id, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, failure.OverlappingBooking)
	assert.Equal(t, 1, ledger.count())
}

func TestLedger_AdjacentIntervalsConflict(t *testing.T) {
	ledger := newMemLedger()
	svc := newLedgerService(ledger)

	_, err := svc.Create(context.Background(), newRequest(1, "2024-05-01 10:00", "2024-05-01 11:00"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newRequest(1, "2024-05-01 11:00", "2024-05-01 12:00"))
	assert.ErrorIs(t, err, failure.OverlappingBooking)
}

func TestLedger_SameSlotOnDifferentHalls(t *testing.T) {
	ledger := newMemLedger()
	svc := newLedgerService(ledger)

	_, err := svc.Create(context.Background(), newRequest(1, "2024-05-01 09:00", "2024-05-01 10:00"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newRequest(2, "2024-05-01 09:00", "2024-05-01 10:00"))
	require.NoError(t, err)

	for _, hallID := range []int64{1, 2} {
		res, err := svc.GetAvailability(context.Background(), hallID)
		require.NoError(t, err)
		assert.Equal(t, []dto.AvailabilityResponse{{StartTime: "2024-05-01 09:00", EndTime: "2024-05-01 10:00"}}, res)
	}
}

func TestLedger_EmptyHallAvailability(t *testing.T) {
	svc := newLedgerService(newMemLedger())

	res, err := svc.GetAvailability(context.Background(), 42)

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestLedger_RejectedBookingLeavesNoRow(t *testing.T) {
	ledger := newMemLedger()
	svc := newLedgerService(ledger)

	_, err := svc.Create(context.Background(), newRequest(1, "2024-05-01 09:00", "2024-05-01 12:00"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newRequest(1, "2024-05-01 10:00", "2024-05-01 11:00"))
	assert.ErrorIs(t, err, failure.OverlappingBooking)

	res, err := svc.GetAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestLedger_AvailabilityShowsCommittedBooking(t *testing.T) {
	ledger := newMemLedger()
	svc := newLedgerService(ledger)

	_, err := svc.Create(context.Background(), newRequest(1, "2024-05-01 09:00", "2024-05-01 10:00"))
	require.NoError(t, err)

	res, err := svc.GetAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = svc.Create(context.Background(), newRequest(1, "2024-05-01 11:00", "2024-05-01 12:00"))
	require.NoError(t, err)

	res, err = svc.GetAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []dto.AvailabilityResponse{
		{StartTime: "2024-05-01 09:00", EndTime: "2024-05-01 10:00"},
		{StartTime: "2024-05-01 11:00", EndTime: "2024-05-01 12:00"},
	}, res)
}

func TestOverlapsRule(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{name: "identical", s1: "2024-01-01 10:00", e1: "2024-01-01 12:00", s2: "2024-01-01 10:00", e2: "2024-01-01 12:00", want: true},
		{name: "contained", s1: "2024-01-01 10:00", e1: "2024-01-01 12:00", s2: "2024-01-01 10:30", e2: "2024-01-01 11:00", want: true},
		{name: "back to back conflicts", s1: "2024-01-01 10:00", e1: "2024-01-01 12:00", s2: "2024-01-01 12:00", e2: "2024-01-01 13:00", want: true},
		{name: "strictly after", s1: "2024-01-01 10:00", e1: "2024-01-01 12:00", s2: "2024-01-01 12:01", e2: "2024-01-01 13:00", want: false},
		{name: "lexical not chronological", s1: "9", e1: "10", s2: "5", e2: "6", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.want, overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
