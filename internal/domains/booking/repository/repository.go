package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hallbook/infras/metrics"
	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	"hallbook/internal/domains/booking/model"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/logger"
	gRepo "hallbook/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	argProposedStart = "proposed_start"
	argProposedEnd   = "proposed_end"

	// The lock is released by COMMIT or ROLLBACK of the enclosing transaction.
	lockHallQuery = "SELECT pg_advisory_xact_lock($1)"
)

type Booking interface {
	WithinTx(ctx context.Context, fn gRepo.TxFunc) error
	LockHallTx(ctx context.Context, sqltx *sqlx.Tx, hallID int64) error
	CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, hallID int64, startTime, endTime string) (int, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) (int64, error)
	GetAllByHall(ctx context.Context, hallID int64) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// OverlapFilter matches confirmed bookings of hallID that intersect
// [startTime, endTime] with both endpoints inclusive.
func OverlapFilter(hallID int64, startTime, endTime string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldHallID, Value: hallID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: argProposedEnd, Field: model.FieldStartTime, Value: endTime, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			gDto.Filter{ArgName: argProposedStart, Field: model.FieldEndTime, Value: startTime, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		},
	}
}

// ByHallFilter matches every confirmed booking of hallID.
func ByHallFilter(hallID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldHallID, Value: hallID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

// LockHallTx blocks until no other transaction holds the lock for hallID.
// Halls never share a key, so bookings of different halls do not wait on each other.
func (repo *repositoryImpl) LockHallTx(ctx context.Context, sqltx *sqlx.Tx, hallID int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockHallTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockHallQuery)
	scope.SetAttribute(constant.OtelHallIDAttributeKey, hallID)

	start := time.Now()

	if _, err := sqltx.ExecContext(ctx, lockHallQuery, hallID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock hall %d: %w", hallID, err)
	}

	metrics.ObserveHallLockWait(time.Since(start))

	return nil
}

func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, hallID int64, startTime, endTime string) (int, error) {
	return repo.CountTx(ctx, sqltx, OverlapFilter(hallID, startTime, endTime)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllByHall(ctx context.Context, hallID int64) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, ByHallFilter(hallID), model.FieldID, model.FieldStartTime, model.FieldEndTime) //nolint:wrapcheck
}
