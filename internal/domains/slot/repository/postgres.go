package repository

//go:generate go run go.uber.org/mock/mockgen -source=./postgres.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"roomslots/config"
	"roomslots/infras/otel"
	"roomslots/infras/postgres"
	"roomslots/internal/domains/slot/model"
	"roomslots/shared/constant"
	"roomslots/shared/logger"
)

const defaultBatchSize = 500

var errNoConnection = errors.New("postgres write connection is not available")

type Store interface {
	ReplaceAll(ctx context.Context, slots []model.Slot) (int, error)
}

type storeImpl struct {
	db        *postgres.Connection
	otel      otel.Otel
	batchSize int
}

func NewStore(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Store {
	batchSize := cfg.Publish.Postgres.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &storeImpl{
		db:        db,
		otel:      otel,
		batchSize: batchSize,
	}
}

// ReplaceAll swaps the table contents for slots inside a single transaction.
func (repo *storeImpl) ReplaceAll(ctx context.Context, slots []model.Slot) (inserted int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.ReplaceAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if repo.db == nil || repo.db.Write == nil {
		return 0, errNoConnection
	}

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := sq.Delete(model.TableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query (%s): %w", model.EntityName, err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to clear data (%s): %w", model.EntityName, err)
	}

	for start := 0; start < len(slots); start += repo.batchSize {
		end := min(start+repo.batchSize, len(slots))

		builder := sq.Insert(model.TableName).
			Columns(model.Columns...).
			PlaceholderFormat(sq.Dollar)

		for _, slot := range slots[start:end] {
			builder = builder.Values(
				slot.ID,
				slot.RoomID,
				slot.BookingDate,
				slot.Hour,
				slot.IsAvailable,
				slot.AvailableSlots,
				slot.RoomName,
				slot.BusinessName,
			)
		}

		query, args, err = builder.ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build insert query (%s): %w", model.EntityName, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			logger.ErrorWithStack(err)

			return 0, fmt.Errorf("failed to bulk insert data (%s): %w", model.EntityName, err)
		}

		inserted += end - start
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	scope.SetAttribute(constant.OtelRowsAttributeKey, inserted)

	return inserted, nil
}
