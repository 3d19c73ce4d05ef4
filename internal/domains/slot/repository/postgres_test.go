package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomslots/config"
	"roomslots/infras/otel/mocks"
	"roomslots/infras/postgres"
	"roomslots/internal/domains/slot/model"
	"roomslots/internal/domains/slot/repository"
)

func newStore(t *testing.T, batchSize int) (repository.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.Publish.Postgres.BatchSize = batchSize

	conn := &postgres.Connection{Write: sqlx.NewDb(db, "postgres")}

	return repository.NewStore(conn, cfg, mocks.NewOtel()), mock
}

func sampleSlots() []model.Slot {
	return []model.Slot{
		{ID: 1, RoomID: "r-1", BookingDate: "2024-05-01", Hour: 9, IsAvailable: true, AvailableSlots: 2, RoomName: "Vault", BusinessName: "Hub"},
		{ID: 2, RoomID: "r-1", BookingDate: "2024-05-01", Hour: 10, IsAvailable: false, AvailableSlots: 0, RoomName: "Vault", BusinessName: "Hub"},
		{ID: 3, RoomID: "r-2", BookingDate: "2024-05-01", Hour: 9, IsAvailable: true, AvailableSlots: 5, RoomName: "Attic", BusinessName: "Hub"},
	}
}

func TestStore_ReplaceAll(t *testing.T) {
	store, mock := newStore(t, 2)

	insert := regexp.QuoteMeta("INSERT INTO room_slots (id,room_id,booking_date,hour,is_available,available_slots,room_name,business_name) VALUES ")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM room_slots")).WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec(insert + regexp.QuoteMeta("($1,$2,$3,$4,$5,$6,$7,$8),($9,")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(insert+regexp.QuoteMeta("($1,$2,$3,$4,$5,$6,$7,$8)")).
		WithArgs(3, "r-2", "2024-05-01", 9, true, 5, "Attic", "Hub").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inserted, err := store.ReplaceAll(context.Background(), sampleSlots())
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ReplaceAll_EmptyClearsTable(t *testing.T) {
	store, mock := newStore(t, 0)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM room_slots")).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	inserted, err := store.ReplaceAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ReplaceAll_RollsBackOnInsertError(t *testing.T) {
	store, mock := newStore(t, 500)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM room_slots")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO room_slots")).WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	inserted, err := store.ReplaceAll(context.Background(), sampleSlots())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ReplaceAll_NoConnection(t *testing.T) {
	store := repository.NewStore(&postgres.Connection{}, &config.Config{}, mocks.NewOtel())

	_, err := store.ReplaceAll(context.Background(), sampleSlots())
	require.Error(t, err)
}
