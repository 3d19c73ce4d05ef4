package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/series"

	"roomslots/infras/otel"
	"roomslots/internal/domains/room/model"
	"roomslots/shared/constant"
	"roomslots/shared/frame"
	"roomslots/shared/validator"
)

var columnTypes = map[string]series.Type{
	model.FieldRoomID:       series.String,
	model.FieldRoomName:     series.String,
	model.FieldBusinessName: series.String,
	model.FieldCapacity:     series.Int,
}

type Room interface {
	GetAll(ctx context.Context, path string) ([]model.Room, error)
}

type repositoryImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Room {
	return &repositoryImpl{
		otel: otel,
	}
}

// GetAll reads the rooms catalog in file order.
func (repo *repositoryImpl) GetAll(ctx context.Context, path string) (rooms []model.Room, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelPathAttributeKey, path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rooms file: %w", err)
	}
	defer file.Close()

	df, err := frame.Read(file, columnTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to read rooms file %s: %w", path, err)
	}

	ids, err := frame.Strings(df, model.FieldRoomID)
	if err != nil {
		return nil, err
	}

	names, err := frame.Strings(df, model.FieldRoomName)
	if err != nil {
		return nil, err
	}

	businesses, err := frame.Strings(df, model.FieldBusinessName)
	if err != nil {
		return nil, err
	}

	capacities, err := frame.Ints(df, model.FieldCapacity)
	if err != nil {
		return nil, err
	}

	rooms = make([]model.Room, df.Nrow())
	for i := range rooms {
		rooms[i] = model.Room{
			RoomID:       ids[i],
			RoomName:     names[i],
			BusinessName: businesses[i],
			Capacity:     capacities[i],
		}
	}

	if err = validator.ValidateRows(rooms); err != nil {
		return nil, fmt.Errorf("invalid rooms file %s: %w", path, err)
	}

	scope.SetAttribute(constant.OtelRowsAttributeKey, len(rooms))

	return rooms, nil
}
