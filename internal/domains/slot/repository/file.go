package repository

//go:generate go run go.uber.org/mock/mockgen -source=./file.go -destination=../mocks/file_mock.go -package=mocks

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"

	"roomslots/infras/otel"
	"roomslots/internal/domains/slot/model"
	"roomslots/shared/constant"
	"roomslots/shared/frame"
	"roomslots/shared/validator"
)

const outputFileMode = 0o644

type File interface {
	GetAll(ctx context.Context, path string) ([]model.Slot, error)
	GetFrame(ctx context.Context, path string) (dataframe.DataFrame, error)
	GetRaw(ctx context.Context, path string) ([]byte, error)
	SaveAll(ctx context.Context, path string, slots []model.Slot) error
}

type fileImpl struct {
	otel otel.Otel
}

func NewFile(otel otel.Otel) File {
	return &fileImpl{
		otel: otel,
	}
}

// GetFrame loads a slot file with typed id, hour, is_available and available_slots columns.
func (repo *fileImpl) GetFrame(ctx context.Context, path string) (df dataframe.DataFrame, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.GetFrame")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelPathAttributeKey, path)

	file, err := os.Open(path)
	if err != nil {
		return df, fmt.Errorf("failed to open slots file: %w", err)
	}
	defer file.Close()

	df, err = frame.Read(file, columnTypes)
	if err != nil {
		return df, fmt.Errorf("failed to read slots file %s: %w", path, err)
	}

	scope.SetAttribute(constant.OtelRowsAttributeKey, df.Nrow())

	return df, nil
}

func (repo *fileImpl) GetAll(ctx context.Context, path string) (slots []model.Slot, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	df, err := repo.GetFrame(ctx, path)
	if err != nil {
		return nil, err
	}

	slots, err = FromFrame(df)
	if err != nil {
		return nil, fmt.Errorf("failed to convert slots file %s: %w", path, err)
	}

	if err = validator.ValidateRows(slots); err != nil {
		return nil, fmt.Errorf("invalid slots file %s: %w", path, err)
	}

	return slots, nil
}

func (repo *fileImpl) GetRaw(ctx context.Context, path string) (data []byte, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.GetRaw")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slots file: %w", err)
	}

	return data, nil
}

// SaveAll writes slots in the given order, replacing any existing file.
func (repo *fileImpl) SaveAll(ctx context.Context, path string, slots []model.Slot) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.SaveAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelPathAttributeKey: path,
		constant.OtelRowsAttributeKey: len(slots),
	})

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to create slots file: %w", err)
	}

	if err = frame.Write(file, ToFrame(slots)); err != nil {
		_ = file.Close()

		return fmt.Errorf("failed to write slots file %s: %w", path, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close slots file %s: %w", path, err)
	}

	return nil
}
