package service

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"roomslots/config"
	"roomslots/helper"
	"roomslots/infras/metrics"
	"roomslots/infras/otel"
	"roomslots/infras/s3"
	"roomslots/internal/domains/slot/model/dto"
	"roomslots/internal/domains/slot/repository"
	"roomslots/shared/constant"
	"roomslots/shared/failure"
	"roomslots/shared/timezone"
)

type Publisher interface {
	Publish(ctx context.Context) (dto.PublishResult, error)
}

type publisherImpl struct {
	slotRepo  repository.File
	slotStore repository.Store
	migrator  helper.Migrator
	s3        s3.S3
	metrics   metrics.Metrics
	cfg       *config.Config
	otel      otel.Otel
}

func NewPublisher(
	slotRepo repository.File,
	slotStore repository.Store,
	migrator helper.Migrator,
	s3 s3.S3,
	metrics metrics.Metrics,
	cfg *config.Config,
	otel otel.Otel,
) Publisher {
	return &publisherImpl{
		slotRepo:  slotRepo,
		slotStore: slotStore,
		migrator:  migrator,
		s3:        s3,
		metrics:   metrics,
		cfg:       cfg,
		otel:      otel,
	}
}

// Publish copies the combined slots file to every enabled destination. Postgres is written
// before the upload so a failed load never leaves a fresh object behind.
func (s *publisherImpl) Publish(ctx context.Context) (res dto.PublishResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pgConfig := s.cfg.Publish.Postgres
	s3Config := s.cfg.Publish.S3

	if !pgConfig.Enable && !s3Config.Enable {
		log.Warn().Msg("no publish destination enabled, set PUBLISH_POSTGRES_ENABLE or PUBLISH_S3_ENABLE")

		return dto.PublishResult{Skipped: true}, nil
	}

	if s3Config.Enable && s3Config.BucketName == constant.Empty {
		return res, failure.InvalidConfig("PUBLISH_S3_BUCKET_NAME is required when PUBLISH_S3_ENABLE is set") // nolint:wrapcheck
	}

	started := time.Now()
	res.RunID = uuid.NewString()
	filePath := s.cfg.Generator.OutputPath

	scope.SetAttribute("run_id", res.RunID)

	slots, err := s.slotRepo.GetAll(ctx, filePath)
	if err != nil {
		log.Error().Err(err).Str("path", filePath).Msg("failed to load slots")

		return res, fmt.Errorf("failed to load slots: %w", err)
	}

	res.Rows = len(slots)

	if pgConfig.Enable {
		if pgConfig.AutoMigrate {
			if err = s.migrator.Up(); err != nil {
				log.Error().Err(err).Msg("failed to migrate database")

				return res, fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		res.PostgresRows, err = s.slotStore.ReplaceAll(ctx, slots)
		if err != nil {
			log.Error().Err(err).Msg("failed to write slots to postgres")

			return res, fmt.Errorf("failed to write slots to postgres: %w", err)
		}
	}

	if s3Config.Enable {
		var data []byte

		data, err = s.slotRepo.GetRaw(ctx, filePath)
		if err != nil {
			return res, fmt.Errorf("failed to read slots file: %w", err)
		}

		directory := path.Join(s3Config.Prefix, timezone.Format(timezone.Now(), constant.DatePathLayout))

		res.ObjectURL, err = s.s3.UploadFile(ctx, s3Config.BucketName, directory, res.RunID+constant.CSVExtension, constant.ContentTypeCSV, data)
		if err != nil {
			log.Error().Err(err).Str("directory", directory).Msg("failed to upload slots")

			return res, fmt.Errorf("failed to upload slots: %w", err)
		}
	}

	s.metrics.ObservePublish(res.PostgresRows, time.Since(started))

	if flushErr := s.metrics.Flush(); flushErr != nil {
		log.Warn().Err(flushErr).Msg("failed to write metrics")
	}

	return res, nil
}
