//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"roomslots/config"
	"roomslots/helper"
	"roomslots/infras/metrics"
	"roomslots/infras/otel"
	"roomslots/infras/postgres"
	"roomslots/infras/s3"
	roomRepository "roomslots/internal/domains/room/repository"
	slotRepository "roomslots/internal/domains/slot/repository"
	slotService "roomslots/internal/domains/slot/service"
	generateHandler "roomslots/internal/handlers/generate"
	publishHandler "roomslots/internal/handlers/publish"
	verifyHandler "roomslots/internal/handlers/verify"
)

var configurations = wire.NewSet(
	config.Get,
)

var tracing = wire.NewSet(
	otel.New,
)

var generatorDomain = wire.NewSet(
	metrics.New,
	slotRepository.NewFile,
	roomRepository.New,
	slotService.NewRandom,
	slotService.NewGenerator,
)

var verifierDomain = wire.NewSet(
	slotRepository.NewFile,
	slotService.NewVerifier,
)

var publisherDomain = wire.NewSet(
	postgres.New,
	s3.New,
	metrics.New,
	helper.NewMigrator,
	slotRepository.NewFile,
	slotRepository.NewStore,
	slotService.NewPublisher,
)

func InitializeGenerator() (generateHandler.Handler, func()) {
	wire.Build(
		configurations,
		tracing,
		generatorDomain,
		generateHandler.New,
	)

	return generateHandler.Handler{}, nil
}

func InitializeVerifier() (verifyHandler.Handler, func()) {
	wire.Build(
		configurations,
		tracing,
		verifierDomain,
		verifyHandler.New,
	)

	return verifyHandler.Handler{}, nil
}

func InitializePublisher() (publishHandler.Handler, func()) {
	wire.Build(
		configurations,
		tracing,
		publisherDomain,
		publishHandler.New,
	)

	return publishHandler.Handler{}, nil
}
