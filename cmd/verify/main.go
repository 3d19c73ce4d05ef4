package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"roomslots/config"
	"roomslots/di"
	"roomslots/shared/failure"
	"roomslots/shared/logger"
	"roomslots/shared/timezone"
)

func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Error().Err(err).Msg("Failed to initialize configuration")
		os.Exit(failure.CodeInvalidConfig)
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)
	timezone.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	handler, cleanup := di.InitializeVerifier()

	err := handler.Run(ctx, os.Stdout)

	cleanup()
	stop()

	if err != nil {
		logger.ErrorWithStack(err)
		os.Exit(failure.ExitCode(err))
	}
}
