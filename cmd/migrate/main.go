package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"roomslots/config"
	"roomslots/helper"
	"roomslots/shared/failure"
	"roomslots/shared/logger"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Error().Msg("Migration direction (up/down) is required")
		os.Exit(failure.CodeInvalidConfig)
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	var err error

	switch os.Args[1] {
	case helper.ActionUp:
		err = helper.Up(cfg)
	case helper.ActionDown:
		err = helper.Down(cfg)
	case helper.ActionDrop:
		err = helper.Drop(cfg)
	case helper.ActionStepUp:
		err = helper.StepUp(cfg)
	default:
		log.Error().Str("direction", os.Args[1]).Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
		os.Exit(failure.CodeInvalidConfig)
	}

	if err != nil {
		logger.ErrorWithStack(err)
		os.Exit(failure.ExitCode(err))
	}
}
