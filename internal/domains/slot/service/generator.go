package service

//go:generate go run go.uber.org/mock/mockgen -source=./generator.go -destination=../mocks/generator_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"roomslots/config"
	"roomslots/infras/metrics"
	"roomslots/infras/otel"
	roomModel "roomslots/internal/domains/room/model"
	roomRepository "roomslots/internal/domains/room/repository"
	"roomslots/internal/domains/slot/model"
	"roomslots/internal/domains/slot/model/dto"
	"roomslots/internal/domains/slot/repository"
	"roomslots/shared/constant"
	"roomslots/shared/frame"
)

type Generator interface {
	Generate(ctx context.Context) (dto.GenerateResult, error)
}

type generatorImpl struct {
	slotRepo repository.File
	roomRepo roomRepository.Room
	rng      Random
	metrics  metrics.Metrics
	cfg      *config.Config
	otel     otel.Otel
}

func NewGenerator(
	slotRepo repository.File,
	roomRepo roomRepository.Room,
	rng Random,
	metrics metrics.Metrics,
	cfg *config.Config,
	otel otel.Otel,
) Generator {
	return &generatorImpl{
		slotRepo: slotRepo,
		roomRepo: roomRepo,
		rng:      rng,
		metrics:  metrics,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *generatorImpl) Generate(ctx context.Context) (res dto.GenerateResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	started := time.Now()
	paths := s.cfg.Generator

	existing, err := s.slotRepo.GetAll(ctx, paths.ExistingSlotsPath)
	if err != nil {
		log.Error().Err(err).Str("path", paths.ExistingSlotsPath).Msg("failed to load existing slots")

		return res, fmt.Errorf("failed to load existing slots: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx, paths.RoomsPath)
	if err != nil {
		log.Error().Err(err).Str("path", paths.RoomsPath).Msg("failed to load rooms")

		return res, fmt.Errorf("failed to load rooms: %w", err)
	}

	excluded := paths.ExcludedBusiness
	if excluded == constant.Empty {
		excluded = model.DefaultExcludedBusiness
	}

	generated := GenerateSlots(existing, rooms, excluded, s.rng)

	log.Debug().
		Int("existing", len(existing)).
		Int("rooms", len(rooms)).
		Int("generated", len(generated)).
		Msg("slots generated")

	combined := repository.Sort(append(slices.Clone(existing), generated...))

	if err = s.slotRepo.SaveAll(ctx, paths.OutputPath, combined); err != nil {
		log.Error().Err(err).Str("path", paths.OutputPath).Msg("failed to save slots")

		return res, fmt.Errorf("failed to save slots: %w", err)
	}

	businesses := make([]string, len(combined))
	roomNames := make([]string, len(combined))

	for i, slot := range combined {
		businesses[i] = slot.BusinessName
		roomNames[i] = slot.RoomName
	}

	res = dto.GenerateResult{
		Generated:  len(generated),
		Total:      len(combined),
		Businesses: frame.Distinct(businesses),
		Rooms:      len(frame.Distinct(roomNames)),
	}

	s.metrics.ObserveGeneration(res.Generated, res.Total, len(res.Businesses), res.Rooms, time.Since(started))

	if flushErr := s.metrics.Flush(); flushErr != nil {
		log.Warn().Err(flushErr).Msg("failed to write metrics")
	}

	scope.SetAttribute(constant.OtelRowsAttributeKey, res.Total)

	return res, nil
}

// GenerateSlots synthesises one slot per room, date and hour observed in existing, skipping rooms
// of the excluded business. Ids continue from the highest existing id. Rooms are visited in catalog
// order, dates and hours in first-seen order.
func GenerateSlots(existing []model.Slot, rooms []roomModel.Room, excluded string, rng Random) []model.Slot {
	if len(existing) == 0 {
		return []model.Slot{}
	}

	dates := make([]string, len(existing))
	hours := make([]int, len(existing))
	maxID := existing[0].ID

	for i, slot := range existing {
		dates[i] = slot.BookingDate
		hours[i] = slot.Hour
		maxID = max(maxID, slot.ID)
	}

	dates = frame.Distinct(dates)
	hours = frame.Distinct(hours)

	targets := make([]roomModel.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.BusinessName != excluded {
			targets = append(targets, room)
		}
	}

	nextID := maxID + 1
	generated := make([]model.Slot, 0, len(targets)*len(dates)*len(hours))

	for _, room := range targets {
		for _, date := range dates {
			for _, hour := range hours {
				isAvailable := rng.IntN(2) == 1

				availableSlots := 0
				if isAvailable {
					availableSlots = rng.IntN(room.Capacity + 1)
				}

				generated = append(generated, model.NewGeneratedSlot(nextID, room, date, hour, isAvailable, availableSlots))
				nextID++
			}
		}
	}

	return generated
}
