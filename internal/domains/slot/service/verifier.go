package service

//go:generate go run go.uber.org/mock/mockgen -source=./verifier.go -destination=../mocks/verifier_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog/log"

	"roomslots/config"
	"roomslots/infras/otel"
	"roomslots/internal/domains/slot/model"
	"roomslots/internal/domains/slot/model/dto"
	"roomslots/internal/domains/slot/repository"
	"roomslots/shared/constant"
	"roomslots/shared/frame"
)

type Verifier interface {
	Verify(ctx context.Context) (dto.Report, error)
}

type verifierImpl struct {
	slotRepo repository.File
	cfg      *config.Config
	otel     otel.Otel
}

func NewVerifier(slotRepo repository.File, cfg *config.Config, otel otel.Otel) Verifier {
	return &verifierImpl{
		slotRepo: slotRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *verifierImpl) Verify(ctx context.Context) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	path := s.cfg.Generator.OutputPath

	df, err := s.slotRepo.GetFrame(ctx, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to load slots")

		return res, fmt.Errorf("failed to load slots: %w", err)
	}

	res, err = BuildReport(df)
	if err != nil {
		return res, fmt.Errorf("failed to summarise slots: %w", err)
	}

	return res, nil
}

// BuildReport summarises a combined slots frame. Dates compare as strings.
func BuildReport(df dataframe.DataFrame) (dto.Report, error) {
	businesses, err := frame.Strings(df, model.FieldBusinessName)
	if err != nil {
		return dto.Report{}, err
	}

	roomNames, err := frame.Strings(df, model.FieldRoomName)
	if err != nil {
		return dto.Report{}, err
	}

	dates, err := frame.Strings(df, model.FieldBookingDate)
	if err != nil {
		return dto.Report{}, err
	}

	report := dto.Report{
		TotalRows:   df.Nrow(),
		Columns:     df.Names(),
		Businesses:  frame.Distinct(businesses),
		UniqueRooms: len(frame.Distinct(roomNames)),
	}

	if df.Nrow() == 0 {
		return report, nil
	}

	report.MinDate = slices.Min(dates)
	report.MaxDate = slices.Max(dates)

	head := make([]int, min(dto.SampleSize, df.Nrow()))
	for i := range head {
		head[i] = i
	}

	report.Sample = df.Subset(head).Records()[1:]

	report.BusinessSummary, err = summariseBusinesses(df)
	if err != nil {
		return dto.Report{}, err
	}

	report.RoomSummary, err = summariseRooms(df)
	if err != nil {
		return dto.Report{}, err
	}

	return report, nil
}

func summariseBusinesses(df dataframe.DataFrame) ([]dto.BusinessSummary, error) {
	groups := df.GroupBy(model.FieldBusinessName)
	if groups.Err != nil {
		return nil, fmt.Errorf("failed to group by business: %w", groups.Err)
	}

	summary := make([]dto.BusinessSummary, 0)

	for business, group := range groups.GetGroups() {
		rooms, err := frame.Strings(group, model.FieldRoomName)
		if err != nil {
			return nil, err
		}

		summary = append(summary, dto.BusinessSummary{
			BusinessName: business,
			UniqueRooms:  len(frame.Distinct(rooms)),
			TotalSlots:   group.Nrow(),
		})
	}

	slices.SortFunc(summary, func(a, b dto.BusinessSummary) int {
		return cmp.Compare(a.BusinessName, b.BusinessName)
	})

	return summary, nil
}

func summariseRooms(df dataframe.DataFrame) ([]dto.RoomSummary, error) {
	groups := df.GroupBy(model.FieldBusinessName, model.FieldRoomName)
	if groups.Err != nil {
		return nil, fmt.Errorf("failed to group by room: %w", groups.Err)
	}

	summary := make([]dto.RoomSummary, 0)

	for _, group := range groups.GetGroups() {
		summary = append(summary, dto.RoomSummary{
			BusinessName: group.Col(model.FieldBusinessName).Elem(0).String(),
			RoomName:     group.Col(model.FieldRoomName).Elem(0).String(),
			SlotsCount:   group.Nrow(),
		})
	}

	slices.SortFunc(summary, func(a, b dto.RoomSummary) int {
		return cmp.Or(
			cmp.Compare(a.BusinessName, b.BusinessName),
			cmp.Compare(a.RoomName, b.RoomName),
		)
	})

	if len(summary) > dto.RoomSummaryLimit {
		summary = summary[:dto.RoomSummaryLimit]
	}

	return summary, nil
}
