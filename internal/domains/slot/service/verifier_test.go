package service_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomslots/config"
	otelMocks "roomslots/infras/otel/mocks"
	slotMocks "roomslots/internal/domains/slot/mocks"
	"roomslots/internal/domains/slot/model"
	"roomslots/internal/domains/slot/model/dto"
	"roomslots/internal/domains/slot/repository"
	"roomslots/internal/domains/slot/service"
)

func expandedSlots() []model.Slot {
	return []model.Slot{
		{ID: 10, RoomID: "eh-2", BookingDate: "2024-01-01", Hour: 9, IsAvailable: false, AvailableSlots: 0, RoomName: "Attic", BusinessName: "Escape Hub"},
		{ID: 11, RoomID: "eh-1", BookingDate: "2024-01-01", Hour: 9, IsAvailable: true, AvailableSlots: 3, RoomName: "Vault", BusinessName: "Escape Hub"},
		{ID: 9, RoomID: "ie-1", BookingDate: "2024-01-01", Hour: 9, IsAvailable: false, AvailableSlots: 0, RoomName: "Heist", BusinessName: "iEscape Rooms"},
		{ID: 12, RoomID: "eh-1", BookingDate: "2024-01-02", Hour: 9, IsAvailable: true, AvailableSlots: 1, RoomName: "Vault", BusinessName: "Escape Hub"},
		{ID: 4, RoomID: "ie-1", BookingDate: "2024-01-02", Hour: 9, IsAvailable: true, AvailableSlots: 2, RoomName: "Heist", BusinessName: "iEscape Rooms"},
	}
}

func TestBuildReport(t *testing.T) {
	report, err := service.BuildReport(repository.ToFrame(expandedSlots()))
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalRows)
	assert.Equal(t, model.Columns, report.Columns)
	assert.Equal(t, []string{"Escape Hub", "iEscape Rooms"}, report.Businesses)
	assert.Equal(t, 3, report.UniqueRooms)
	assert.Equal(t, "2024-01-01", report.MinDate)
	assert.Equal(t, "2024-01-02", report.MaxDate)

	require.Len(t, report.Sample, 5)
	assert.Equal(t, []string{"10", "eh-2", "2024-01-01", "9", "False", "0", "Attic", "Escape Hub"}, report.Sample[0])

	assert.Equal(t, []dto.BusinessSummary{
		{BusinessName: "Escape Hub", UniqueRooms: 2, TotalSlots: 3},
		{BusinessName: "iEscape Rooms", UniqueRooms: 1, TotalSlots: 2},
	}, report.BusinessSummary)

	assert.Equal(t, []dto.RoomSummary{
		{BusinessName: "Escape Hub", RoomName: "Attic", SlotsCount: 1},
		{BusinessName: "Escape Hub", RoomName: "Vault", SlotsCount: 2},
		{BusinessName: "iEscape Rooms", RoomName: "Heist", SlotsCount: 2},
	}, report.RoomSummary)
}

func TestBuildReport_Limits(t *testing.T) {
	slots := make([]model.Slot, 0, 40)
	for i := range 20 {
		for day := 1; day <= 2; day++ {
			slots = append(slots, model.Slot{
				ID:           len(slots) + 1,
				RoomID:       fmt.Sprintf("r-%02d", i),
				BookingDate:  fmt.Sprintf("2024-02-%02d", day),
				Hour:         10,
				RoomName:     fmt.Sprintf("Room %02d", i),
				BusinessName: "Hub",
			})
		}
	}

	report, err := service.BuildReport(repository.ToFrame(slots))
	require.NoError(t, err)

	assert.Len(t, report.Sample, dto.SampleSize)
	require.Len(t, report.RoomSummary, dto.RoomSummaryLimit)
	assert.Equal(t, "Room 00", report.RoomSummary[0].RoomName)
	assert.Equal(t, "Room 14", report.RoomSummary[dto.RoomSummaryLimit-1].RoomName)
	assert.Equal(t, 2, report.RoomSummary[0].SlotsCount)
}

func TestBuildReport_Empty(t *testing.T) {
	report, err := service.BuildReport(repository.ToFrame(nil))
	require.NoError(t, err)

	assert.Zero(t, report.TotalRows)
	assert.Empty(t, report.Businesses)
	assert.Empty(t, report.MinDate)
	assert.Empty(t, report.Sample)
}

func TestBuildReport_MissingColumn(t *testing.T) {
	df := repository.ToFrame(expandedSlots()).Drop(model.FieldBusinessName)

	_, err := service.BuildReport(df)
	require.Error(t, err)
}

func TestVerifierService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	slotRepo := slotMocks.NewMockFile(ctrl)

	cfg := &config.Config{}
	cfg.Generator.OutputPath = "expanded.csv"

	slotRepo.EXPECT().GetFrame(gomock.Any(), "expanded.csv").Return(repository.ToFrame(expandedSlots()), nil)

	svc := service.NewVerifier(slotRepo, cfg, otelMocks.NewOtel())

	report, err := svc.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, report.TotalRows)
}

func TestVerifierService_Verify_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	slotRepo := slotMocks.NewMockFile(ctrl)

	slotRepo.EXPECT().GetFrame(gomock.Any(), gomock.Any()).Return(dataframe.DataFrame{}, os.ErrNotExist)

	svc := service.NewVerifier(slotRepo, &config.Config{}, otelMocks.NewOtel())

	_, err := svc.Verify(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
