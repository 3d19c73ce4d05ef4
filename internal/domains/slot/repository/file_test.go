package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomslots/infras/otel/mocks"
	"roomslots/internal/domains/slot/model"
	"roomslots/internal/domains/slot/repository"
	"roomslots/shared/failure"
)

const slotsHeader = "id,room_id,booking_date,hour,is_available,available_slots,room_name,business_name\n"

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "slots.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFileRepository_GetAll(t *testing.T) {
	repo := repository.NewFile(mocks.NewOtel())

	tests := []struct {
		name     string
		content  string
		want     []model.Slot
		wantCode int
		wantErr  bool
	}{
		{
			name: "reads typed rows",
			content: slotsHeader +
				"7,r-1,2024-05-01,10,TRUE,3,Attic,iEscape Rooms\n" +
				"8,r-1,2024-05-01,11,false,0,Attic,iEscape Rooms\n",
			want: []model.Slot{
				{ID: 7, RoomID: "r-1", BookingDate: "2024-05-01", Hour: 10, IsAvailable: true, AvailableSlots: 3, RoomName: "Attic", BusinessName: "iEscape Rooms"},
				{ID: 8, RoomID: "r-1", BookingDate: "2024-05-01", Hour: 11, IsAvailable: false, AvailableSlots: 0, RoomName: "Attic", BusinessName: "iEscape Rooms"},
			},
		},
		{
			name:    "header only",
			content: slotsHeader,
			want:    []model.Slot{},
		},
		{
			name:     "missing hour column",
			content:  "id,room_id,booking_date,is_available,available_slots,room_name,business_name\n1,r-1,2024-05-01,true,2,Attic,Hub\n",
			wantErr:  true,
			wantCode: failure.CodeInvalidData,
		},
		{
			name:     "non numeric id",
			content:  slotsHeader + "one,r-1,2024-05-01,10,true,2,Attic,Hub\n",
			wantErr:  true,
			wantCode: failure.CodeInvalidData,
		},
		{
			name:     "unknown boolean",
			content:  slotsHeader + "1,r-1,2024-05-01,10,maybe,2,Attic,Hub\n",
			wantErr:  true,
			wantCode: failure.CodeInvalidData,
		},
		{
			name:     "hour out of range",
			content:  slotsHeader + "1,r-1,2024-05-01,24,true,2,Attic,Hub\n",
			wantErr:  true,
			wantCode: failure.CodeInvalidData,
		},
		{
			name:     "empty file",
			content:  "",
			wantErr:  true,
			wantCode: failure.CodeInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := repo.GetAll(context.Background(), writeFile(t, tt.content))

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, slots)
		})
	}
}

func TestFileRepository_SaveAll(t *testing.T) {
	repo := repository.NewFile(mocks.NewOtel())
	path := filepath.Join(t.TempDir(), "out.csv")

	slots := []model.Slot{
		{ID: 1, RoomID: "r-1", BookingDate: "2024-05-01", Hour: 9, IsAvailable: true, AvailableSlots: 4, RoomName: "Vault", BusinessName: "Hub"},
		{ID: 2, RoomID: "r-2", BookingDate: "2024-05-01", Hour: 9, IsAvailable: false, AvailableSlots: 0, RoomName: "Cellar, Lower", BusinessName: "Hub"},
	}

	require.NoError(t, repo.SaveAll(context.Background(), path, slots))

	raw, err := repo.GetRaw(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, slotsHeader+
		"1,r-1,2024-05-01,9,True,4,Vault,Hub\n"+
		"2,r-2,2024-05-01,9,False,0,\"Cellar, Lower\",Hub\n", string(raw))

	loaded, err := repo.GetAll(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, slots, loaded)

	df, err := repo.GetFrame(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"True", "False"}, df.Col(model.FieldIsAvailable).Records())
}

func TestFileRepository_SaveAll_Truncates(t *testing.T) {
	repo := repository.NewFile(mocks.NewOtel())
	path := writeFile(t, slotsHeader+"1,r-1,2024-05-01,9,true,4,Vault,Hub\n2,r-1,2024-05-01,10,true,4,Vault,Hub\n")

	require.NoError(t, repo.SaveAll(context.Background(), path, nil))

	raw, err := repo.GetRaw(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, slotsHeader, string(raw))
}

func TestFileRepository_GetFrame(t *testing.T) {
	repo := repository.NewFile(mocks.NewOtel())
	path := writeFile(t, slotsHeader+"1,r-1,2024-05-01,9,true,4,Vault,Hub\n")

	df, err := repo.GetFrame(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, df.Nrow())
	assert.Equal(t, model.Columns, df.Names())

	_, err = repo.GetFrame(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
