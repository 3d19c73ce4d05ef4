package verify_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomslots/infras/otel/mocks"
	slotMocks "roomslots/internal/domains/slot/mocks"
	"roomslots/internal/domains/slot/model/dto"
	"roomslots/internal/handlers/verify"
)

func TestHandler_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := slotMocks.NewMockVerifier(ctrl)

	svc.EXPECT().Verify(gomock.Any()).Return(dto.Report{TotalRows: 7, MinDate: "2024-01-01", MaxDate: "2024-01-02"}, nil)

	handler := verify.New(svc, mocks.NewOtel())

	var out bytes.Buffer
	require.NoError(t, handler.Run(context.Background(), &out))
	assert.Contains(t, out.String(), "=== ROOM SLOTS EXPANDED DATA VERIFICATION ===")
	assert.Contains(t, out.String(), "Total rows: 7")
	assert.Contains(t, out.String(), "=== ROOM SUMMARY ===")
}

func TestHandler_Run_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := slotMocks.NewMockVerifier(ctrl)

	svc.EXPECT().Verify(gomock.Any()).Return(dto.Report{}, os.ErrNotExist)

	handler := verify.New(svc, mocks.NewOtel())

	err := handler.Run(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
