package publish_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomslots/infras/otel/mocks"
	slotMocks "roomslots/internal/domains/slot/mocks"
	"roomslots/internal/domains/slot/model/dto"
	"roomslots/internal/handlers/publish"
	"roomslots/shared/failure"
)

func TestHandler_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := slotMocks.NewMockPublisher(ctrl)

	svc.EXPECT().Publish(gomock.Any()).Return(dto.PublishResult{RunID: "abc", Rows: 4, PostgresRows: 4}, nil)

	handler := publish.New(svc, mocks.NewOtel())

	var out bytes.Buffer
	require.NoError(t, handler.Run(context.Background(), &out))
	assert.Equal(t, "Publish run: abc\nRows read: 4\nRows written to Postgres: 4\n", out.String())
}

func TestHandler_Run_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := slotMocks.NewMockPublisher(ctrl)

	svc.EXPECT().Publish(gomock.Any()).Return(dto.PublishResult{}, failure.InvalidConfig("bucket missing"))

	handler := publish.New(svc, mocks.NewOtel())

	err := handler.Run(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, failure.CodeInvalidConfig, failure.ExitCode(err))
}
