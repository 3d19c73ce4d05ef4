package s3_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomslots/config"
	otelMocks "roomslots/infras/otel/mocks"
	"roomslots/infras/s3"
	"roomslots/infras/s3/mocks"
)

func TestUploadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockPutObjectAPI(ctrl)

	cfg := &config.Config{}
	cfg.Publish.S3.BucketName = "exports"
	cfg.Publish.S3.PublicDomain = "https://cdn.example.com/"

	client.EXPECT().
		PutObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *awsS3.PutObjectInput, _ ...func(*awsS3.Options)) (*awsS3.PutObjectOutput, error) {
			assert.Equal(t, "exports", aws.ToString(in.Bucket))
			assert.Equal(t, "room-slots/2024/05/01/run.csv", aws.ToString(in.Key))
			assert.Equal(t, "text/csv", aws.ToString(in.ContentType))
			assert.Equal(t, int64(3), aws.ToInt64(in.ContentLength))

			body, err := io.ReadAll(in.Body)
			require.NoError(t, err)
			assert.Equal(t, "a,b", string(body))

			return &awsS3.PutObjectOutput{}, nil
		})

	svc := s3.NewWithClient(client, cfg, otelMocks.NewOtel())

	url, err := svc.UploadFile(context.Background(), "", "room-slots/2024/05/01", "run.csv", "text/csv", []byte("a,b"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/room-slots/2024/05/01/run.csv", url)
}

func TestUploadFile_EndpointURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockPutObjectAPI(ctrl)

	cfg := &config.Config{}
	cfg.Publish.S3.APIEndpoint = "http://localhost:9000"

	client.EXPECT().PutObject(gomock.Any(), gomock.Any()).Return(&awsS3.PutObjectOutput{}, nil)

	svc := s3.NewWithClient(client, cfg, otelMocks.NewOtel())

	url, err := svc.UploadFile(context.Background(), "bucket", "dir", "f.csv", "text/csv", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/bucket/dir/f.csv", url)
}

func TestUploadFile_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockPutObjectAPI(ctrl)

	client.EXPECT().PutObject(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))

	svc := s3.NewWithClient(client, &config.Config{}, otelMocks.NewOtel())

	url, err := svc.UploadFile(context.Background(), "bucket", "dir", "f.csv", "text/csv", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Empty(t, url)
}
