package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put    *s3.PutObjectInput
	body   []byte
	putErr error

	deleted   *s3.DeleteObjectInput
	deleteErr error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = in
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeS3{}
		c := NewClientWithAPI(api, "images", "https://cdn.example.com")

		url, err := c.Upload(ctx, "abc-photo.webp", bytes.NewReader([]byte("data")), 4, "image/webp")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/abc-photo.webp", url)
		assert.Equal(t, "images", aws.ToString(api.put.Bucket))
		assert.Equal(t, "abc-photo.webp", aws.ToString(api.put.Key))
		assert.Equal(t, "image/webp", aws.ToString(api.put.ContentType))
		assert.Equal(t, int64(4), aws.ToInt64(api.put.ContentLength))
		assert.Equal(t, []byte("data"), api.body)
	})

	t.Run("error", func(t *testing.T) {
		c := NewClientWithAPI(&fakeS3{putErr: errors.New("put-fail")}, "images", "https://cdn")

		url, err := c.Upload(ctx, "k", bytes.NewReader(nil), 0, "image/png")
		assert.Empty(t, url)
		assert.ErrorContains(t, err, "failed to upload object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeS3{}
		c := NewClientWithAPI(api, "images", "")

		require.NoError(t, c.Delete(ctx, "k"))
		assert.Equal(t, "k", aws.ToString(api.deleted.Key))
		assert.Equal(t, "images", aws.ToString(api.deleted.Bucket))
	})

	t.Run("error", func(t *testing.T) {
		c := NewClientWithAPI(&fakeS3{deleteErr: errors.New("nope")}, "images", "")
		assert.ErrorContains(t, c.Delete(ctx, "k"), "failed to delete object")
	})
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "explicit",
			opts: Options{PublicBaseURL: "https://cdn.example.com", Bucket: "b", BaseEndpoint: "http://localhost:4566"},
			want: "https://cdn.example.com",
		},
		{
			name: "custom endpoint",
			opts: Options{Bucket: "b", BaseEndpoint: "http://localhost:4566/"},
			want: "http://localhost:4566/b",
		},
		{
			name: "aws virtual host",
			opts: Options{Bucket: "b", Region: "eu-west-1"},
			want: "https://b.s3.eu-west-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.opts))
		})
	}
}

func TestNewClient(t *testing.T) {
	t.Run("static credentials", func(t *testing.T) {
		c, err := NewClient(context.Background(), Options{
			Region:       "us-east-1",
			Bucket:       "images",
			AccessKey:    "key",
			SecretKey:    "secret",
			BaseEndpoint: "http://localhost:4566",
		})
		require.NoError(t, err)
		assert.Equal(t, "images", c.bucket)
		assert.Equal(t, "http://localhost:4566/images", c.publicBaseURL)
	})

	t.Run("config error", func(t *testing.T) {
		orig := loadDefaultAWSConfig
		t.Cleanup(func() { loadDefaultAWSConfig = orig })
		loadDefaultAWSConfig = func(context.Context, ...func(*config.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("no config")
		}

		c, err := NewClient(context.Background(), Options{Region: "us-east-1", Bucket: "images"})
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to load aws config")
	})
}
