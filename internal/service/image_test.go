package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/mocks"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/testutil"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")

var imageKeyPattern = regexp.MustCompile(`^[0-9a-f]{10}-avatar\.png$`)

func pngUpload(body []byte) model.ImageUpload {
	return model.ImageUpload{
		Filename:    "avatar.png",
		ContentType: "image/png",
		Size:        int64(len(body)),
		Body:        bytes.NewReader(body),
	}
}

func TestImage_Upload_Anonymous(t *testing.T) {
	storage := mocks.NewStorage(t)
	images := mocks.NewImageStore(t)
	s := NewImage(storage, images, testutil.MakeNoopLogger())

	storage.On("Upload", mock.Anything, mock.MatchedBy(imageKeyPattern.MatchString), mock.Anything, int64(len(pngHeader)), "image/png").
		Return("https://cdn.example.com/abc-avatar.png", nil)

	url, err := s.Upload(context.Background(), nil, pngUpload(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/abc-avatar.png", url)
}

func TestImage_Upload_RecordsOwner(t *testing.T) {
	storage := mocks.NewStorage(t)
	images := mocks.NewImageStore(t)
	s := NewImage(storage, images, testutil.MakeNoopLogger())
	owner := uuid.New()

	storage.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything, "image/png").
		Return("https://cdn.example.com/x", nil)
	images.On("Create", mock.Anything, mock.MatchedBy(func(img model.Image) bool {
		return img.UserID == owner && imageKeyPattern.MatchString(img.Key)
	})).Return(model.Image{}, nil)

	_, err := s.Upload(context.Background(), &owner, pngUpload(pngHeader))
	require.NoError(t, err)
}

func TestImage_Upload_RemovesObjectWhenRecordFails(t *testing.T) {
	storage := mocks.NewStorage(t)
	images := mocks.NewImageStore(t)
	s := NewImage(storage, images, testutil.MakeNoopLogger())
	owner := uuid.New()
	var key string

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(k string) bool {
		key = k
		return true
	}), mock.Anything, mock.Anything, "image/png").Return("https://cdn.example.com/x", nil)
	images.On("Create", mock.Anything, mock.Anything).Return(model.Image{}, errors.New("db down"))
	storage.On("Delete", mock.Anything, mock.MatchedBy(func(k string) bool { return k == key })).Return(nil)

	_, err := s.Upload(context.Background(), &owner, pngUpload(pngHeader))
	require.Error(t, err)
}

func TestImage_Upload_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		upload model.ImageUpload
	}{
		{
			name: "declared too large",
			upload: model.ImageUpload{
				Filename: "big.png", ContentType: "image/png", Size: 2 << 20, Body: bytes.NewReader(pngHeader),
			},
		},
		{
			name: "body larger than declared",
			upload: model.ImageUpload{
				Filename: "big.png", ContentType: "image/png", Size: 10,
				Body: bytes.NewReader(append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)),
			},
		},
		{
			name: "unsupported type",
			upload: model.ImageUpload{
				Filename: "anim.gif", ContentType: "image/gif", Size: 6, Body: strings.NewReader("GIF89a"),
			},
		},
		{
			name: "content does not match type",
			upload: model.ImageUpload{
				Filename: "fake.png", ContentType: "image/png", Size: 11, Body: strings.NewReader("hello world"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImage(mocks.NewStorage(t), mocks.NewImageStore(t), testutil.MakeNoopLogger())

			_, err := s.Upload(context.Background(), nil, tt.upload)
			assertAPIError(t, err, http.StatusBadRequest)
		})
	}
}

func TestImageKey(t *testing.T) {
	tests := []struct {
		filename string
		suffix   string
	}{
		{filename: "avatar.png", suffix: "-avatar.png"},
		{filename: "../../etc/passwd", suffix: "-passwd"},
		{filename: `C:\Users\me\photo.jpg`, suffix: "-photo.jpg"},
		{filename: "", suffix: "-image"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			key, err := imageKey(tt.filename)
			require.NoError(t, err)
			assert.Regexp(t, `^[0-9a-f]{10}-`, key)
			assert.True(t, strings.HasSuffix(key, tt.suffix), key)
		})
	}
}
