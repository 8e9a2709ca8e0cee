package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooknest/backend/internal/service"
)

type fakeObjectStore struct {
	input *s3.PutObjectInput
}

func (f *fakeObjectStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	return &s3.PutObjectOutput{}, nil
}

func TestUploadImageKeyFollowsCategory(t *testing.T) {
	cases := []struct {
		tag    string
		folder string
	}{
		{"userProfile", "user_profiles"},
		{"profile", "chef_profiles"},
		{"cover", "chef_covers"},
		{"recipe", "recipes"},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			store := &fakeObjectStore{}
			imageSvc := service.NewImageService(store, "cooknest-images")

			url, err := imageSvc.UploadImage(context.Background(), []byte("png-bytes"), "image/png", tc.tag)
			require.NoError(t, err)

			require.NotNil(t, store.input)
			key := *store.input.Key
			assert.True(t, strings.HasPrefix(key, tc.folder+"/"), "key %q lacks folder %q", key, tc.folder)
			assert.True(t, strings.HasSuffix(key, ".png"))
			assert.Equal(t, "cooknest-images", *store.input.Bucket)
			assert.Equal(t, "https://cooknest-images.s3.amazonaws.com/"+key, url)
		})
	}
}

func TestUploadImageExtensionFromContentType(t *testing.T) {
	store := &fakeObjectStore{}
	imageSvc := service.NewImageService(store, "cooknest-images")

	_, err := imageSvc.UploadImage(context.Background(), []byte("jpeg-bytes"), "image/jpeg", "recipe")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(*store.input.Key, ".jpg"))
}

func TestUploadImageUnknownTag(t *testing.T) {
	store := &fakeObjectStore{}
	imageSvc := service.NewImageService(store, "cooknest-images")

	_, err := imageSvc.UploadImage(context.Background(), []byte("png-bytes"), "image/png", "banner")
	assert.ErrorIs(t, err, service.ErrUnknownImageType)
	assert.Nil(t, store.input)

	// The empty tag is just another unknown tag.
	_, err = imageSvc.UploadImage(context.Background(), []byte("png-bytes"), "image/png", "")
	assert.ErrorIs(t, err, service.ErrUnknownImageType)
}

func TestUploadImageUnsupportedContentType(t *testing.T) {
	store := &fakeObjectStore{}
	imageSvc := service.NewImageService(store, "cooknest-images")

	_, err := imageSvc.UploadImage(context.Background(), []byte("gif-bytes"), "image/gif", "recipe")
	assert.Error(t, err)
	assert.Nil(t, store.input)
}

func TestUploadImageEmptyPayload(t *testing.T) {
	store := &fakeObjectStore{}
	imageSvc := service.NewImageService(store, "cooknest-images")

	_, err := imageSvc.UploadImage(context.Background(), nil, "image/png", "recipe")
	assert.Error(t, err)
}
