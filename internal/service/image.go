package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// imageFolders maps the logical image category tag to its bucket prefix.
// An unrecognised tag is rejected rather than filed under a catch-all.
var imageFolders = map[string]string{
	"userProfile": "user_profiles",
	"profile":     "chef_profiles",
	"cover":       "chef_covers",
	"recipe":      "recipes",
}

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// ObjectStore is the slice of the S3 client the image service uses.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService stores uploaded images in a bucket and hands back public
// URLs. The rest of the system only ever sees those URLs.
type ImageService struct {
	store  ObjectStore
	bucket string
}

func NewImageService(store ObjectStore, bucket string) *ImageService {
	return &ImageService{
		store:  store,
		bucket: bucket,
	}
}

// objectKey builds the bucket key for an upload: the category tag picks the
// folder and the content type picks the extension.
func objectKey(imageType, contentType string) (string, error) {
	folder, ok := imageFolders[imageType]
	if !ok {
		return "", ErrUnknownImageType
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	return fmt.Sprintf("%s/%s.%s", folder, uuid.New().String(), ext), nil
}

// UploadImage stores an image under the folder selected by imageType and
// returns its public URL.
func (s *ImageService) UploadImage(ctx context.Context, data []byte, contentType, imageType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}

	key, err := objectKey(imageType, contentType)
	if err != nil {
		return "", err
	}

	_, err = s.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	log.Printf("[ImageService] uploaded %s image to %s", imageType, publicURL)
	return publicURL, nil
}
