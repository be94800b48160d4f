package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"autoshop_crm/internal/infrastructure/database"
	"autoshop_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrMissingPhotosBucket = errors.New("missing PHOTOS_BUCKET")

// S3PhotoStore uploads work order photos to an S3 bucket.
//
// Supported env vars:
//   - PHOTOS_BUCKET (required)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566)
type S3PhotoStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IPhotoStore = (*S3PhotoStore)(nil)

func NewS3PhotoStore(ctx context.Context) (*S3PhotoStore, error) {
	bucket := strings.TrimSpace(os.Getenv("PHOTOS_BUCKET"))
	if bucket == "" {
		log.Printf("[photo][store] missing PHOTOS_BUCKET")
		return nil, ErrMissingPhotosBucket
	}

	cfg, err := database.LoadAWSConfigFromEnv(ctx)
	if err != nil {
		log.Printf("[photo][store] failed to load aws config err=%v", err)
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// Local S3 emulators resolve buckets by path, not virtual host.
			o.UsePathStyle = true
		}
	})

	log.Printf("[photo][store] s3 photo store initialized bucket=%s", bucket)
	return &S3PhotoStore{client: client, bucket: bucket}, nil
}

// UploadPhoto stores the photo under workorders/{id}/{category}/{uuid} and
// returns the object URL.
func (s *S3PhotoStore) UploadPhoto(ctx context.Context, workOrderID string, data []byte, category string) (string, error) {
	key := fmt.Sprintf("workorders/%s/%s/%s", workOrderID, category, uuid.New().String())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		log.Printf("[photo][store] upload failed work_order_id=%s key=%s err=%v", workOrderID, key, err)
		return "", err
	}

	url := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	log.Printf("[photo][store] upload success work_order_id=%s key=%s size=%d", workOrderID, key, len(data))
	return url, nil
}
