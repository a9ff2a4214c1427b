package storage

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/carebridge/careworker-go/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

const presignExpiry = 15 * time.Minute

// Init connects to MinIO and ensures the bucket exists.
func Init() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

// UploadObject stores the file under a fresh uuid-based key and returns it.
var UploadObject = func(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	key := uuid.NewString() + filepath.Ext(filename)
	_, err := Client.PutObject(ctx, BucketName, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// DeleteObject removes a stored object by key.
var DeleteObject = func(ctx context.Context, key string) error {
	return Client.RemoveObject(ctx, BucketName, key, minioSDK.RemoveObjectOptions{})
}

// PresignedURL returns a short-lived download URL for a stored object.
var PresignedURL = func(ctx context.Context, key string) (string, error) {
	u, err := Client.PresignedGetObject(ctx, BucketName, key, presignExpiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
