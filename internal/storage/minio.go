package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rohanks-dev/coursebay/internal/config"
)

var MinioClient *minio.Client

var (
	endpoint string
	bucket   string
)

func InitMinio(cfg config.Config) {
	endpoint = cfg.MinioEndpoint
	bucket = cfg.MinioBucket

	useSSL := false // Set to true if using HTTPS

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	// Create a context with timeout for operations
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Create the image bucket if it doesn't exist
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Printf("Warning: Failed to check bucket existence: %v", err)
	} else if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		if err != nil {
			log.Printf("Warning: Failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", bucket)
		}
	}

	MinioClient = client
	fmt.Println("✅ Connected to MinIO")
}

// UploadImage stores a course thumbnail and returns its public URL.
// Objects are never removed when a course is updated or deleted; replaced
// thumbnails stay behind in the bucket.
func UploadImage(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := MinioClient.PutObject(ctx, bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to storage: %w", err)
	}
	return fmt.Sprintf("http://%s/%s/%s", endpoint, bucket, objectName), nil
}
