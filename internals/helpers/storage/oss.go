// file: internals/helpers/storage/oss.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStorage driver Alibaba OSS. PutObject sudah atomic di sisi server:
// objek baru terlihat hanya setelah seluruh body sukses diterima.
type OSSStorage struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "sertifikatku/"
}

func NewOSSStorageFromEnv() (*OSSStorage, error) {
	endpoint := strings.TrimSpace(os.Getenv("ALI_OSS_ENDPOINT"))
	ak := strings.TrimSpace(os.Getenv("ALI_OSS_ACCESS_KEY"))
	sk := strings.TrimSpace(os.Getenv("ALI_OSS_SECRET_KEY"))
	sts := strings.TrimSpace(os.Getenv("ALI_OSS_SECURITY_TOKEN"))
	bucketName := strings.TrimSpace(os.Getenv("ALI_OSS_BUCKET"))
	prefix := strings.TrimSpace(os.Getenv("ALI_OSS_PREFIX"))
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSStorage{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSStorage) withPrefix(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.Prefix == "" {
		return key
	}
	return s.Prefix + "/" + key
}

func (s *OSSStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
	}
	if err := s.Bucket.PutObject(s.withPrefix(key), bytes.NewReader(data), opts...); err != nil {
		return fmt.Errorf("oss put %s: %w", key, err)
	}
	return nil
}

func (s *OSSStorage) Get(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.Bucket.GetObject(s.withPrefix(key), oss.WithContext(ctx))
	if err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 404 {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("oss get %s: %w", key, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *OSSStorage) Delete(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(s.withPrefix(key), oss.WithContext(ctx))
}

func (s *OSSStorage) PublicURL(key string) string {
	key = s.withPrefix(key)
	if base := strings.TrimSpace(os.Getenv("ALI_OSS_PUBLIC_BASE")); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}
