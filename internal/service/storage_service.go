package service

import (
	"context"
	"fmt"
	"io"
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/util"
	"os"
	"path/filepath"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider reads dataset files by name.
type StorageProvider interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Describe(name string) string
}

type LocalStorageProvider struct {
	Root string
}

func (p *LocalStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(p.Root, filepath.Clean("/"+name)))
}

func (p *LocalStorageProvider) Describe(name string) string {
	return filepath.Join(p.Root, name)
}

type MinioStorageProvider struct {
	Client *minio.Client
	Bucket string
}

func (p *MinioStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat surfaces a missing key before the CSV reader does.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

func (p *MinioStorageProvider) Describe(name string) string {
	return fmt.Sprintf("minio://%s/%s", p.Bucket, name)
}

type OSSStorageProvider struct {
	Bucket *oss.Bucket
}

func (p *OSSStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return p.Bucket.GetObject(name, oss.WithContext(ctx))
}

func (p *OSSStorageProvider) Describe(name string) string {
	return fmt.Sprintf("oss://%s/%s", p.Bucket.BucketName, name)
}

// NewStorageProvider builds the provider selected by storage.type.
func NewStorageProvider(cfg *config.StorageConfig) (StorageProvider, error) {
	switch cfg.Type {
	case "local", "":
		return &LocalStorageProvider{Root: cfg.LocalPath}, nil
	case "minio":
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return &MinioStorageProvider{Client: client, Bucket: cfg.MinioBucket}, nil
	case "oss":
		client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
		if err != nil {
			return nil, err
		}
		bucket, err := client.Bucket(cfg.OSSBucket)
		if err != nil {
			return nil, err
		}
		return &OSSStorageProvider{Bucket: bucket}, nil
	default:
		return nil, fmt.Errorf("%w: %s", util.ErrUnsupportedStorage, cfg.Type)
	}
}
