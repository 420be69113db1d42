package storage

import "context"

// StorageService defines the interface for profile image storage.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	ImageURL(publicID string) (string, error)
}
