package interfaces

import "context"

// IPhotoStore abstracts object storage for check-in and damage photos.

type IPhotoStore interface {
	UploadPhoto(ctx context.Context, workOrderID string, data []byte, category string) (string, error)
}
