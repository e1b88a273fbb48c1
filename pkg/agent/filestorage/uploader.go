package filestorage

import "context"

type Uploader interface {
	UploadJson(ctx context.Context, json interface{}) (string, error)
}
