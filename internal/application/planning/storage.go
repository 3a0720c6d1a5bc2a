package planning

import "context"

// AttachmentStorage stores plan attachments and hands back a stable reference
// Implementations live in infrastructure (S3, local stub)
type AttachmentStorage interface {
	// Store persists the blob under the given name and returns its reference
	Store(ctx context.Context, name string, data []byte) (string, error)

	// Delete removes a previously stored blob
	Delete(ctx context.Context, ref string) error
}
