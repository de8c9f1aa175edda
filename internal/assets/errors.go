package assets

import "errors"

// Pipeline failure categories. Handlers map these onto HTTP statuses, so
// every step wraps its failure in exactly one of them.
var (
	// ErrBadPayload: the request body was not a valid base64 image payload.
	ErrBadPayload = errors.New("image data must be valid base64")

	// ErrBadImage: the decoded bytes are not a readable image.
	ErrBadImage = errors.New("unreadable image")

	// ErrInvalidDimensions: target width/height missing or not positive integers.
	ErrInvalidDimensions = errors.New("height and width must be valid integers")

	// ErrResize: the resize step failed. No blob has been written.
	ErrResize = errors.New("failed to resize image")

	// ErrUpload: the object-store write failed. No metadata row exists.
	ErrUpload = errors.New("failed to upload image to object store")

	// ErrPersist: the metadata insert failed. The blob is orphaned in the store.
	ErrPersist = errors.New("failed to persist asset metadata")

	// ErrAssetNotFound: no asset row matches the requested identifier.
	ErrAssetNotFound = errors.New("asset not found")
)
