package uploads

import (
	"errors"
	"mime"
	"strings"
)

// MaxSize is the largest accepted payload; exactly MaxSize bytes is allowed.
const MaxSize int64 = 50 << 20

var AllowedContentTypes = []string{
	"audio/wav",
	"audio/mp3",
	"audio/mpeg",
	"audio/mp4",
	"audio/webm",
	"audio/ogg",
	"audio/flac",
	"audio/aac",
}

var (
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrTooLarge        = errors.New("payload too large")
)

// Store keeps raw files in a flat scratch directory.
type Store interface {
	// Save writes data under name and fails if name is already taken.
	Save(name string, data []byte) (path string, err error)
	// Remove deletes name; a missing file is not an error.
	Remove(name string) error
	// Purge deletes every regular file and returns how many were removed.
	Purge() (int, error)
}

// IsAllowed reports whether the declared content type (parameters ignored)
// is one of AllowedContentTypes.
func IsAllowed(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(contentType)
	}
	mediaType = strings.ToLower(mediaType)

	for _, t := range AllowedContentTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}
