package uploads

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const TranscribePrefix = "transcribe_"

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Validate checks the declared content type against the allow-list.
func (s *Service) Validate(contentType string) error {
	if !IsAllowed(contentType) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return nil
}

// ReadAll reads the whole payload into memory; more than MaxSize bytes is ErrTooLarge.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if int64(len(data)) > MaxSize {
		return nil, fmt.Errorf("%w (max %s)", ErrTooLarge, humanize.IBytes(uint64(MaxSize)))
	}
	return data, nil
}

// Persist stores data as <prefix><uuid><ext>, where ext comes from the
// original filename or fallbackExt when it has none. Returns the new name
// and its path on disk.
func (s *Service) Persist(prefix, originalName, fallbackExt string, data []byte) (string, string, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	if ext == "" || ext == "." {
		ext = fallbackExt
	}

	name := prefix + uuid.NewString() + ext

	path, err := s.store.Save(name, data)
	if err != nil {
		return "", "", err
	}
	return name, path, nil
}

func (s *Service) Remove(name string) error {
	return s.store.Remove(name)
}

func (s *Service) Purge() (int, error) {
	return s.store.Purge()
}
