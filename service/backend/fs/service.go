package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/namepool/internal/idgen"
	"github.com/viant/namepool/model/types"
	"github.com/viant/namepool/service/backend"
)

const (
	// Name identifies the backend.
	Name = "file"
	// MaxBlobSize caps what Read accepts; anything larger is treated as corrupted.
	MaxBlobSize = 100 * 1024 * 1024
)

// Service stores the blob in a single file. Plain paths resolve to the local
// file system; any other afs URL (mem://, gs://, s3://) is accepted as well.
type Service struct {
	URL     string
	fs      afs.Service
	maxSize int64
}

// Ensure Service implements backend.Backend
var _ backend.Backend = (*Service)(nil)

// Name returns backend name
func (s *Service) Name() string {
	return Name
}

// SupportsConditionalWrite returns false: writes replace the file unconditionally.
func (s *Service) SupportsConditionalWrite() bool {
	return false
}

// Shared returns false: the file is owned by this process.
func (s *Service) Shared() bool {
	return false
}

// Read returns the file content, or (nil, nil) when the file does not exist.
func (s *Service) Read(ctx context.Context) ([]byte, error) {
	exists, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return nil, types.WrapError(types.KindIO, "could not check history file", err)
	}
	if !exists {
		return nil, nil
	}
	object, err := s.fs.Object(ctx, s.URL)
	if err != nil {
		return nil, types.WrapError(types.KindIO, "could not read history file size", err)
	}
	if object.IsDir() {
		return nil, types.Errorf(types.KindIO, "history file %v is a directory", s.URL)
	}
	if object.Size() > s.maxSize {
		return nil, types.NewError(types.KindIO, "history file too large")
	}
	data, err := s.fs.Download(ctx, object)
	if err != nil {
		return nil, types.WrapError(types.KindIO, "could not read history file", err)
	}
	return data, nil
}

// Write stores blob atomically: the data goes to a sibling temporary file
// which is then renamed over the target, so readers never see a partial or
// missing blob. Non-local schemes fall back to afs Move.
func (s *Service) Write(ctx context.Context, blob []byte) error {
	parent, name := url.Split(s.URL, file.Scheme)
	if err := s.ensureDir(ctx, parent); err != nil {
		return err
	}
	// same extension as the target, afs Move would otherwise treat the target as a folder
	tempURL := url.Join(parent, tempName(name))
	if err := s.fs.Upload(ctx, tempURL, file.DefaultFileOsMode, bytes.NewReader(blob)); err != nil {
		_ = s.fs.Delete(ctx, tempURL)
		return types.WrapError(types.KindIO, "failed while writing temp history file", err)
	}
	if err := s.replace(ctx, tempURL); err != nil {
		_ = s.fs.Delete(ctx, tempURL)
		return types.WrapError(types.KindIO, "could not replace history file", err)
	}
	return nil
}

func (s *Service) replace(ctx context.Context, tempURL string) error {
	if url.Scheme(s.URL, file.Scheme) == file.Scheme {
		return os.Rename(file.Path(tempURL), file.Path(s.URL))
	}
	return s.fs.Move(ctx, tempURL, s.URL)
}

// tempName returns a hidden sibling name sharing the target extension.
func tempName(name string) string {
	return fmt.Sprintf(".%s.%s", idgen.New(), name)
}

func (s *Service) ensureDir(ctx context.Context, dirURL string) error {
	exists, err := s.fs.Exists(ctx, dirURL)
	if err != nil {
		return types.WrapError(types.KindIO, "could not check history directory", err)
	}
	if exists {
		return nil
	}
	if err = s.fs.Create(ctx, dirURL, file.DefaultDirOsMode, true); err != nil {
		return types.WrapError(types.KindIO, "could not create history directory", err)
	}
	return nil
}

// New creates a file backend for location (a path or afs URL).
func New(location string, options ...Option) (*Service, error) {
	if location == "" {
		return nil, types.NewError(types.KindConfig, "history file location cannot be empty")
	}
	ret := &Service{URL: url.Normalize(location, file.Scheme), maxSize: MaxBlobSize}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret, nil
}
