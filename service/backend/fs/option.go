package fs

import "github.com/viant/afs"

// Option customises the file backend.
type Option func(s *Service)

// WithFs sets the afs service used for storage access
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithMaxSize overrides the largest blob Read accepts
func WithMaxSize(size int64) Option {
	return func(s *Service) {
		if size > 0 {
			s.maxSize = size
		}
	}
}
