package allocator

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/viant/namepool/service/codec"
	"github.com/viant/namepool/service/metrics"
)

// DefaultMaxAttempts bounds read-modify-write attempts per allocation.
const DefaultMaxAttempts = 3

// Option customises a Service.
type Option func(s *Service)

// WithCodec replaces the default codec (level 6, bound to the universe).
func WithCodec(codec *codec.Codec) Option {
	return func(s *Service) {
		s.codec = codec
	}
}

// WithMaxAttempts sets how many times a conflicting write is attempted.
func WithMaxAttempts(attempts int) Option {
	return func(s *Service) {
		if attempts > 0 {
			s.maxAttempts = attempts
		}
	}
}

// WithRandom sets the generator factory used to shuffle unused names.
func WithRandom(fn func() *rand.Rand) Option {
	return func(s *Service) {
		if fn != nil {
			s.random = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metric collectors.
func WithMetrics(collectors *metrics.Collectors) Option {
	return func(s *Service) {
		s.metrics = collectors
	}
}
