package namepool

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/viant/namepool/model/universe"
	"github.com/viant/namepool/service/backend"
	"github.com/viant/namepool/service/metrics"
	"github.com/viant/namepool/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithUniverse replaces the embedded name universe.
func WithUniverse(names *universe.Universe) Option {
	return func(s *Service) {
		s.universe = names
	}
}

// WithBackend sets the persistence backend, bypassing config selection.
func WithBackend(store backend.Backend) Option {
	return func(s *Service) {
		s.backend = store
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets prometheus collectors
func WithMetrics(collectors *metrics.Collectors) Option {
	return func(s *Service) {
		s.metrics = collectors
	}
}

// WithRandom sets the generator factory used for allocation and sampling.
func WithRandom(fn func() *rand.Rand) Option {
	return func(s *Service) {
		s.random = fn
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter writes to os.Stdout.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(serviceName, serviceVersion, outputFile); err != nil {
			s.logger.WithError(err).Warn("tracing disabled")
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.logger.WithError(err).Warn("tracing disabled")
		}
	}
}
