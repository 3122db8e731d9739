package namepool

import (
	"context"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/viant/namepool/model/universe"
	"github.com/viant/namepool/service/allocator"
	"github.com/viant/namepool/service/backend"
	"github.com/viant/namepool/service/codec"
	"github.com/viant/namepool/service/metrics"
)

// Service is the entry point: it owns the universe, the backend and the
// allocation store, and serializes allocations.
type Service struct {
	config   *Config
	universe *universe.Universe
	backend  backend.Backend
	store    *allocator.Service
	logger   logrus.FieldLogger
	metrics  *metrics.Collectors
	random   func() *rand.Rand
	mux      sync.Mutex
}

// New builds the service from config and loads the allocation history.
// A failed load does not fail New: the service keeps answering and reports
// the failure through InitError. Invalid configuration does fail New.
func New(ctx context.Context, config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	ret := &Service{config: config, logger: logrus.New()}
	for _, option := range options {
		option(ret)
	}
	if ret.random == nil {
		ret.random = universe.NewRandom
	}
	if ret.universe == nil {
		ret.universe = universe.Default()
		if config.MaxBatch > 0 && config.MaxBatch != ret.universe.MaxBatch() {
			ret.universe = universe.NewDefault(universe.WithMaxBatch(config.MaxBatch))
		}
	}
	if ret.backend == nil {
		if err := config.Validate(); err != nil {
			return nil, err
		}
		store, err := config.NewBackend(ctx)
		if err != nil {
			return nil, err
		}
		ret.backend = store
	}
	ret.store = allocator.New(ret.universe, ret.backend,
		allocator.WithCodec(codec.New(ret.universe, codec.WithLevel(config.ZlibLevel))),
		allocator.WithMaxAttempts(config.MaxAttempts),
		allocator.WithRandom(ret.random),
		allocator.WithLogger(ret.logger),
		allocator.WithMetrics(ret.metrics),
	)
	if err := ret.store.Init(ctx); err == nil {
		ret.logger.WithFields(logrus.Fields{
			"backend":   ret.backend.Name(),
			"total":     ret.store.TotalCapacity(),
			"remaining": ret.store.Remaining(),
		}).Info("history store ready")
	}
	return ret, nil
}

// TotalCapacity returns the number of names in the universe.
func (s *Service) TotalCapacity() int {
	return s.store.TotalCapacity()
}

// MaxBatch returns the largest count a single Allocate or Sample accepts.
func (s *Service) MaxBatch() int {
	return s.universe.MaxBatch()
}

// Remaining returns how many names the next Allocate may request at most.
func (s *Service) Remaining() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.store.Remaining()
}

// Allocate issues count never-before-issued names.
func (s *Service) Allocate(ctx context.Context, count int) ([]string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.store.Allocate(ctx, count)
}

// Sample returns count random names without recording them; repeats across
// calls are possible.
func (s *Service) Sample(count int) []string {
	return s.universe.Sample(count, s.random())
}

// Ready reports whether the history was loaded.
func (s *Service) Ready() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.store.State() == allocator.StateReady
}

// InitError returns the history load failure, if any.
func (s *Service) InitError() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.store.InitError()
}

// Reload re-reads the history from the backend, e.g. after a failed start.
func (s *Service) Reload(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.store.Init(ctx)
}

// Store returns the underlying allocation store. Callers must not use it
// concurrently with the Service.
func (s *Service) Store() *allocator.Service {
	return s.store
}

// Backend returns the persistence backend in use.
func (s *Service) Backend() backend.Backend {
	return s.backend
}

// Universe returns the name universe.
func (s *Service) Universe() *universe.Universe {
	return s.universe
}
