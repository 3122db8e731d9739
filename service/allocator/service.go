package allocator

import (
	"context"
	"math/rand"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/viant/namepool/internal/clock"
	"github.com/viant/namepool/model/types"
	"github.com/viant/namepool/model/universe"
	"github.com/viant/namepool/model/usedset"
	"github.com/viant/namepool/service/backend"
	"github.com/viant/namepool/service/codec"
	"github.com/viant/namepool/service/metrics"
	"github.com/viant/namepool/tracing"
)

// Universe is the name universe an allocator issues from.
type Universe interface {
	codec.Universe
	MaxBatch() int
	NameAt(index int) (string, error)
}

// Service allocates never-before-issued names and persists the used set.
type Service struct {
	universe    Universe
	backend     backend.Backend
	codec       *codec.Codec
	maxAttempts int
	random      func() *rand.Rand
	logger      logrus.FieldLogger
	metrics     *metrics.Collectors

	state   State
	initErr error
	used    *usedset.Set
}

// New creates an uninitialized allocator; call Init before Allocate.
func New(names Universe, store backend.Backend, options ...Option) *Service {
	ret := &Service{
		universe:    names,
		backend:     store,
		maxAttempts: DefaultMaxAttempts,
		random:      universe.NewRandom,
		logger:      logrus.New(),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.codec == nil {
		ret.codec = codec.New(names)
	}
	return ret
}

// Init loads the used set from the backend. An absent blob starts an empty
// set which is written back immediately to claim the store. Any failure moves
// the service to StateFailed; the error is returned and kept for InitError.
func (s *Service) Init(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, "allocator.init", tracing.KindInternal)
	span.WithAttributes(map[string]string{"backend": s.backend.Name()})
	defer func() { tracing.EndSpan(span, err) }()

	s.state = StateLoading
	s.initErr = nil
	logger := s.logger.WithField("backend", s.backend.Name())
	blob, err := s.read(ctx)
	if err != nil {
		return s.fail(logger, err)
	}
	var used *usedset.Set
	if blob == nil {
		used = usedset.New(s.universe.Size())
		if err = s.write(ctx, used); err != nil {
			return s.fail(logger, err)
		}
		logger.Info("history initialized")
	} else if used, err = s.codec.Decode(blob); err != nil {
		return s.fail(logger, err)
	}
	s.used = used
	s.state = StateReady
	s.metrics.OnState(s.universe.Size(), used.Remaining())
	logger.WithFields(logrus.Fields{"used": used.Population(), "remaining": used.Remaining()}).Info("history loaded")
	return nil
}

func (s *Service) fail(logger logrus.FieldLogger, err error) error {
	s.state = StateFailed
	s.initErr = err
	s.used = nil
	logger.WithError(err).Error("history store unavailable")
	return err
}

// InitError returns the error of the last Init, if it failed.
func (s *Service) InitError() error {
	return s.initErr
}

// State returns the lifecycle state.
func (s *Service) State() State {
	return s.state
}

// TotalCapacity returns the universe size.
func (s *Service) TotalCapacity() int {
	return s.universe.Size()
}

// Remaining returns how many names a single Allocate could currently issue:
// the unused count capped at the universe max batch, or 0 unless ready.
func (s *Service) Remaining() int {
	if s.state != StateReady || s.used == nil {
		return 0
	}
	ret := s.used.Remaining()
	if limit := s.universe.MaxBatch(); ret > limit {
		ret = limit
	}
	if ret < 0 {
		return 0
	}
	return ret
}

// Used returns a copy of the in-memory used set, nil unless ready.
func (s *Service) Used() *usedset.Set {
	if s.state != StateReady || s.used == nil {
		return nil
	}
	return s.used.Clone()
}

// Allocate issues count distinct names never issued before and persists them
// before returning. A failed allocation issues nothing; on shared backends the
// in-memory set still follows the latest re-read history.
func (s *Service) Allocate(ctx context.Context, count int) (names []string, err error) {
	ctx, span := tracing.StartSpan(ctx, "allocator.allocate", tracing.KindInternal)
	span.WithInt("count", count)
	defer func() {
		tracing.EndSpan(span, err)
		s.metrics.OnAllocation(outcome(err), len(names))
	}()

	if s.state != StateReady {
		return nil, ErrUnavailable
	}
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if count > s.universe.MaxBatch() {
		return nil, ErrCountTooLarge
	}

	logger := s.logger.WithFields(logrus.Fields{"backend": s.backend.Name(), "count": count})
	rnd := s.random()
	attempt := 0
	operation := func() error {
		attempt++
		var attemptErr error
		names, attemptErr = s.attempt(ctx, count, rnd)
		if attemptErr == nil {
			return nil
		}
		if types.IsKind(attemptErr, types.KindConflict) {
			s.metrics.OnConflict()
			logger.WithField("attempt", attempt).Warn("history changed concurrently, retrying")
			return attemptErr
		}
		return backoff.Permanent(attemptErr)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(s.maxAttempts-1)), ctx)
	if err = backoff.Retry(operation, policy); err != nil {
		names = nil
		if types.IsKind(err, types.KindConflict) {
			logger.WithField("attempt", attempt).Error("giving up after concurrent updates")
			return nil, ErrRetryExhausted
		}
		return nil, err
	}
	s.metrics.OnState(s.universe.Size(), s.used.Remaining())
	logger.WithField("remaining", s.used.Remaining()).Debug("names allocated")
	return names, nil
}

// attempt runs one read-modify-write cycle. A re-read shared state replaces the
// in-memory set even when the attempt then fails. Only conflicts are returned
// with KindConflict; everything else is final.
func (s *Service) attempt(ctx context.Context, count int, rnd *rand.Rand) ([]string, error) {
	current := s.used
	if s.backend.Shared() {
		latest, err := s.reload(ctx)
		if err != nil {
			return nil, err
		}
		s.used = latest
		current = latest
	}
	if remaining := current.Remaining(); remaining < count {
		return nil, exhaustedError(remaining)
	}

	pool := current.UnusedIndices()
	for i := 0; i < count; i++ {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	next := current.Clone()
	names := make([]string, count)
	for i, index := range pool[:count] {
		name, err := s.universe.NameAt(index)
		if err != nil {
			return nil, err
		}
		next.Set(index)
		names[i] = name
	}

	if err := s.write(ctx, next); err != nil {
		if backend.IsConflict(err) {
			return nil, types.WrapError(types.KindConflict, "history write conflict", err)
		}
		return nil, err
	}
	s.used = next
	return names, nil
}

// reload returns the latest persisted set; absent or undersized blobs count as empty.
func (s *Service) reload(ctx context.Context) (*usedset.Set, error) {
	blob, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if len(blob) < codec.HeaderSize {
		return usedset.New(s.universe.Size()), nil
	}
	return s.codec.Decode(blob)
}

func (s *Service) read(ctx context.Context) (data []byte, err error) {
	ctx, span := tracing.StartSpan(ctx, "backend.read", tracing.KindClient)
	started := clock.Now()
	defer func() {
		s.metrics.OnBackend(s.backend.Name(), "read", clock.Since(started))
		tracing.EndSpan(span, err)
	}()
	return s.backend.Read(ctx)
}

func (s *Service) write(ctx context.Context, used *usedset.Set) (err error) {
	blob, err := s.codec.Encode(used)
	if err != nil {
		return err
	}
	ctx, span := tracing.StartSpan(ctx, "backend.write", tracing.KindClient)
	span.WithInt("bytes", len(blob))
	started := clock.Now()
	defer func() {
		s.metrics.OnBackend(s.backend.Name(), "write", clock.Since(started))
		tracing.EndSpan(span, err)
	}()
	return s.backend.Write(ctx, blob)
}

func outcome(err error) string {
	switch types.KindOf(err) {
	case types.KindUnknown:
		if err == nil {
			return metrics.OutcomeSuccess
		}
		return metrics.OutcomeError
	case types.KindValidation:
		return metrics.OutcomeInvalid
	case types.KindUnavailable:
		return metrics.OutcomeUnavailable
	case types.KindExhausted:
		return metrics.OutcomeExhausted
	case types.KindRetryExhausted:
		return metrics.OutcomeRetryExceeded
	}
	return metrics.OutcomeError
}
