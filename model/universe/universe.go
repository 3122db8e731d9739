package universe

import (
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/viant/namepool/model/types"
)

const (
	// DefaultMaxBatch caps a single allocation or sample.
	DefaultMaxBatch = 5000

	// separator terminates every name in the fingerprint stream so that
	// ["ab","c"] and ["a","bc"] hash differently. 0xFF never occurs in UTF-8.
	separator = 0xFF
)

// Universe is the fixed, ordered list of every name that can be issued.
type Universe struct {
	names       []string
	fingerprint uint64
	maxBatch    int
	random      func() *rand.Rand
}

// Option customises a Universe.
type Option func(u *Universe)

// WithMaxBatch sets the largest count accepted by Sample and by allocators
// bound to this universe.
func WithMaxBatch(maxBatch int) Option {
	return func(u *Universe) {
		if maxBatch > 0 {
			u.maxBatch = maxBatch
		}
	}
}

// WithRandom overrides the generator factory used by Sample when none is passed.
func WithRandom(fn func() *rand.Rand) Option {
	return func(u *Universe) {
		if fn != nil {
			u.random = fn
		}
	}
}

// New enumerates every "<given> <family>" pair, all of listA first, then listB.
// Repeated full names keep their first position only.
func New(listA, listB, families []string, options ...Option) *Universe {
	ret := &Universe{maxBatch: DefaultMaxBatch, random: NewRandom}
	for _, option := range options {
		option(ret)
	}
	seen := make(map[string]struct{}, (len(listA)+len(listB))*len(families))
	ret.names = make([]string, 0, (len(listA)+len(listB))*len(families))
	for _, givenNames := range [][]string{listA, listB} {
		for _, given := range givenNames {
			for _, family := range families {
				name := given + " " + family
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				ret.names = append(ret.names, name)
			}
		}
	}
	ret.fingerprint = Fingerprint(ret.names)
	return ret
}

var (
	defaultOnce     sync.Once
	defaultUniverse *Universe
)

// Default returns the universe built from the embedded name lists.
func Default() *Universe {
	defaultOnce.Do(func() {
		defaultUniverse = NewDefault()
	})
	return defaultUniverse
}

// NewDefault builds a fresh universe from the embedded name lists.
func NewDefault(options ...Option) *Universe {
	return New(maleGivenNames, femaleGivenNames, familyNames, options...)
}

// Size returns the number of names.
func (u *Universe) Size() int {
	return len(u.names)
}

// MaxBatch returns the configured maximum batch size.
func (u *Universe) MaxBatch() int {
	return u.maxBatch
}

// Fingerprint returns the content hash computed at construction.
func (u *Universe) Fingerprint() uint64 {
	return u.fingerprint
}

// NameAt returns the name stored at index.
func (u *Universe) NameAt(index int) (string, error) {
	if index < 0 || index >= len(u.names) {
		return "", types.Errorf(types.KindOutOfRange, "universe index %d out of range [0, %d)", index, len(u.names))
	}
	return u.names[index], nil
}

// Sample draws count distinct names uniformly at random. It keeps no history:
// two calls may return overlapping names. An empty slice is returned for
// counts outside [1, min(MaxBatch, Size)]. A nil rnd uses a freshly seeded generator.
func (u *Universe) Sample(count int, rnd *rand.Rand) []string {
	if count <= 0 || count > u.maxBatch || count > len(u.names) {
		return []string{}
	}
	if rnd == nil {
		rnd = u.random()
	}
	indexes := rnd.Perm(len(u.names))
	ret := make([]string, count)
	for i := 0; i < count; i++ {
		ret[i] = u.names[indexes[i]]
	}
	return ret
}

// Fingerprint computes FNV-1a 64 over every name followed by a separator byte.
func Fingerprint(names []string) uint64 {
	hash := fnv.New64a()
	sep := []byte{separator}
	for _, name := range names {
		_, _ = hash.Write([]byte(name))
		_, _ = hash.Write(sep)
	}
	return hash.Sum64()
}
