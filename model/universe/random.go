package universe

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/viant/namepool/internal/clock"
)

// golden ratio constant, spreads the clock bits before mixing
const clockMix = 0x9e3779b97f4a7c15

// NewRandom returns a generator seeded from the OS entropy source mixed with
// the high resolution clock, so rapid successive calls never share a sequence.
func NewRandom() *rand.Rand {
	var buf [8]byte
	_, _ = crand.Read(buf[:])
	now := uint64(clock.Now().UnixNano())
	seed := binary.LittleEndian.Uint64(buf[:]) ^ now ^ (now * clockMix)
	return rand.New(rand.NewSource(int64(seed)))
}
