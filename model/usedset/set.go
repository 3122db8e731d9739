// Package usedset tracks which universe indices have already been issued.
//
// The set is a bit vector of exactly ceil(size/8) bytes. Bit i lives in byte
// i/8 at position i%8 (least significant bit first), which is also the
// persisted layout.
package usedset

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/viant/namepool/model/types"
)

// Set is a fixed size used-index bit vector.
type Set struct {
	bits *bitset.BitSet
	size int
	used int
}

// ByteLen returns the byte length of a set over size indices.
func ByteLen(size int) int {
	return (size + 7) / 8
}

// New returns an empty set over size indices.
func New(size int) *Set {
	return &Set{bits: bitset.New(uint(size)), size: size}
}

// FromBytes loads a set from its raw byte form. The population is recounted
// from the bits; a length mismatch is an internal error, never resized.
func FromBytes(size int, raw []byte) (*Set, error) {
	if len(raw) != ByteLen(size) {
		return nil, types.Errorf(types.KindInternal, "internal error: bitset size mismatch (%d bytes, expected %d)", len(raw), ByteLen(size))
	}
	words := make([]uint64, (len(raw)+7)/8)
	var buf [8]byte
	for i := range words {
		buf = [8]byte{}
		copy(buf[:], raw[i*8:])
		words[i] = binary.LittleEndian.Uint64(buf[:])
	}
	ret := &Set{bits: bitset.FromWithLength(uint(size), words), size: size}
	ret.used = ret.count()
	return ret, nil
}

// count scans indices below size only; stray bits in the last byte are ignored.
func (s *Set) count() int {
	ret := 0
	for i, ok := s.bits.NextSet(0); ok && i < uint(s.size); i, ok = s.bits.NextSet(i + 1) {
		ret++
	}
	return ret
}

// Size returns the number of tracked indices.
func (s *Set) Size() int {
	return s.size
}

// Get reports whether index has been used.
func (s *Set) Get(index int) bool {
	if index < 0 || index >= s.size {
		return false
	}
	return s.bits.Test(uint(index))
}

// Set marks index as used. Marking twice is a no-op.
func (s *Set) Set(index int) {
	if index < 0 || index >= s.size || s.bits.Test(uint(index)) {
		return
	}
	s.bits.Set(uint(index))
	s.used++
}

// Population returns the number of used indices.
func (s *Set) Population() int {
	return s.used
}

// Remaining returns the number of unused indices.
func (s *Set) Remaining() int {
	if s.used >= s.size {
		return 0
	}
	return s.size - s.used
}

// UnusedIndices returns every unused index in ascending order.
func (s *Set) UnusedIndices() []int {
	ret := make([]int, 0, s.Remaining())
	for i, ok := s.bits.NextClear(0); ok && i < uint(s.size); i, ok = s.bits.NextClear(i + 1) {
		ret = append(ret, int(i))
	}
	return ret
}

// Bytes returns the raw form, exactly ByteLen(Size()) bytes long.
func (s *Set) Bytes() []byte {
	words := s.bits.Bytes()
	ret := make([]byte, len(words)*8)
	for i, word := range words {
		binary.LittleEndian.PutUint64(ret[i*8:], word)
	}
	size := ByteLen(s.size)
	if len(ret) < size {
		ret = append(ret, make([]byte, size-len(ret))...)
	}
	return ret[:size]
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return &Set{bits: s.bits.Clone(), size: s.size, used: s.used}
}

// Equal reports whether both sets track the same indices with the same bits.
func (s *Set) Equal(other *Set) bool {
	if other == nil || s.size != other.size {
		return false
	}
	return string(s.Bytes()) == string(other.Bytes())
}
