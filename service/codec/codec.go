// Package codec encodes a used set into the versioned RNGZ1 blob and back.
//
// Layout (little-endian):
//
//	magic                5 bytes  "RNGZ1"
//	version              1 byte   1
//	universe_size        4 bytes
//	universe_fingerprint 8 bytes
//	raw_len              4 bytes  ceil(universe_size/8)
//	comp_len             4 bytes  number of payload bytes that follow
//	payload              comp_len zlib stream of the raw set bytes
//
// The blob is compacted, not encrypted.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/viant/namepool/model/usedset"
)

const (
	// Version is the only format version this package reads or writes.
	Version = 1
	// HeaderSize is the fixed header length preceding the payload.
	HeaderSize = magicLen + 1 + 4 + 8 + 4 + 4
	// DefaultLevel is the zlib level used when none (or an invalid one) is configured.
	DefaultLevel = 6

	magicLen = 5
)

// Magic identifies the format family.
var Magic = [magicLen]byte{'R', 'N', 'G', 'Z', '1'}

// Universe is the part of the name universe the codec validates against.
type Universe interface {
	Size() int
	Fingerprint() uint64
}

// Codec converts used sets to blobs for one universe.
type Codec struct {
	universe Universe
	level    int
}

// Option customises a Codec.
type Option func(c *Codec)

// WithLevel sets the zlib level; values outside 1..9 keep the default.
func WithLevel(level int) Option {
	return func(c *Codec) {
		if level >= 1 && level <= 9 {
			c.level = level
		}
	}
}

// New creates a codec bound to universe.
func New(universe Universe, options ...Option) *Codec {
	ret := &Codec{universe: universe, level: DefaultLevel}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Level returns the effective compression level.
func (c *Codec) Level() int {
	return c.level
}

// Header is the decoded fixed-size prefix of a blob.
type Header struct {
	Version             byte
	UniverseSize        uint32
	UniverseFingerprint uint64
	RawLen              uint32
	CompLen             uint32
}

// Encode serialises set. The set must be sized for the bound universe.
func (c *Codec) Encode(set *usedset.Set) ([]byte, error) {
	size := c.universe.Size()
	raw := set.Bytes()
	if set.Size() != size || len(raw) != usedset.ByteLen(size) {
		return nil, ErrBitsetSize
	}
	payload, err := c.compress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompress, err)
	}
	blob := make([]byte, HeaderSize, HeaderSize+len(payload))
	header := Header{
		Version:             Version,
		UniverseSize:        uint32(size),
		UniverseFingerprint: c.universe.Fingerprint(),
		RawLen:              uint32(len(raw)),
		CompLen:             uint32(len(payload)),
	}
	header.put(blob)
	return append(blob, payload...), nil
}

// Decode parses blob and validates it against the bound universe. Checks run
// in a fixed order, each failing with its own sentinel error.
func (c *Codec) Decode(blob []byte) (*usedset.Set, error) {
	header, err := ReadHeader(blob)
	if err != nil {
		return nil, err
	}
	size := c.universe.Size()
	expectRaw := usedset.ByteLen(size)
	switch {
	case header.UniverseSize != uint32(size):
		return nil, ErrUniverseSize
	case header.UniverseFingerprint != c.universe.Fingerprint():
		return nil, ErrUniverseFingerprint
	case header.RawLen != uint32(expectRaw):
		return nil, ErrRawLength
	case uint64(HeaderSize)+uint64(header.CompLen) != uint64(len(blob)):
		return nil, ErrCompressedLength
	}
	raw, err := decompress(blob[HeaderSize:], expectRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	return usedset.FromBytes(size, raw)
}

// ReadHeader parses and checks the universe independent part of the header:
// length, magic and version.
func ReadHeader(blob []byte) (*Header, error) {
	if len(blob) < HeaderSize {
		return nil, ErrTooSmall
	}
	if !bytes.Equal(blob[:magicLen], Magic[:]) {
		return nil, ErrMagic
	}
	ret := &Header{Version: blob[magicLen]}
	if ret.Version != Version {
		return nil, ErrVersion
	}
	offset := magicLen + 1
	ret.UniverseSize = binary.LittleEndian.Uint32(blob[offset:])
	offset += 4
	ret.UniverseFingerprint = binary.LittleEndian.Uint64(blob[offset:])
	offset += 8
	ret.RawLen = binary.LittleEndian.Uint32(blob[offset:])
	offset += 4
	ret.CompLen = binary.LittleEndian.Uint32(blob[offset:])
	return ret, nil
}

func (h *Header) put(dest []byte) {
	copy(dest, Magic[:])
	offset := magicLen
	dest[offset] = h.Version
	offset++
	binary.LittleEndian.PutUint32(dest[offset:], h.UniverseSize)
	offset += 4
	binary.LittleEndian.PutUint64(dest[offset:], h.UniverseFingerprint)
	offset += 8
	binary.LittleEndian.PutUint32(dest[offset:], h.RawLen)
	offset += 4
	binary.LittleEndian.PutUint32(dest[offset:], h.CompLen)
}

func (c *Codec) compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err = writer.Write(raw); err != nil {
		_ = writer.Close()
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompress inflates payload, failing unless it yields exactly expectLen bytes.
func decompress(payload []byte, expectLen int) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	// one extra byte detects streams longer than expected
	ret, err := io.ReadAll(io.LimitReader(reader, int64(expectLen)+1))
	if err != nil {
		return nil, err
	}
	if len(ret) != expectLen {
		return nil, fmt.Errorf("decompressed %d bytes, expected %d", len(ret), expectLen)
	}
	return ret, nil
}
