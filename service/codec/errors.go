package codec

import "github.com/viant/namepool/model/types"

// Decode failures, listed in check order. None is transient: each means the
// blob is corrupted or the universe definition changed since it was written.
var (
	ErrTooSmall            = types.NewError(types.KindFormat, "history blob is corrupted (too small)")
	ErrMagic               = types.NewError(types.KindFormat, "history blob has wrong magic/version")
	ErrVersion             = types.NewError(types.KindFormat, "history blob version unsupported")
	ErrUniverseSize        = types.NewError(types.KindFormat, "history universe size mismatch (names list changed?)")
	ErrUniverseFingerprint = types.NewError(types.KindFormat, "history universe fingerprint mismatch (names list changed?)")
	ErrRawLength           = types.NewError(types.KindFormat, "history raw length mismatch")
	ErrCompressedLength    = types.NewError(types.KindFormat, "history compressed length mismatch")
	ErrDecompress          = types.NewError(types.KindCompression, "history decompress failed")

	ErrCompress   = types.NewError(types.KindCompression, "history compress failed")
	ErrBitsetSize = types.NewError(types.KindInternal, "internal error: bitset size mismatch")
)
