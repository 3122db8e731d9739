// Package backend defines durable storage for exactly one blob.
//
// Implementations:
//   - fs     – a file addressed by local path or afs URL, written atomically
//   - gist   – a field of one remote gist resource, base64 text, last writer wins
//   - memory – an in-process blob with compare-and-swap writes
package backend

import (
	"context"
	"errors"
	"strings"

	"github.com/viant/namepool/model/types"
)

// Backend stores the single current blob.
type Backend interface {
	// Name identifies the backend in logs and metrics.
	Name() string

	// Read returns the current blob, or (nil, nil) when nothing has been stored yet.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the current blob. Only ErrConflict is retryable.
	Write(ctx context.Context, blob []byte) error

	// SupportsConditionalWrite reports whether Write detects concurrent updates
	// and fails with ErrConflict instead of overwriting them.
	SupportsConditionalWrite() bool

	// Shared reports whether other writers may update the blob, in which case
	// callers re-read before every allocation attempt.
	Shared() bool
}

// ErrConflict signals that the blob changed since it was read.
var ErrConflict = types.NewError(types.KindConflict, "precondition failed: blob changed concurrently")

// conflictMarkers are the textual conflict signals of remote services that
// report preconditions in messages rather than typed errors.
var conflictMarkers = []string{"precondition failed", "412"}

// IsConflict reports whether err is a retryable write conflict.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConflict) || types.IsKind(err, types.KindConflict) {
		return true
	}
	message := strings.ToLower(err.Error())
	for _, marker := range conflictMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
