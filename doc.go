// Package namepool issues human-readable names that are never handed out twice.
//
// Names come from a fixed universe of "<given> <family>" combinations. The set
// of names already issued is persisted as a compact versioned blob through a
// pluggable backend (local file, afs URL, or a GitHub gist), so uniqueness
// survives restarts.
//
//	srv, err := namepool.New(ctx, namepool.DefaultConfig())
//	names, err := srv.Allocate(ctx, 10)
//
// The HTTP surface lives in service/http and the command line in cmd/namepool.
package namepool
