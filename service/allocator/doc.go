// Package allocator hands out names from a universe so that no name is ever
// issued twice. The used set is loaded from a persistence backend at Init and
// every successful allocation is written back before names are returned.
//
// A Service is not safe for concurrent use; callers serialize Allocate.
package allocator
