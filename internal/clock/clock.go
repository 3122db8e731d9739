// Package clock is the time seam used for seeding generators and timing
// backend calls. Tests override NowFunc for determinism.
package clock

import "time"

// NowFunc returns current time.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Since returns the time elapsed since start according to NowFunc.
func Since(start time.Time) time.Duration { return NowFunc().Sub(start) }
