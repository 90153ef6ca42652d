// Package dirtyconst provides Cell, a value that can be tweaked at runtime in
// development builds and is frozen in release builds, without changing call
// sites.
//
// # Quick start
//
//	var MaxRetries = dirtyconst.New(3)
//
//	func retry() {
//		for i := 0; i < MaxRetries.Get(); i++ {
//			// ...
//		}
//	}
//
//	// In a test or a debug console, with nothing else touching MaxRetries:
//	MaxRetries.UnsafeReplace(10)
//
// # Build modes
//
// The behavior of Cell is chosen at compile time by build tags. Exactly one
// implementation is compiled; there is no runtime flag and no branch.
//
//	tags                                  mode
//	(none)                                mutable
//	release                               frozen
//	dirtyconst_force_dynamic [release]    mutable
//	dirtyconst_force_static  [release]    frozen
//	both force tags                       build error
//
// CurrentMode, BuildProfile and BuildOverride are constants, so code such as
//
//	if dirtyconst.CurrentMode == dirtyconst.ModeMutable {
//		// debug-only wiring
//	}
//
// is removed entirely from frozen builds.
//
// # UnsafeReplace contract
//
// UnsafeReplace does not synchronize. In the mutable mode the caller must
// guarantee that:
//   - no other goroutine reads or writes the same Cell during the call;
//   - no pointer returned by Ref is used after the call expecting the old value:
//     the value is overwritten in place, not swapped behind an indirection.
//
// Breaking these rules is a data race. It is not detected or reported.
//
// A practical discipline: treat the time between two replacements as an epoch
// and do not keep Ref pointers across epochs. If something must survive a
// replacement, store a key into a table you own instead of a pointer into the Cell.
//
// Concurrent Get/Ref calls are safe as long as no UnsafeReplace is in flight.
//
// # Frozen mode
//
// In the frozen mode UnsafeReplace leaves the value unchanged and reports a
// Warning. By default the Warning is written to stderr as one line:
//
//	dirtyconst: WARNING: replace is disabled in this build mode=frozen type=int caller=/src/app/main.go:42
//
// Use SetWarningHandler to route Warnings elsewhere (see package dirtyslog
// for log/slog), and WarningCount to observe them programmatically.
package dirtyconst
