//go:build (dirtyconst_force_static && !dirtyconst_force_dynamic) || (!dirtyconst_force_dynamic && !dirtyconst_force_static && release)

package dirtyconst

import "runtime"

// CurrentMode is the Cell behavior compiled into the current binary.
const CurrentMode = ModeFrozen

// Cell holds one value of type T.
//
// In this build Cell is frozen: the value set by New never changes, and
// UnsafeReplace only reports a Warning.
//
// A Cell must not be copied after first use.
type Cell[T any] struct {
	_ noCopy
	v T
}

// New returns a Cell holding v.
//
// It is safe to call from package-level var declarations.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.v
}

// Ref returns a pointer to the stored value.
//
// The pointer stays valid for the lifetime of c. Do not write through it.
func (c *Cell[T]) Ref() *T {
	return &c.v
}

// UnsafeReplace does nothing in this build except report a Warning
// (see SetWarningHandler). It keeps call sites written for the mutable
// build compiling unchanged.
func (c *Cell[T]) UnsafeReplace(_ T) {
	w := Warning{Mode: ModeFrozen, Type: typeName[T]()}
	if _, file, line, ok := runtime.Caller(1); ok {
		w.File = file
		w.Line = line
	}
	report(w)
}
