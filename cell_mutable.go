//go:build (dirtyconst_force_dynamic && !dirtyconst_force_static) || (!dirtyconst_force_dynamic && !dirtyconst_force_static && !release)

package dirtyconst

// CurrentMode is the Cell behavior compiled into the current binary.
const CurrentMode = ModeMutable

// Cell holds one value of type T.
//
// In this build Cell is mutable: UnsafeReplace overwrites the stored value in place.
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
// The pointer aliases the cell's storage: a later UnsafeReplace overwrites the
// memory it points to. Do not write through it.
func (c *Cell[T]) Ref() *T {
	return &c.v
}

// UnsafeReplace overwrites the stored value with v.
//
// It does not synchronize. The caller must guarantee that no other goroutine
// reads or writes c during the call, and that no pointer obtained from Ref
// (or value derived from one) is used after it returns expecting the old value.
// Breaking either rule is a data race.
func (c *Cell[T]) UnsafeReplace(v T) {
	c.v = v
}
