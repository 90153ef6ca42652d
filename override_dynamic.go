//go:build dirtyconst_force_dynamic && !dirtyconst_force_static

package dirtyconst

// BuildOverride is the override build tag compiled into the current binary.
const BuildOverride = OverrideForceDynamic
