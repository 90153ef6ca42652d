//go:build dirtyconst_force_static && !dirtyconst_force_dynamic

package dirtyconst

// BuildOverride is the override build tag compiled into the current binary.
const BuildOverride = OverrideForceStatic
