//go:build dirtyconst_force_dynamic && dirtyconst_force_static

package dirtyconst

// The two override tags are mutually exclusive. This file only exists in
// builds that set both, and it does not compile: the undefined identifier
// below is the diagnostic.
var _ = dirtyconst_cannot_enable_both_force_static_and_force_dynamic_build_tags
