package dirtyconst

// Mode is the compiled behavior of Cell.
type Mode int

const (
	// ModeMutable: UnsafeReplace overwrites the stored value.
	ModeMutable Mode = iota
	// ModeFrozen: UnsafeReplace is a no-op that reports a Warning.
	ModeFrozen
)

func (m Mode) String() string {
	switch m {
	case ModeMutable:
		return "mutable"
	case ModeFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Profile is the ambient build profile.
//
// Go has no built-in debug/release distinction, so the profile is taken from
// the "release" build tag. Builds without it are development builds.
type Profile int

const (
	ProfileDebug Profile = iota
	ProfileRelease
)

func (p Profile) String() string {
	switch p {
	case ProfileDebug:
		return "debug"
	case ProfileRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Override is the override build tag in effect, if any.
type Override int

const (
	// OverrideNone means the mode follows BuildProfile.
	OverrideNone Override = iota
	// OverrideForceDynamic corresponds to -tags dirtyconst_force_dynamic.
	OverrideForceDynamic
	// OverrideForceStatic corresponds to -tags dirtyconst_force_static.
	OverrideForceStatic
)

func (o Override) String() string {
	switch o {
	case OverrideNone:
		return "none"
	case OverrideForceDynamic:
		return "force-dynamic"
	case OverrideForceStatic:
		return "force-static"
	default:
		return "unknown"
	}
}

// Build tag names consumed by the //go:build constraints in this package.
const (
	TagRelease      = "release"
	TagForceDynamic = "dirtyconst_force_dynamic"
	TagForceStatic  = "dirtyconst_force_static"
)

// BuildConfig describes how this package was compiled.
type BuildConfig struct {
	Mode     Mode     `json:"mode"`
	Profile  Profile  `json:"profile"`
	Override Override `json:"override"`
}

// Build returns the build configuration compiled into the current binary.
//
// All fields are constants; the result never changes during the process lifetime.
func Build() BuildConfig {
	return BuildConfig{
		Mode:     CurrentMode,
		Profile:  BuildProfile,
		Override: BuildOverride,
	}
}

// selectMode is the decision table behind the //go:build constraints of
// cell_mutable.go and cell_frozen.go. ok is false for a conflicting
// override, which the build itself rejects in override_conflict.go.
func selectMode(p Profile, o Override) (m Mode, ok bool) {
	switch o {
	case OverrideForceDynamic:
		return ModeMutable, true
	case OverrideForceStatic:
		return ModeFrozen, true
	case OverrideNone:
	default:
		return 0, false
	}
	if p == ProfileRelease {
		return ModeFrozen, true
	}
	return ModeMutable, true
}
