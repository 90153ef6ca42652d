//go:build !release

package dirtyconst

// BuildProfile is the ambient build profile of the current binary.
const BuildProfile = ProfileDebug
