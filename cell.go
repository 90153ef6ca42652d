package dirtyconst

import "reflect"

// noCopy makes `go vet` (copylocks) flag Cell values copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
