package schema

import (
	"fmt"
	"hash/fnv"
)

// TypeID is the stable 64-bit identifier binding a wire packet to a
// component schema. It must be identical on both sides of the boundary for
// a given logical type.
type TypeID uint64

// TypeIDOf derives the identifier from a component's fully-qualified name
// using 64-bit FNV-1a. The zero hash is remapped to one so that zero can
// serve as an invalid sentinel.
func TypeIDOf(name string) TypeID {
	h := fnv.New64a()
	h.Write([]byte(name))
	id := h.Sum64()
	if id == 0 {
		id = 1
	}
	return TypeID(id)
}

// Uint64 returns the identifier as its wire representation.
func (id TypeID) Uint64() uint64 { return uint64(id) }

func (id TypeID) String() string {
	return fmt.Sprintf("%#016x", uint64(id))
}
