package components

import "github.com/lars-frogner/impact-wire/schema"

// Bits for SceneEntityFlags.
const (
	SceneEntityIsDisabled     uint8 = 1 << 0
	SceneEntityCastsNoShadows uint8 = 1 << 1
)

// SceneEntityFlags is a bitmask of per-entity scene behavior toggles.
type SceneEntityFlags struct {
	Flags uint8
}

// Disabled reports whether the entity is excluded from the scene.
func (f SceneEntityFlags) Disabled() bool {
	return f.Flags&SceneEntityIsDisabled != 0
}

// CastsNoShadows reports whether the entity is excluded from shadow maps.
func (f SceneEntityFlags) CastsNoShadows() bool {
	return f.Flags&SceneEntityCastsNoShadows != 0
}

var SceneEntityFlagsSchema = schema.MustNew("impact_scene::SceneEntityFlags",
	schema.FieldSpec{Name: "flags", Kind: schema.KindU8},
)
