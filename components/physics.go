package components

import (
	"github.com/lars-frogner/impact-wire/schema"
	"github.com/lars-frogner/impact-wire/vecmath"
)

// Motion is a linear and angular velocity. The angular velocity is
// represented by an axis of rotation and an angular speed in radians per
// second.
type Motion struct {
	LinearVelocity vecmath.Vector3
	AxisOfRotation vecmath.UnitVector3
	AngularSpeed   float32
}

// CollidableKind classifies how a collidable participates in collision
// resolution.
type CollidableKind uint8

const (
	// CollidableDynamic collidables respond to collision forces.
	CollidableDynamic CollidableKind = iota
	// CollidableStatic collidables exert collision forces without responding
	// to them.
	CollidableStatic
	// CollidablePhantom collidables detect collisions without exerting or
	// responding to forces.
	CollidablePhantom
)

// Collidable declares that the entity participates in collision detection
// with the given kind.
type Collidable struct {
	Kind CollidableKind
}

// AlignmentDirection is an external direction a body can be aligned with:
// either a fixed direction or the direction of the total gravitational force
// acting on the body.
type AlignmentDirection struct {
	Which uint8
	Fixed FixedAlignmentDirection
}

// Discriminants of AlignmentDirection.
const (
	AlignmentFixed uint8 = iota
	AlignmentGravityForce
)

// FixedAlignmentDirection is the payload of the fixed variant.
type FixedAlignmentDirection struct {
	Direction vecmath.UnitVector3
}

// AlignmentTorque requests a torque working to align an axis of the body
// with an external direction.
type AlignmentTorque struct {
	// AxisToAlign is the local axis of the body to align.
	AxisToAlign        vecmath.UnitVector3
	AlignmentDirection AlignmentDirection
	// SettlingTime is the approximate time the torque should take to achieve
	// the alignment.
	SettlingTime float32
	// SpinDamping is the strength with which to damp the component of
	// angular velocity around the axis to align.
	SpinDamping float32
	// PrecessionDamping is the strength with which to damp the component of
	// angular velocity causing precession around the alignment direction.
	PrecessionDamping float32
}

var (
	MotionSchema = schema.MustNew("impact_physics::quantities::Motion",
		schema.FieldSpec{Name: "linear_velocity", Kind: schema.KindVector3},
		schema.FieldSpec{Name: "axis_of_rotation", Kind: schema.KindUnitVector3},
		schema.FieldSpec{Name: "angular_speed", Kind: schema.KindF32},
	)

	CollidableKindSpec = schema.MustNewEnum("impact_physics::collision::CollidableKind",
		schema.VariantSpec{Name: "dynamic"},
		schema.VariantSpec{Name: "static"},
		schema.VariantSpec{Name: "phantom"},
	)
	CollidableSchema = schema.MustNew("impact_physics::collision::Collidable",
		schema.FieldSpec{Name: "kind", Kind: schema.KindEnum, Enum: CollidableKindSpec},
	)

	AlignmentDirectionSpec = schema.MustNewEnum("impact_physics::force::alignment_torque::AlignmentDirection",
		schema.VariantSpec{Name: "fixed", Fields: []schema.FieldSpec{
			{Name: "direction", Kind: schema.KindUnitVector3},
		}},
		schema.VariantSpec{Name: "gravity_force"},
	)
	AlignmentTorqueSchema = schema.MustNew("impact_physics::force::alignment_torque::AlignmentTorque",
		schema.FieldSpec{Name: "axis_to_align", Kind: schema.KindUnitVector3},
		schema.FieldSpec{Name: "alignment_direction", Kind: schema.KindEnum, Enum: AlignmentDirectionSpec},
		schema.FieldSpec{Name: "settling_time", Kind: schema.KindF32},
		schema.FieldSpec{Name: "spin_damping", Kind: schema.KindF32},
		schema.FieldSpec{Name: "precession_damping", Kind: schema.KindF32},
	)
)
