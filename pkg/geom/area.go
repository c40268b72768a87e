package geom

// PrimitiveArea is a single filled region bounded by one closed loop. The
// boundary stores the first point only once; closure is implicit.
type PrimitiveArea struct {
	Boundary *LinePath
}

// Area is a filled region composed of primitive areas. Primitives wound
// opposite to the outer boundary cut holes under an even-odd fill rule.
type Area struct {
	Primitives []PrimitiveArea
}
