package lumen

// Compile time checks to ensure that the geometry interface is implemented
// by all required types
var (
	_ Geometry = (*Sphere)(nil)
)
