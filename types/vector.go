package types

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

const floatCmpEpsilon = 1e-6

type Vec3 f32.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize 3 component vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Convert a point on a sphere of the given radius from spherical coordinates
// (inclination phi, azimuth theta) to cartesian coordinates. Phi is measured
// from the +Z axis and theta from the +X axis on the XY plane, matching the
// camera placement conventions used by the render host.
func SphericalToCartesian(radius, phi, theta float32) Vec3 {
	return Vec3{
		radius * math32.Sin(phi) * math32.Cos(theta),
		radius * math32.Sin(phi) * math32.Sin(theta),
		radius * math32.Cos(phi),
	}
}
