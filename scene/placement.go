package scene

import (
	"github.com/chewxy/math32"
	"github.com/johnsutor/leopardi/types"
)

// Convert a unit-sphere point to a pose on the placement sphere of the given
// radius.
func poseFromUnit(p types.Vec3, radius float32) Pose {
	phi := math32.Atan2(math32.Sqrt(p[0]*p[0]+p[1]*p[1]), p[2])
	theta := math32.Atan2(p[1], p[0])
	if theta < 0 {
		theta += 2.0 * math32.Pi
	}
	return Pose{
		Position: p.Mul(radius),
		Radius:   radius,
		Phi:      phi,
		Theta:    theta,
	}
}

// Keep only the poses whose spherical angles fall inside the configured
// phi/theta band.
func filterBand(poses []Pose, cfg CameraConfig) []Pose {
	kept := poses[:0]
	for _, pose := range poses {
		if pose.Phi < cfg.PhiMin || pose.Phi > cfg.PhiMax {
			continue
		}
		if pose.Theta < cfg.ThetaMin || pose.Theta > cfg.ThetaMax {
			continue
		}
		kept = append(kept, pose)
	}
	return kept
}

// Generate n points on the unit sphere using a fibonacci lattice: successive
// points advance by the golden angle in azimuth while z sweeps linearly from
// pole to pole.
func fibonacciLattice(n int, radius float32) []Pose {
	goldenAngle := (3.0 - math32.Sqrt(5.0)) * math32.Pi

	poses := make([]Pose, n)
	for i := 0; i < n; i++ {
		z := float32(1-n+2*i) / float32(n)
		r := math32.Sqrt(1.0 - z*z)
		angle := goldenAngle * float32(i)

		p := types.XYZ(r*math32.Cos(angle), r*math32.Sin(angle), z)
		poses[i] = poseFromUnit(p, radius)
	}

	return poses
}

// Generate the vertices of an icosphere with the given number of subdivision
// passes, projected onto the unit sphere. Each pass splits every face into
// four, reusing midpoint vertices between neighbouring faces.
func icosphereVertices(subdivisions int, radius float32) []Pose {
	t := (1.0 + math32.Sqrt(5.0)) / 2.0

	verts := []types.Vec3{
		types.XYZ(-1, t, 0).Normalize(),
		types.XYZ(1, t, 0).Normalize(),
		types.XYZ(-1, -t, 0).Normalize(),
		types.XYZ(1, -t, 0).Normalize(),
		types.XYZ(0, -1, t).Normalize(),
		types.XYZ(0, 1, t).Normalize(),
		types.XYZ(0, -1, -t).Normalize(),
		types.XYZ(0, 1, -t).Normalize(),
		types.XYZ(t, 0, -1).Normalize(),
		types.XYZ(t, 0, 1).Normalize(),
		types.XYZ(-t, 0, -1).Normalize(),
		types.XYZ(-t, 0, 1).Normalize(),
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	midpointCache := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if b < a {
			key = [2]int{b, a}
		}
		if idx, exists := midpointCache[key]; exists {
			return idx
		}

		mid := verts[a].Add(verts[b]).Mul(0.5).Normalize()
		verts = append(verts, mid)
		idx := len(verts) - 1
		midpointCache[key] = idx
		return idx
	}

	for pass := 0; pass < subdivisions; pass++ {
		subdivided := make([][3]int, 0, len(faces)*4)
		for _, face := range faces {
			v1 := midpoint(face[0], face[1])
			v2 := midpoint(face[1], face[2])
			v3 := midpoint(face[2], face[0])

			subdivided = append(subdivided,
				[3]int{face[0], v1, v3},
				[3]int{face[1], v2, v1},
				[3]int{face[2], v3, v2},
				[3]int{v1, v2, v3},
			)
		}
		faces = subdivided
	}

	poses := make([]Pose, len(verts))
	for i, v := range verts {
		poses[i] = poseFromUnit(v, radius)
	}

	return poses
}
