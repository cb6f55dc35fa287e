package scene

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestCameraConfigValidation(t *testing.T) {
	type spec struct {
		cfg      CameraConfig
		expError bool
	}
	specs := []spec{
		{CameraConfig{}, false},
		{CameraConfig{Lens: 0.5}, true},
		{CameraConfig{SensorWidth: 0.5}, true},
		{CameraConfig{SensorHeight: 1.0}, true},
		{CameraConfig{FOVX: 5.0}, true},
		{CameraConfig{FOVY: 0.001}, true},
		{CameraConfig{Radius: -1.0}, true},
		{CameraConfig{PhiMin: 1.0, PhiMax: 0.5}, true},
		{CameraConfig{ThetaMin: 1.0, ThetaMax: 0.5}, true},
		{CameraConfig{ThetaMax: 7.0}, true},
		{CameraConfig{Subdivisions: 5}, true},
		{CameraConfig{Mode: CameraMode(9)}, true},
		{CameraConfig{Mode: CameraModeFibonacci, Points: 16}, false},
		{CameraConfig{Mode: CameraModeIcosphere, Subdivisions: 2}, false},
	}

	for index, s := range specs {
		_, err := NewCamera(s.cfg)
		if s.expError && err == nil {
			t.Fatalf("[spec %d] expected a configuration error; got nil", index)
		}
		if !s.expError && err != nil {
			t.Fatalf("[spec %d] expected config to be accepted; got %v", index, err)
		}
	}
}

func TestCameraDefaults(t *testing.T) {
	camera, err := NewCamera(CameraConfig{})
	if err != nil {
		t.Fatal(err)
	}

	intrinsics := camera.Intrinsics()
	if intrinsics.Lens != 50.0 {
		t.Fatalf("expected default lens 50; got %g", intrinsics.Lens)
	}
	if intrinsics.SensorWidth != 36.0 || intrinsics.SensorHeight != 24.0 {
		t.Fatalf("expected default sensor 36x24; got %gx%g", intrinsics.SensorWidth, intrinsics.SensorHeight)
	}
}

func TestRandomPosesStayInRange(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		PhiMin:   0.1,
		PhiMax:   0.5,
		ThetaMin: 1.0,
		ThetaMax: 2.0,
		Seed:     42,
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		pose := camera.Pose(i)
		if pose.Phi < 0.1 || pose.Phi > 0.5 {
			t.Fatalf("[pose %d] phi %g outside configured range", i, pose.Phi)
		}
		if pose.Theta < 1.0 || pose.Theta > 2.0 {
			t.Fatalf("[pose %d] theta %g outside configured range", i, pose.Theta)
		}
	}
}

func TestRandomPosesAreReproducible(t *testing.T) {
	first, err := NewCamera(CameraConfig{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewCamera(CameraConfig{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		p1 := first.Pose(i)
		p2 := second.Pose(i)
		if p1 != p2 {
			t.Fatalf("[pose %d] expected identical poses for identical seeds; got %+v and %+v", i, p1, p2)
		}
	}
}

func TestFibonacciPosesCycle(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		Mode:   CameraModeFibonacci,
		Points: 8,
		Radius: 2.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	// The default phi band keeps the 4 upper-hemisphere lattice points.
	for i := 0; i < 4; i++ {
		pose := camera.Pose(i)
		wrapped := camera.Pose(i + 4)
		if pose != wrapped {
			t.Fatalf("[pose %d] expected lattice poses to wrap after 4 points", i)
		}

		r := pose.Position.Len()
		if math32.Abs(r-2.0) > 1e-3 {
			t.Fatalf("[pose %d] expected pose on sphere of radius 2; got %g", i, r)
		}
	}
}

func TestDeterministicPosesRespectBand(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		Mode:     CameraModeFibonacci,
		Points:   64,
		PhiMin:   0.2,
		PhiMax:   1.0,
		ThetaMin: 1.0,
		ThetaMax: 5.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 64; i++ {
		pose := camera.Pose(i)
		if pose.Phi < 0.2 || pose.Phi > 1.0 {
			t.Fatalf("[pose %d] phi %g outside configured band", i, pose.Phi)
		}
		if pose.Theta < 1.0 || pose.Theta > 5.0 {
			t.Fatalf("[pose %d] theta %g outside configured band", i, pose.Theta)
		}
	}
}

func TestEmptyPlacementBandIsRejected(t *testing.T) {
	_, err := NewCamera(CameraConfig{
		Mode:   CameraModeFibonacci,
		Points: 8,
		PhiMin: 0.0001,
		PhiMax: 0.0002,
	})
	if err == nil {
		t.Fatal("expected a band holding no lattice points to be rejected")
	}
}

func TestIcosphereVertexCounts(t *testing.T) {
	type spec struct {
		subdivisions int
		expVerts     int
	}
	specs := []spec{
		{0, 12},
		{1, 42},
		{2, 162},
	}

	for index, s := range specs {
		poses := icosphereVertices(s.subdivisions, 1.0)
		if len(poses) != s.expVerts {
			t.Fatalf("[spec %d] expected %d vertices; got %d", index, s.expVerts, len(poses))
		}

		for i, pose := range poses {
			r := pose.Position.Len()
			if math32.Abs(r-1.0) > 1e-3 {
				t.Fatalf("[spec %d] vertex %d not on unit sphere; radius %g", index, i, r)
			}
		}
	}
}

func TestParseCameraMode(t *testing.T) {
	if _, err := ParseCameraMode("icosphere"); err != nil {
		t.Fatalf("expected icosphere to parse; got %v", err)
	}
	if _, err := ParseCameraMode("orbit"); err == nil {
		t.Fatal("expected unsupported camera mode to be rejected")
	}
}
