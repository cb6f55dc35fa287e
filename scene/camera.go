package scene

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/johnsutor/leopardi/types"
)

// Camera placement modes.
type CameraMode uint8

const (
	// Draw a uniform random pose from the configured phi/theta ranges.
	CameraModeRandom CameraMode = iota

	// Cycle through a fibonacci lattice on the placement sphere.
	CameraModeFibonacci

	// Cycle through the vertices of a subdivided icosphere.
	CameraModeIcosphere
)

func (m CameraMode) String() string {
	switch m {
	case CameraModeRandom:
		return "random"
	case CameraModeFibonacci:
		return "fibonacci"
	case CameraModeIcosphere:
		return "icosphere"
	}
	return "unknown"
}

// Parse a camera mode name.
func ParseCameraMode(name string) (CameraMode, error) {
	switch name {
	case "random":
		return CameraModeRandom, nil
	case "fibonacci":
		return CameraModeFibonacci, nil
	case "icosphere":
		return CameraModeIcosphere, nil
	}
	return 0, fmt.Errorf("scene: unsupported camera mode '%s'", name)
}

// Host-facing lens parameters. Applied to the host camera object as-is; any
// projection math happens on the host side.
type CameraIntrinsics struct {
	Lens         float32
	SensorWidth  float32
	SensorHeight float32
	FOVX         float32
	FOVY         float32
}

// A camera pose for a single render iteration. Position is the cartesian
// placement of the camera eye; Phi/Theta are the spherical angles it was
// derived from, which the host also uses to orient the camera towards the
// origin.
type Pose struct {
	Position types.Vec3
	Radius   float32
	Phi      float32
	Theta    float32
}

// Angular FOV bounds accepted by the host camera.
const (
	minFOV = 0.00640536
	maxFOV = 3.01675
)

// Camera construction options. The zero value for any field selects the
// documented default.
type CameraConfig struct {
	// Lens focal length in mm (default 50; must be >= 1).
	Lens float32

	// Sensor dims in mm (defaults 36x24; must be > 1).
	SensorWidth  float32
	SensorHeight float32

	// Angular FOV in rad. Both default to the host minimum and must stay
	// within [0.00640536, 3.01675].
	FOVX float32
	FOVY float32

	// Radius of the placement sphere (default 1; must be > 0).
	Radius float32

	// Inclination band: 0 <= PhiMin < PhiMax <= pi/2 (defaults 0, pi/2).
	PhiMin float32
	PhiMax float32

	// Azimuth band: 0 <= ThetaMin < ThetaMax <= 2*pi (defaults 0, 2*pi).
	ThetaMin float32
	ThetaMax float32

	// Pose generation mode (default CameraModeRandom).
	Mode CameraMode

	// Lattice sample count for CameraModeFibonacci (default 64).
	Points int

	// Subdivision count for CameraModeIcosphere (default 1, max 4).
	Subdivisions int

	// Seed for CameraModeRandom pose draws.
	Seed int64

	// Positional jitter added to every generated pose.
	Perturbation types.Vec3
}

// The camera generates one pose per render iteration and carries the lens
// parameters that get applied to the host camera object.
type Camera struct {
	cfg    CameraConfig
	rng    *rand.Rand
	points []Pose
}

// Create a camera, applying defaults for zero-valued options and validating
// the numeric ranges. Deterministic placement modes precompute their pose set
// up front.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if cfg.Lens == 0 {
		cfg.Lens = 50.0
	}
	if cfg.SensorWidth == 0 {
		cfg.SensorWidth = 36.0
	}
	if cfg.SensorHeight == 0 {
		cfg.SensorHeight = 24.0
	}
	if cfg.FOVX == 0 {
		cfg.FOVX = minFOV
	}
	if cfg.FOVY == 0 {
		cfg.FOVY = minFOV
	}
	if cfg.Radius == 0 {
		cfg.Radius = 1.0
	}
	if cfg.PhiMax == 0 {
		cfg.PhiMax = math32.Pi / 2.0
	}
	if cfg.ThetaMax == 0 {
		cfg.ThetaMax = 2.0 * math32.Pi
	}
	if cfg.Points == 0 {
		cfg.Points = 64
	}
	if cfg.Subdivisions == 0 {
		cfg.Subdivisions = 1
	}

	if cfg.Lens < 1.0 {
		return nil, fmt.Errorf("scene: camera lens must be at least 1mm; got %g", cfg.Lens)
	}
	if cfg.SensorWidth <= 1.0 || cfg.SensorHeight <= 1.0 {
		return nil, fmt.Errorf("scene: camera sensor dims must exceed 1mm; got %gx%g", cfg.SensorWidth, cfg.SensorHeight)
	}
	if cfg.FOVX < minFOV || cfg.FOVX > maxFOV {
		return nil, fmt.Errorf("scene: camera fov-x %g outside [%g, %g]", cfg.FOVX, float32(minFOV), float32(maxFOV))
	}
	if cfg.FOVY < minFOV || cfg.FOVY > maxFOV {
		return nil, fmt.Errorf("scene: camera fov-y %g outside [%g, %g]", cfg.FOVY, float32(minFOV), float32(maxFOV))
	}
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("scene: camera radius must be positive; got %g", cfg.Radius)
	}
	if cfg.PhiMin < 0 || cfg.PhiMax > math32.Pi/2.0 || cfg.PhiMin >= cfg.PhiMax {
		return nil, fmt.Errorf("scene: camera phi range [%g, %g] invalid; want 0 <= min < max <= pi/2", cfg.PhiMin, cfg.PhiMax)
	}
	if cfg.ThetaMin < 0 || cfg.ThetaMax > 2.0*math32.Pi || cfg.ThetaMin >= cfg.ThetaMax {
		return nil, fmt.Errorf("scene: camera theta range [%g, %g] invalid; want 0 <= min < max <= 2*pi", cfg.ThetaMin, cfg.ThetaMax)
	}
	if cfg.Points < 1 {
		return nil, fmt.Errorf("scene: camera lattice point count must be positive; got %d", cfg.Points)
	}
	if cfg.Subdivisions < 0 || cfg.Subdivisions > 4 {
		return nil, fmt.Errorf("scene: camera icosphere subdivisions must be in [0, 4]; got %d", cfg.Subdivisions)
	}
	if cfg.Mode > CameraModeIcosphere {
		return nil, fmt.Errorf("scene: unsupported camera mode %d", cfg.Mode)
	}

	camera := &Camera{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}

	switch cfg.Mode {
	case CameraModeFibonacci:
		camera.points = filterBand(fibonacciLattice(cfg.Points, cfg.Radius), cfg)
	case CameraModeIcosphere:
		camera.points = filterBand(icosphereVertices(cfg.Subdivisions, cfg.Radius), cfg)
	}
	if cfg.Mode != CameraModeRandom && len(camera.points) == 0 {
		return nil, fmt.Errorf("scene: no %s placement points inside the configured phi/theta band", cfg.Mode)
	}

	return camera, nil
}

// Lens parameters to apply to the host camera.
func (c *Camera) Intrinsics() CameraIntrinsics {
	return CameraIntrinsics{
		Lens:         c.cfg.Lens,
		SensorWidth:  c.cfg.SensorWidth,
		SensorHeight: c.cfg.SensorHeight,
		FOVX:         c.cfg.FOVX,
		FOVY:         c.cfg.FOVY,
	}
}

// Generate the camera pose for the given render iteration. Random mode draws
// from the seeded generator; the deterministic modes cycle through their
// precomputed point sets.
func (c *Camera) Pose(iteration int) Pose {
	var pose Pose
	switch c.cfg.Mode {
	case CameraModeRandom:
		phi := c.cfg.PhiMin + (c.cfg.PhiMax-c.cfg.PhiMin)*c.rng.Float32()
		theta := c.cfg.ThetaMin + (c.cfg.ThetaMax-c.cfg.ThetaMin)*c.rng.Float32()
		pose = Pose{
			Position: types.SphericalToCartesian(c.cfg.Radius, phi, theta),
			Radius:   c.cfg.Radius,
			Phi:      phi,
			Theta:    theta,
		}
	default:
		pose = c.points[iteration%len(c.points)]
	}

	pose.Position = pose.Position.Add(c.cfg.Perturbation)
	return pose
}
