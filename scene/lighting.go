package scene

import (
	"fmt"
	"math/rand"
	"strings"
)

// The light kinds understood by the render host. Flashlight is a composite
// rig of two co-located spots, one wide and one narrow high-energy.
type LightKind uint8

const (
	LightSun LightKind = iota
	LightSpot
	LightPoint
	LightArea
	LightFlashlight
)

func (k LightKind) String() string {
	switch k {
	case LightSun:
		return "SUN"
	case LightSpot:
		return "SPOT"
	case LightPoint:
		return "POINT"
	case LightArea:
		return "AREA"
	case LightFlashlight:
		return "FLASHLIGHT"
	}
	return "UNKNOWN"
}

// Parse a light kind name. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseLightKind(name string) (LightKind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SUN":
		return LightSun, nil
	case "SPOT":
		return LightSpot, nil
	case "POINT":
		return LightPoint, nil
	case "AREA":
		return LightArea, nil
	case "FLASHLIGHT":
		return LightFlashlight, nil
	}
	return 0, fmt.Errorf("scene: unsupported light kind '%s'", name)
}

// Lighting construction options.
type LightConfig struct {
	// Candidate light kinds; one is picked per render iteration
	// (default {LightSun}).
	Kinds []LightKind

	// Light energy (default 2; must be positive).
	Energy float32

	// Light color, RGB components in [0, 1] (default white).
	Color [3]float32

	// Seed for the per-iteration kind pick when Kinds has more than one
	// entry.
	Seed int64
}

// The light rig applied to the host scene for one iteration. The host
// positions the rig at the camera's spherical pose, tracking the origin.
type Rig struct {
	Kind   LightKind
	Energy float32
	Color  [3]float32
}

// Lighting picks a light rig for each render iteration.
type Lighting struct {
	cfg LightConfig
	rng *rand.Rand
}

// Create a lighting setup, applying defaults and validating the options.
func NewLighting(cfg LightConfig) (*Lighting, error) {
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = []LightKind{LightSun}
	}
	if cfg.Energy == 0 {
		cfg.Energy = 2.0
	}
	if cfg.Color == [3]float32{} {
		cfg.Color = [3]float32{1, 1, 1}
	}

	for _, kind := range cfg.Kinds {
		if kind > LightFlashlight {
			return nil, fmt.Errorf("scene: unsupported light kind %d", kind)
		}
	}
	if cfg.Energy <= 0 {
		return nil, fmt.Errorf("scene: light energy must be positive; got %g", cfg.Energy)
	}
	for _, c := range cfg.Color {
		if c < 0 || c > 1 {
			return nil, fmt.Errorf("scene: light color components must be in [0, 1]; got %v", cfg.Color)
		}
	}

	return &Lighting{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Pick the light rig for the given render iteration. A single-kind config is
// deterministic; multiple kinds are drawn from the seeded generator.
func (l *Lighting) Rig(iteration int) Rig {
	kind := l.cfg.Kinds[0]
	if len(l.cfg.Kinds) > 1 {
		kind = l.cfg.Kinds[l.rng.Intn(len(l.cfg.Kinds))]
	}

	return Rig{
		Kind:   kind,
		Energy: l.cfg.Energy,
		Color:  l.cfg.Color,
	}
}
