package scene

import "testing"

func TestParseLightKind(t *testing.T) {
	type spec struct {
		name     string
		expKind  LightKind
		expError bool
	}
	specs := []spec{
		{"SUN", LightSun, false},
		{" spot ", LightSpot, false},
		{"point", LightPoint, false},
		{"AREA", LightArea, false},
		{"flashlight", LightFlashlight, false},
		{"LASER", 0, true},
		{"", 0, true},
	}

	for index, s := range specs {
		kind, err := ParseLightKind(s.name)
		if s.expError {
			if err == nil {
				t.Fatalf("[spec %d] expected '%s' to be rejected", index, s.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] expected '%s' to parse; got %v", index, s.name, err)
		}
		if kind != s.expKind {
			t.Fatalf("[spec %d] expected kind %s; got %s", index, s.expKind, kind)
		}
	}
}

func TestLightingValidation(t *testing.T) {
	if _, err := NewLighting(LightConfig{Energy: -1.0}); err == nil {
		t.Fatal("expected negative energy to be rejected")
	}
	if _, err := NewLighting(LightConfig{Color: [3]float32{2, 0, 0}}); err == nil {
		t.Fatal("expected out-of-range color to be rejected")
	}
	if _, err := NewLighting(LightConfig{Kinds: []LightKind{LightKind(99)}}); err == nil {
		t.Fatal("expected unknown light kind to be rejected")
	}
}

func TestLightingDefaults(t *testing.T) {
	lighting, err := NewLighting(LightConfig{})
	if err != nil {
		t.Fatal(err)
	}

	rig := lighting.Rig(0)
	if rig.Kind != LightSun {
		t.Fatalf("expected default light kind SUN; got %s", rig.Kind)
	}
	if rig.Energy != 2.0 {
		t.Fatalf("expected default energy 2; got %g", rig.Energy)
	}
	if rig.Color != [3]float32{1, 1, 1} {
		t.Fatalf("expected default white light; got %v", rig.Color)
	}
}

func TestSingleKindRigIsDeterministic(t *testing.T) {
	lighting, err := NewLighting(LightConfig{Kinds: []LightKind{LightArea}})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		if rig := lighting.Rig(i); rig.Kind != LightArea {
			t.Fatalf("[rig %d] expected AREA; got %s", i, rig.Kind)
		}
	}
}

func TestMultiKindRigIsReproducible(t *testing.T) {
	kinds := []LightKind{LightSun, LightSpot, LightPoint}
	first, err := NewLighting(LightConfig{Kinds: kinds, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewLighting(LightConfig{Kinds: kinds, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		if r1, r2 := first.Rig(i), second.Rig(i); r1 != r2 {
			t.Fatalf("[rig %d] expected identical rigs for identical seeds; got %+v and %+v", i, r1, r2)
		}
	}
}
