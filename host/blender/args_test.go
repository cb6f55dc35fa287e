package blender

import (
	"strings"
	"testing"

	"github.com/johnsutor/leopardi/host"
	"github.com/johnsutor/leopardi/scene"
	"github.com/johnsutor/leopardi/types"
)

func TestMarshalArgs(t *testing.T) {
	j := job{
		modelPath: "/assets/teapot.obj",
		pose: scene.Pose{
			Position: types.XYZ(1, 2, 3),
			Radius:   1,
			Phi:      0.5,
			Theta:    1.5,
		},
		intrinsics: scene.CameraIntrinsics{
			Lens:         50,
			SensorWidth:  36,
			SensorHeight: 24,
			FOVX:         0.5,
			FOVY:         0.5,
		},
		rig: scene.Rig{
			Kind:   scene.LightSpot,
			Energy: 2,
			Color:  [3]float32{1, 1, 1},
		},
		spec: host.RenderSpec{
			ResolutionX:     640,
			ResolutionY:     480,
			Engine:          "CYCLES",
			FilmTransparent: true,
			WantDepth:       true,
		},
	}

	args := marshalArgs(j, "/tmp/worker.py", "/out/render_0.png", "/tmp/render_0.png.meta.json")

	if args[0] != "-b" {
		t.Fatalf("expected background mode flag first; got %s", args[0])
	}

	joined := strings.Join(args, " ")
	for _, fragment := range []string{
		"--python /tmp/worker.py --",
		"-out /out/render_0.png",
		"-meta /tmp/render_0.png.meta.json",
		"-m /assets/teapot.obj",
		"-loc 1 2 3",
		"-phi 0.5",
		"-tta 1.5",
		"-le 50",
		"-lt SPOT",
		"-re CYCLES",
		"-rx 640",
		"-ry 480",
		"-ft",
		"-d",
	} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("expected args to contain %q; got %s", fragment, joined)
		}
	}

	if strings.Contains(joined, "-s ") || strings.HasSuffix(joined, "-s") {
		t.Fatalf("expected no shadow flag; got %s", joined)
	}
}

func TestMarshalArgsShadowFlag(t *testing.T) {
	j := job{spec: host.RenderSpec{UseShadow: true}}
	args := marshalArgs(j, "w.py", "out.png", "meta.json")
	if args[len(args)-1] != "-s" {
		t.Fatalf("expected shadow flag; got %v", args)
	}
}
