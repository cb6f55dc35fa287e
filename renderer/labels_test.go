package renderer

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/johnsutor/leopardi/host"
	"github.com/johnsutor/leopardi/scene"
)

type stubHost struct {
	bounds    host.Box2D
	depthPath string
	spec      host.RenderSpec
}

func (s *stubHost) Reset() error { return nil }

func (s *stubHost) ImportModel(string) error { return nil }

func (s *stubHost) SetCamera(scene.Pose, scene.CameraIntrinsics) error { return nil }

func (s *stubHost) SetLight(scene.Rig) error { return nil }

func (s *stubHost) RenderFrame(string) error { return nil }

func (s *stubHost) DepthPath() (string, error) { return s.depthPath, nil }

func (s *stubHost) Bounds() (host.Box2D, error) { return s.bounds, nil }

func (s *stubHost) Configure(spec host.RenderSpec) error {
	s.spec = spec
	return nil
}

var centeredBounds = host.Box2D{MinX: 0.25, MinY: 0.25, MaxX: 0.75, MaxY: 0.75}

func TestApplyConfiguresHost(t *testing.T) {
	r, err := New(Settings{
		ResolutionX: 640,
		ResolutionY: 480,
		Engine:      EngineCycles,
		Labels:      []Label{LabelDepth},
		UseShadow:   true,
	})
	if err != nil {
		t.Fatal(err)
	}

	h := &stubHost{}
	if err = r.Apply(h); err != nil {
		t.Fatal(err)
	}

	if h.spec.ResolutionX != 640 || h.spec.ResolutionY != 480 {
		t.Fatalf("expected resolution 640x480 applied; got %dx%d", h.spec.ResolutionX, h.spec.ResolutionY)
	}
	if h.spec.Engine != "CYCLES" {
		t.Fatalf("expected engine CYCLES applied; got %s", h.spec.Engine)
	}
	if !h.spec.UseShadow || !h.spec.FilmTransparent || !h.spec.WantDepth {
		t.Fatalf("expected shadow, film transparency and depth pass requested; got %+v", h.spec)
	}
}

func TestCollectLabelsWithEmptySet(t *testing.T) {
	r, err := New(Settings{})
	if err != nil {
		t.Fatal(err)
	}

	written, err := r.CollectLabels(&stubHost{}, t.TempDir(), "render_0", Subject{})
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 0 {
		t.Fatalf("expected no label files; got %v", written)
	}
}

func TestYOLOAnnotation(t *testing.T) {
	dir := t.TempDir()
	r, err := New(Settings{Labels: []Label{LabelYOLO}})
	if err != nil {
		t.Fatal(err)
	}

	written, err := r.CollectLabels(&stubHost{bounds: centeredBounds}, dir, "render_0", Subject{Class: "teapot", ClassIndex: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 1 || written[0] != filepath.Join(dir, "render_0.txt") {
		t.Fatalf("expected a single render_0.txt; got %v", written)
	}

	payload, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	expLine := "3 0.500000 0.500000 0.500000 0.500000\n"
	if string(payload) != expLine {
		t.Fatalf("expected annotation %q; got %q", expLine, string(payload))
	}
}

func TestCOCOAnnotation(t *testing.T) {
	dir := t.TempDir()
	r, err := New(Settings{
		ResolutionX: 100,
		ResolutionY: 200,
		Labels:      []Label{LabelCOCO},
	})
	if err != nil {
		t.Fatal(err)
	}

	written, err := r.CollectLabels(&stubHost{bounds: centeredBounds}, dir, "render_1", Subject{Class: "teapot", ClassIndex: 0})
	if err != nil {
		t.Fatal(err)
	}

	payload, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	var doc cocoDocument
	if err = json.Unmarshal(payload, &doc); err != nil {
		t.Fatal(err)
	}

	if len(doc.Images) != 1 || doc.Images[0].FileName != "render_1.png" {
		t.Fatalf("expected one image entry for render_1.png; got %+v", doc.Images)
	}
	if len(doc.Annotations) != 1 {
		t.Fatalf("expected one annotation; got %d", len(doc.Annotations))
	}
	expBox := [4]float32{25, 50, 50, 100}
	if doc.Annotations[0].Bbox != expBox {
		t.Fatalf("expected bbox %v; got %v", expBox, doc.Annotations[0].Bbox)
	}
	if doc.Categories[0].Name != "teapot" || doc.Categories[0].Id != 1 {
		t.Fatalf("expected category teapot with id 1; got %+v", doc.Categories[0])
	}
}

func TestPascalAnnotation(t *testing.T) {
	dir := t.TempDir()
	r, err := New(Settings{
		ResolutionX: 100,
		ResolutionY: 200,
		Labels:      []Label{LabelPascal},
	})
	if err != nil {
		t.Fatal(err)
	}

	written, err := r.CollectLabels(&stubHost{bounds: centeredBounds}, dir, "render_2", Subject{Class: "teapot"})
	if err != nil {
		t.Fatal(err)
	}

	payload, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	var doc pascalAnnotation
	if err = xml.Unmarshal(payload, &doc); err != nil {
		t.Fatal(err)
	}

	if doc.Filename != "render_2.png" {
		t.Fatalf("expected filename render_2.png; got %s", doc.Filename)
	}
	if len(doc.Objects) != 1 || doc.Objects[0].Name != "teapot" {
		t.Fatalf("expected one teapot object; got %+v", doc.Objects)
	}
	expBox := pascalBox{XMin: 25, YMin: 50, XMax: 75, YMax: 150}
	if doc.Objects[0].Box != expBox {
		t.Fatalf("expected box %+v; got %+v", expBox, doc.Objects[0].Box)
	}
}

func TestDepthPassPlacement(t *testing.T) {
	dir := t.TempDir()
	scratch := filepath.Join(dir, "scratch_depth.png")
	if err := os.WriteFile(scratch, []byte("depth"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := New(Settings{Labels: []Label{LabelDepth}})
	if err != nil {
		t.Fatal(err)
	}

	written, err := r.CollectLabels(&stubHost{depthPath: scratch}, dir, "render_3", Subject{})
	if err != nil {
		t.Fatal(err)
	}

	expPath := filepath.Join(dir, "render_3_depth.png")
	if len(written) != 1 || written[0] != expPath {
		t.Fatalf("expected depth pass at %s; got %v", expPath, written)
	}
	if _, err = os.Stat(expPath); err != nil {
		t.Fatalf("expected depth pass on disk; got %v", err)
	}
}

func TestWriteClassList(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteClassList(dir, []string{"cube", "teapot"})
	if err != nil {
		t.Fatal(err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(payload) != "cube\nteapot\n" {
		t.Fatalf("expected two class lines; got %q", string(payload))
	}
}
