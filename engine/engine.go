// Package engine composes the camera, lighting, renderer, asset libraries
// and a scene host into the batch render loop that produces labeled frames.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnsutor/leopardi/asset"
	"github.com/johnsutor/leopardi/host"
	"github.com/johnsutor/leopardi/log"
	"github.com/johnsutor/leopardi/renderer"
	"github.com/johnsutor/leopardi/scene"
)

var logger = log.New("engine")

// Engine construction options. Every component is required; defaults live in
// the components themselves, not here.
type Config struct {
	Camera      *scene.Camera
	Lighting    *scene.Lighting
	Renderer    *renderer.Renderer
	Backgrounds *asset.Library
	Models      *asset.Library
	Host        host.SceneHost

	// Output directory for images and labels (default ./renders; created
	// when absent, must be writable).
	RenderDir string
}

// The orchestrating engine. It exclusively owns the host scene for the
// duration of a Render call; iterations run strictly sequentially because
// the host scene is not safe for concurrent mutation.
type Engine struct {
	cfg Config

	// Model class stem -> index into the session class list.
	classIndex map[string]int
}

// Create an engine from fully constructed components. Fails when any
// component is missing, when the output directory cannot be prepared, or
// when it is not writable. When YOLO labels are requested the session class
// list is written up front.
func New(cfg Config) (*Engine, error) {
	if cfg.Camera == nil || cfg.Lighting == nil || cfg.Renderer == nil ||
		cfg.Backgrounds == nil || cfg.Models == nil || cfg.Host == nil {
		return nil, ErrMissingComponent
	}
	if cfg.RenderDir == "" {
		cfg.RenderDir = "./renders"
	}

	if err := os.MkdirAll(cfg.RenderDir, 0755); err != nil {
		return nil, fmt.Errorf("engine: could not create render directory '%s': %s", cfg.RenderDir, err.Error())
	}
	if err := probeWritable(cfg.RenderDir); err != nil {
		return nil, err
	}

	classes := cfg.Models.Classes()
	classIndex := make(map[string]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	if cfg.Renderer.Wants(renderer.LabelYOLO) {
		if _, err := renderer.WriteClassList(cfg.RenderDir, classes); err != nil {
			return nil, err
		}
	}

	return &Engine{
		cfg:        cfg,
		classIndex: classIndex,
	}, nil
}

// Verify up front that the render directory accepts writes.
func probeWritable(dir string) error {
	probe := filepath.Join(dir, ".write-probe")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("engine: render directory '%s' is not writable: %s", dir, err.Error())
	}
	f.Close()
	os.Remove(probe)
	return nil
}

// Render n frames. Iterations run sequentially; each one selects the next
// background and model, rebuilds the host scene, renders, composites the
// background behind the transparent frame and collects the requested labels.
// The first error aborts the call; files written by earlier iterations stay
// on disk.
func (e *Engine) Render(n int) (*Session, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}

	session := &Session{Count: n}
	start := time.Now()

	for i := 0; i < n; i++ {
		if err := e.renderIteration(i, session); err != nil {
			return nil, fmt.Errorf("engine: iteration %d failed: %w", i, err)
		}
	}

	session.TotalTime = time.Since(start)
	logger.Noticef("rendered %d frames in %s", n, session.TotalTime)

	return session, nil
}

func (e *Engine) renderIteration(i int, session *Session) error {
	model, err := e.cfg.Models.Next(i)
	if err != nil {
		return err
	}

	// An empty background library (explicitly permitted at load time)
	// renders on the transparent film only.
	var background string
	if e.cfg.Backgrounds.Len() > 0 {
		if background, err = e.cfg.Backgrounds.Next(i); err != nil {
			return err
		}
	}

	sceneHost := e.cfg.Host
	if err = sceneHost.Reset(); err != nil {
		return err
	}
	if err = sceneHost.ImportModel(model); err != nil {
		return err
	}
	if err = sceneHost.SetCamera(e.cfg.Camera.Pose(i), e.cfg.Camera.Intrinsics()); err != nil {
		return err
	}
	if err = sceneHost.SetLight(e.cfg.Lighting.Rig(i)); err != nil {
		return err
	}
	if err = e.cfg.Renderer.Apply(sceneHost); err != nil {
		return err
	}

	stem := fmt.Sprintf("render_%d", i)
	imagePath := filepath.Join(e.cfg.RenderDir, stem+".png")

	logger.Infof("iteration %d: model=%s background=%s", i, model, background)

	renderStart := time.Now()
	if err = sceneHost.RenderFrame(imagePath); err != nil {
		return err
	}
	renderTime := time.Since(renderStart)

	if background != "" {
		if err = compositeBackground(imagePath, background); err != nil {
			return err
		}
	}

	labelFiles, err := e.cfg.Renderer.CollectLabels(sceneHost, e.cfg.RenderDir, stem, e.subject(model))
	if err != nil {
		return err
	}

	stat := IterationStat{
		Index:      i,
		Model:      filepath.Base(model),
		RenderTime: renderTime,
	}
	if background != "" {
		stat.Background = filepath.Base(background)
	}

	session.Images = append(session.Images, imagePath)
	session.LabelFiles = append(session.LabelFiles, labelFiles...)
	session.Iterations = append(session.Iterations, stat)

	return nil
}

func (e *Engine) subject(modelPath string) renderer.Subject {
	base := filepath.Base(modelPath)
	class := strings.TrimSuffix(base, filepath.Ext(base))
	return renderer.Subject{
		Class:      class,
		ClassIndex: e.classIndex[class],
	}
}
