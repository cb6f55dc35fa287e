package cmd

import (
	"bytes"

	"github.com/johnsutor/leopardi/asset"
	"github.com/johnsutor/leopardi/engine"
	"github.com/johnsutor/leopardi/host/blender"
	"github.com/johnsutor/leopardi/renderer"
	"github.com/johnsutor/leopardi/scene"
	"github.com/urfave/cli"
)

// Render a batch of labeled frames.
func RenderBatch(ctx *cli.Context) error {
	setupLogging(ctx)

	cameraMode, err := scene.ParseCameraMode(ctx.String("camera-mode"))
	if err != nil {
		return err
	}
	camera, err := scene.NewCamera(scene.CameraConfig{
		Lens:   float32(ctx.Float64("lens")),
		Radius: float32(ctx.Float64("radius")),
		Mode:   cameraMode,
		Seed:   ctx.Int64("seed"),
	})
	if err != nil {
		return err
	}

	var kinds []scene.LightKind
	for _, name := range ctx.StringSlice("light") {
		kind, err := scene.ParseLightKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}
	lighting, err := scene.NewLighting(scene.LightConfig{
		Kinds:  kinds,
		Energy: float32(ctx.Float64("energy")),
		Seed:   ctx.Int64("seed"),
	})
	if err != nil {
		return err
	}

	renderEngine, err := renderer.ParseEngine(ctx.String("engine"))
	if err != nil {
		return err
	}
	var labels []renderer.Label
	for _, name := range ctx.StringSlice("label") {
		label, err := renderer.ParseLabel(name)
		if err != nil {
			return err
		}
		labels = append(labels, label)
	}
	r, err := renderer.New(renderer.Settings{
		ResolutionX: ctx.Int("width"),
		ResolutionY: ctx.Int("height"),
		Engine:      renderEngine,
		Labels:      labels,
		UseShadow:   ctx.Bool("shadow"),
	})
	if err != nil {
		return err
	}

	policy, err := asset.ParsePolicy(ctx.String("policy"))
	if err != nil {
		return err
	}
	backgrounds, err := asset.NewBackgroundLibrary(asset.Config{
		Dir:        ctx.String("backgrounds"),
		Policy:     policy,
		Seed:       ctx.Int64("seed"),
		AllowEmpty: ctx.Bool("no-background"),
	})
	if err != nil {
		return err
	}
	models, err := asset.NewModelLibrary(asset.Config{
		Dir:    ctx.String("models"),
		Policy: policy,
		Seed:   ctx.Int64("seed"),
	})
	if err != nil {
		return err
	}

	sceneHost, err := blender.New(blender.Config{
		Path: ctx.String("blender"),
	})
	if err != nil {
		return err
	}

	eng, err := engine.New(engine.Config{
		Camera:      camera,
		Lighting:    lighting,
		Renderer:    r,
		Backgrounds: backgrounds,
		Models:      models,
		Host:        sceneHost,
		RenderDir:   ctx.String("out"),
	})
	if err != nil {
		return err
	}

	session, err := eng.Render(ctx.Int("count"))
	if err != nil {
		return err
	}

	displaySessionStats(session)

	return nil
}

func displaySessionStats(session *engine.Session) {
	var buf bytes.Buffer
	session.WriteStats(&buf)
	logger.Noticef("session statistics (%d images, %d label files)\n%s",
		len(session.Images), len(session.LabelFiles), buf.String())
}
