package renderer

import (
	"fmt"

	"github.com/johnsutor/leopardi/host"
)

// Renderer construction options. The zero value for any field selects the
// documented default.
type Settings struct {
	// Output frame dims (default 1024x1024).
	ResolutionX int
	ResolutionY int

	// Host render engine (default EngineEevee).
	Engine Engine

	// Label kinds to produce alongside each frame. Empty means only the
	// base color image is written.
	Labels []Label

	// Render the subject's cast shadow.
	UseShadow bool
}

// The renderer applies output settings to the host and collects the
// requested labels after each completed render.
type Renderer struct {
	settings Settings
	want     map[Label]bool
}

// Create a renderer, applying defaults and validating the settings. Unknown
// or duplicate label kinds fail fast.
func New(settings Settings) (*Renderer, error) {
	if settings.ResolutionX == 0 {
		settings.ResolutionX = 1024
	}
	if settings.ResolutionY == 0 {
		settings.ResolutionY = 1024
	}

	if settings.ResolutionX < 1 || settings.ResolutionY < 1 {
		return nil, fmt.Errorf("renderer: resolution must be positive; got %dx%d", settings.ResolutionX, settings.ResolutionY)
	}
	if settings.Engine > EngineCycles {
		return nil, fmt.Errorf("renderer: unsupported render engine %d", settings.Engine)
	}

	want := make(map[Label]bool, len(settings.Labels))
	for _, label := range settings.Labels {
		if label > LabelDepth {
			return nil, fmt.Errorf("renderer: unsupported label kind %d", label)
		}
		if want[label] {
			return nil, fmt.Errorf("renderer: duplicate label kind %s", label)
		}
		want[label] = true
	}

	return &Renderer{
		settings: settings,
		want:     want,
	}, nil
}

// Get a copy of the validated settings.
func (r *Renderer) Settings() Settings {
	return r.settings
}

// Returns true if the given label kind was requested.
func (r *Renderer) Wants(label Label) bool {
	return r.want[label]
}

// Apply output settings to the host scene. Film transparency is always
// enabled so backgrounds can be composited behind the frame.
func (r *Renderer) Apply(sceneHost host.SceneHost) error {
	return sceneHost.Configure(host.RenderSpec{
		ResolutionX:     r.settings.ResolutionX,
		ResolutionY:     r.settings.ResolutionY,
		Engine:          r.settings.Engine.String(),
		UseShadow:       r.settings.UseShadow,
		FilmTransparent: true,
		WantDepth:       r.want[LabelDepth],
	})
}

// The rendered subject, as the label writers need to describe it.
type Subject struct {
	// Class name (model file stem).
	Class string

	// Index of the class in the session class list.
	ClassIndex int
}

// Collect the requested labels for a completed render, writing one file per
// requested kind next to the image. All label files share the image's stem.
// Returns the written paths.
func (r *Renderer) CollectLabels(sceneHost host.SceneHost, dir, stem string, subject Subject) ([]string, error) {
	if len(r.want) == 0 {
		return nil, nil
	}

	var bounds host.Box2D
	if r.want[LabelYOLO] || r.want[LabelCOCO] || r.want[LabelPascal] {
		var err error
		bounds, err = sceneHost.Bounds()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoBounds, err.Error())
		}
	}

	written := make([]string, 0, len(r.want))
	for _, label := range r.settings.Labels {
		var (
			path string
			err  error
		)
		switch label {
		case LabelYOLO:
			path, err = r.writeYOLO(dir, stem, subject, bounds)
		case LabelCOCO:
			path, err = r.writeCOCO(dir, stem, subject, bounds)
		case LabelPascal:
			path, err = r.writePascal(dir, stem, subject, bounds)
		case LabelDepth:
			path, err = r.writeDepth(sceneHost, dir, stem)
		}
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}
