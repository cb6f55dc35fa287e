// Package host defines the capability seam between the orchestration layer
// and the external 3D application that owns all scene-graph and rendering
// logic. The orchestrating engine only ever talks to a SceneHost; the one
// concrete implementation drives Blender (see host/blender).
package host

import (
	"github.com/johnsutor/leopardi/scene"
)

// Normalized 2D bounds of the rendered subject in camera view space, with
// the origin at the bottom-left of the frame. Reported by the host after a
// completed render; label writers convert to their own conventions.
type Box2D struct {
	MinX float32
	MinY float32
	MaxX float32
	MaxY float32
}

// Renderer settings applied to the host before triggering a render.
type RenderSpec struct {
	ResolutionX int
	ResolutionY int

	// Host render engine identifier (e.g. "CYCLES").
	Engine string

	// Render the subject's cast shadow.
	UseShadow bool

	// Render with a transparent film so a background can be composited
	// behind the frame afterwards.
	FilmTransparent bool

	// Produce a depth pass alongside the frame.
	WantDepth bool
}

// The SceneHost interface wraps the scripting surface of the external 3D
// application. Calls within one render iteration follow a fixed order:
// Reset, ImportModel, SetCamera, SetLight, Configure, RenderFrame; the
// read-back methods (DepthPath, Bounds) are only valid after RenderFrame
// returns. The host scene is not safe for concurrent mutation and a
// SceneHost is owned by a single engine for the duration of a render call.
type SceneHost interface {
	// Discard all scene state, leaving an empty scene. Invoked at the top
	// of every iteration so scene object count does not grow across
	// iterations.
	Reset() error

	// Import a model file as the render subject.
	ImportModel(path string) error

	// Create and position the scene camera.
	SetCamera(pose scene.Pose, intrinsics scene.CameraIntrinsics) error

	// Create and position the light rig.
	SetLight(rig scene.Rig) error

	// Apply renderer settings.
	Configure(spec RenderSpec) error

	// Render the frame synchronously, writing the image to imagePath.
	// Returns once the image and any requested buffers are on disk.
	RenderFrame(imagePath string) error

	// Path of the depth pass written beside the last rendered frame.
	DepthPath() (string, error)

	// Camera-space bounds of the subject in the last rendered frame.
	Bounds() (Box2D, error)
}
