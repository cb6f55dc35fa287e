// Package blender implements host.SceneHost by driving a headless Blender
// process. Scene state accumulated through the SceneHost calls is marshalled
// into CLI flags for an embedded Python worker script which rebuilds the
// scene inside Blender, renders it and reports results back through a
// sidecar metadata file.
package blender

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/johnsutor/leopardi/host"
	"github.com/johnsutor/leopardi/log"
	"github.com/johnsutor/leopardi/scene"
)

//go:embed worker.py
var workerScript []byte

var logger = log.New("blender")

var (
	ErrExecutableNotFound = errors.New("blender: could not locate the blender executable")
	ErrNoRenderResult     = errors.New("blender: no completed render to read back from")
)

// Host construction options.
type Config struct {
	// Path to the blender executable or to the directory containing it.
	// When empty the executable is searched on PATH and in the
	// conventional per-OS install locations.
	Path string

	// Scratch directory for the worker script and sidecar files
	// (default: a fresh directory under the system temp dir).
	WorkDir string
}

// A Host drives one Blender process per rendered frame.
type Host struct {
	exe     string
	workDir string
	script  string

	job        job
	lastDepth  string
	lastBounds host.Box2D
	haveResult bool
}

// Scene state accumulated between Reset and RenderFrame.
type job struct {
	modelPath  string
	pose       scene.Pose
	intrinsics scene.CameraIntrinsics
	rig        scene.Rig
	spec       host.RenderSpec
}

// Create a Blender-backed scene host. Fails when no Blender executable can
// be located or the scratch directory cannot be prepared.
func New(cfg Config) (*Host, error) {
	exe, err := locateExecutable(cfg.Path)
	if err != nil {
		return nil, err
	}

	workDir := cfg.WorkDir
	if workDir == "" {
		workDir, err = os.MkdirTemp("", "leopardi-blender-")
		if err != nil {
			return nil, fmt.Errorf("blender: could not create scratch directory: %s", err.Error())
		}
	}

	script := filepath.Join(workDir, "worker.py")
	if err = os.WriteFile(script, workerScript, 0644); err != nil {
		return nil, fmt.Errorf("blender: could not write worker script: %s", err.Error())
	}

	logger.Infof("using blender executable %s", exe)

	return &Host{
		exe:     exe,
		workDir: workDir,
		script:  script,
	}, nil
}

// Locate the blender executable: explicit override first, then PATH, then
// the conventional install roots for the current OS (picking the newest
// install when several are present).
func locateExecutable(override string) (string, error) {
	if override != "" {
		info, err := os.Stat(override)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, err.Error())
		}
		if info.IsDir() {
			return locateInDir(override)
		}
		return override, nil
	}

	if exe, err := exec.LookPath(exeName()); err == nil {
		return exe, nil
	}

	for _, root := range installRoots() {
		// Some roots hold the executable directly, others one directory
		// per installed version.
		if exe, err := locateInDir(root); err == nil {
			return exe, nil
		}
		versions, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(versions))
		for _, v := range versions {
			if v.IsDir() {
				names = append(names, v.Name())
			}
		}
		sort.Strings(names)
		for i := len(names) - 1; i >= 0; i-- {
			if exe, err := locateInDir(filepath.Join(root, names[i])); err == nil {
				return exe, nil
			}
		}
	}

	return "", ErrExecutableNotFound
}

func locateInDir(dir string) (string, error) {
	exe := filepath.Join(dir, exeName())
	if _, err := os.Stat(exe); err != nil {
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, err.Error())
	}
	return exe, nil
}

func exeName() string {
	if runtime.GOOS == "windows" {
		return "blender.exe"
	}
	return "blender"
}

func installRoots() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files\Blender Foundation`,
			filepath.Join(home, `AppData\Roaming\Blender Foundation`),
		}
	case "darwin":
		return []string{
			"/Applications/Blender.app/Contents/MacOS",
		}
	default:
		return []string{
			"/opt/blender",
			"/usr/local/blender",
		}
	}
}

// Discard accumulated scene state. The worker always starts Blender from an
// empty factory scene, so nothing leaks between iterations on the host side
// either.
func (h *Host) Reset() error {
	h.job = job{}
	h.lastDepth = ""
	h.lastBounds = host.Box2D{}
	h.haveResult = false
	return nil
}

// Record the model file to import as the render subject.
func (h *Host) ImportModel(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("blender: could not import model '%s': %s", path, err.Error())
	}
	h.job.modelPath = path
	return nil
}

// Record the camera pose and lens parameters.
func (h *Host) SetCamera(pose scene.Pose, intrinsics scene.CameraIntrinsics) error {
	h.job.pose = pose
	h.job.intrinsics = intrinsics
	return nil
}

// Record the light rig.
func (h *Host) SetLight(rig scene.Rig) error {
	h.job.rig = rig
	return nil
}

// Record the renderer settings.
func (h *Host) Configure(spec host.RenderSpec) error {
	h.job.spec = spec
	return nil
}

// Sidecar metadata written by the worker script after a completed render.
type workerMeta struct {
	DepthPath string `json:"depth_path"`
	Bounds    struct {
		MinX float32 `json:"min_x"`
		MinY float32 `json:"min_y"`
		MaxX float32 `json:"max_x"`
		MaxY float32 `json:"max_y"`
	} `json:"bounds"`
}

// Execute a headless Blender run that rebuilds the accumulated scene and
// renders it to imagePath. Blocks until the frame, the depth pass (when
// requested) and the bounds sidecar are on disk.
func (h *Host) RenderFrame(imagePath string) error {
	if h.job.modelPath == "" {
		return errors.New("blender: no model imported into the scene")
	}

	metaPath := filepath.Join(h.workDir, filepath.Base(imagePath)+".meta.json")
	args := marshalArgs(h.job, h.script, imagePath, metaPath)

	logger.Debugf("exec %s %v", h.exe, args)
	out, err := exec.Command(h.exe, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("blender: render failed: %s\n%s", err.Error(), out)
	}

	payload, err := os.ReadFile(metaPath)
	if err != nil {
		return fmt.Errorf("blender: worker did not produce render metadata: %s", err.Error())
	}
	var meta workerMeta
	if err = json.Unmarshal(payload, &meta); err != nil {
		return fmt.Errorf("blender: could not parse render metadata: %s", err.Error())
	}

	h.lastDepth = meta.DepthPath
	h.lastBounds = host.Box2D{
		MinX: meta.Bounds.MinX,
		MinY: meta.Bounds.MinY,
		MaxX: meta.Bounds.MaxX,
		MaxY: meta.Bounds.MaxY,
	}
	h.haveResult = true

	return nil
}

// Path of the depth pass written by the last render.
func (h *Host) DepthPath() (string, error) {
	if !h.haveResult || h.lastDepth == "" {
		return "", ErrNoRenderResult
	}
	return h.lastDepth, nil
}

// Subject bounds reported by the last render.
func (h *Host) Bounds() (host.Box2D, error) {
	if !h.haveResult {
		return host.Box2D{}, ErrNoRenderResult
	}
	return h.lastBounds, nil
}
