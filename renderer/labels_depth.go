package renderer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/johnsutor/leopardi/host"
)

// Place the host's depth pass next to the image as <stem>_depth.png. The
// host produces the pass as a 16-bit grayscale PNG; this only moves it into
// the naming scheme, it never re-encodes.
func (r *Renderer) writeDepth(sceneHost host.SceneHost, dir, stem string) (string, error) {
	src, err := sceneHost.DepthPath()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoDepth, err.Error())
	}

	path := filepath.Join(dir, stem+"_depth.png")
	if src == path {
		return path, nil
	}

	// Rename when possible; fall back to a copy across filesystems.
	if err = os.Rename(src, path); err != nil {
		if err = copyFile(src, path); err != nil {
			return "", fmt.Errorf("renderer: could not place depth pass: %s", err.Error())
		}
	}

	return path, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
