package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnsutor/leopardi/host"
)

// Write a YOLO annotation: one "<class> <cx> <cy> <w> <h>" line per object,
// all values normalized to [0, 1]. Host bounds are bottom-left origin while
// YOLO measures from the top of the frame, so the y center is flipped.
func (r *Renderer) writeYOLO(dir, stem string, subject Subject, bounds host.Box2D) (string, error) {
	cx := (bounds.MinX + bounds.MaxX) / 2.0
	cy := 1.0 - (bounds.MinY+bounds.MaxY)/2.0
	w := bounds.MaxX - bounds.MinX
	h := bounds.MaxY - bounds.MinY

	path := filepath.Join(dir, stem+".txt")
	line := fmt.Sprintf("%d %.6f %.6f %.6f %.6f\n", subject.ClassIndex, cx, cy, w, h)
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		return "", fmt.Errorf("renderer: could not write yolo annotation: %s", err.Error())
	}

	return path, nil
}

// Write the session-level YOLO class list: one class name per line, line
// number matching the class index used in the annotations.
func WriteClassList(dir string, classes []string) (string, error) {
	path := filepath.Join(dir, "classes.txt")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("renderer: could not write class list: %s", err.Error())
	}
	defer f.Close()

	for _, class := range classes {
		if _, err = fmt.Fprintln(f, class); err != nil {
			return "", fmt.Errorf("renderer: could not write class list: %s", err.Error())
		}
	}

	return path, nil
}
