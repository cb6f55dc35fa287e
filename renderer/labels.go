package renderer

import (
	"fmt"
	"strings"
)

// The label kinds that can be produced alongside each rendered frame.
type Label uint8

const (
	// Normalized bounding box text file, one object per line.
	LabelYOLO Label = iota

	// COCO-style JSON document with pixel-space boxes.
	LabelCOCO

	// Pascal VOC XML annotation.
	LabelPascal

	// 16-bit grayscale depth pass.
	LabelDepth
)

func (l Label) String() string {
	switch l {
	case LabelYOLO:
		return "YOLO"
	case LabelCOCO:
		return "COCO"
	case LabelPascal:
		return "PASCAL"
	case LabelDepth:
		return "DEPTH"
	}
	return "UNKNOWN"
}

// The full label vocabulary.
func Labels() []Label {
	return []Label{LabelYOLO, LabelCOCO, LabelPascal, LabelDepth}
}

// Parse a label kind name. Matching is case-insensitive and ignores
// surrounding whitespace; anything outside the vocabulary is an error.
func ParseLabel(name string) (Label, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "YOLO":
		return LabelYOLO, nil
	case "COCO":
		return LabelCOCO, nil
	case "PASCAL":
		return LabelPascal, nil
	case "DEPTH":
		return LabelDepth, nil
	}
	return 0, fmt.Errorf("renderer: unsupported label kind '%s'", name)
}

// The render engines exposed by the host.
type Engine uint8

const (
	EngineEevee Engine = iota
	EngineCycles
)

func (e Engine) String() string {
	switch e {
	case EngineEevee:
		return "BLENDER_EEVEE"
	case EngineCycles:
		return "CYCLES"
	}
	return "UNKNOWN"
}

// Parse a render engine name. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BLENDER_EEVEE", "EEVEE":
		return EngineEevee, nil
	case "CYCLES":
		return EngineCycles, nil
	}
	return 0, fmt.Errorf("renderer: unsupported render engine '%s'", name)
}
