package renderer

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnsutor/leopardi/host"
)

type pascalSize struct {
	Width  int `xml:"width"`
	Height int `xml:"height"`
	Depth  int `xml:"depth"`
}

type pascalBox struct {
	XMin int `xml:"xmin"`
	YMin int `xml:"ymin"`
	XMax int `xml:"xmax"`
	YMax int `xml:"ymax"`
}

type pascalObject struct {
	Name      string    `xml:"name"`
	Pose      string    `xml:"pose"`
	Truncated int       `xml:"truncated"`
	Difficult int       `xml:"difficult"`
	Box       pascalBox `xml:"bndbox"`
}

type pascalAnnotation struct {
	XMLName  xml.Name       `xml:"annotation"`
	Folder   string         `xml:"folder"`
	Filename string         `xml:"filename"`
	Size     pascalSize     `xml:"size"`
	Objects  []pascalObject `xml:"object"`
}

// Write a Pascal VOC XML annotation with pixel-space corner coordinates and
// a top-left origin.
func (r *Renderer) writePascal(dir, stem string, subject Subject, bounds host.Box2D) (string, error) {
	frameW := float32(r.settings.ResolutionX)
	frameH := float32(r.settings.ResolutionY)

	doc := pascalAnnotation{
		Folder:   filepath.Base(dir),
		Filename: stem + ".png",
		Size: pascalSize{
			Width:  r.settings.ResolutionX,
			Height: r.settings.ResolutionY,
			Depth:  3,
		},
		Objects: []pascalObject{{
			Name: subject.Class,
			Pose: "Unspecified",
			Box: pascalBox{
				XMin: int(bounds.MinX * frameW),
				YMin: int((1.0 - bounds.MaxY) * frameH),
				XMax: int(bounds.MaxX * frameW),
				YMax: int((1.0 - bounds.MinY) * frameH),
			},
		}},
	}

	payload, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("renderer: could not encode pascal annotation: %s", err.Error())
	}

	path := filepath.Join(dir, stem+".xml")
	if err = os.WriteFile(path, payload, 0644); err != nil {
		return "", fmt.Errorf("renderer: could not write pascal annotation: %s", err.Error())
	}

	return path, nil
}
