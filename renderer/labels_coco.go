package renderer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnsutor/leopardi/host"
)

type cocoImage struct {
	Id       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type cocoAnnotation struct {
	Id         int        `json:"id"`
	ImageId    int        `json:"image_id"`
	CategoryId int        `json:"category_id"`
	Bbox       [4]float32 `json:"bbox"`
	Area       float32    `json:"area"`
	IsCrowd    int        `json:"iscrowd"`
}

type cocoCategory struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type cocoDocument struct {
	Images      []cocoImage      `json:"images"`
	Annotations []cocoAnnotation `json:"annotations"`
	Categories  []cocoCategory   `json:"categories"`
}

// Write a COCO-style JSON annotation for a single image. Boxes use absolute
// pixel [x, y, w, h] with a top-left origin; category ids are the session
// class indices offset by one (COCO ids start at 1).
func (r *Renderer) writeCOCO(dir, stem string, subject Subject, bounds host.Box2D) (string, error) {
	frameW := float32(r.settings.ResolutionX)
	frameH := float32(r.settings.ResolutionY)

	w := (bounds.MaxX - bounds.MinX) * frameW
	h := (bounds.MaxY - bounds.MinY) * frameH
	x := bounds.MinX * frameW
	y := (1.0 - bounds.MaxY) * frameH

	doc := cocoDocument{
		Images: []cocoImage{{
			Id:       1,
			FileName: stem + ".png",
			Width:    r.settings.ResolutionX,
			Height:   r.settings.ResolutionY,
		}},
		Annotations: []cocoAnnotation{{
			Id:         1,
			ImageId:    1,
			CategoryId: subject.ClassIndex + 1,
			Bbox:       [4]float32{x, y, w, h},
			Area:       w * h,
		}},
		Categories: []cocoCategory{{
			Id:   subject.ClassIndex + 1,
			Name: subject.Class,
		}},
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("renderer: could not encode coco annotation: %s", err.Error())
	}

	path := filepath.Join(dir, stem+".json")
	if err = os.WriteFile(path, payload, 0644); err != nil {
		return "", fmt.Errorf("renderer: could not write coco annotation: %s", err.Error())
	}

	return path, nil
}
