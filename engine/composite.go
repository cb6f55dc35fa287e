package engine

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/johnsutor/leopardi/asset"
)

// Composite a background behind a transparent render, in place. The
// background is decoded (local path or URL), scaled to the frame size and
// the render is drawn over it; the result replaces the render file.
func compositeBackground(imagePath, backgroundPath string) error {
	res, err := asset.OpenResource(backgroundPath)
	if err != nil {
		return fmt.Errorf("engine: could not open background '%s': %s", backgroundPath, err.Error())
	}
	defer res.Close()

	background, _, err := image.Decode(res)
	if err != nil {
		return fmt.Errorf("engine: could not decode background '%s': %s", backgroundPath, err.Error())
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("engine: could not open render '%s': %s", imagePath, err.Error())
	}
	render, err := png.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("engine: could not decode render '%s': %s", imagePath, err.Error())
	}

	frame := render.Bounds()
	composed := image.NewRGBA(frame)
	draw.BiLinear.Scale(composed, frame, background, background.Bounds(), draw.Src, nil)
	draw.Draw(composed, frame, render, frame.Min, draw.Over)

	out, err := os.Create(imagePath)
	if err != nil {
		return fmt.Errorf("engine: could not write composite '%s': %s", imagePath, err.Error())
	}
	defer out.Close()

	if err = png.Encode(out, composed); err != nil {
		return fmt.Errorf("engine: could not encode composite '%s': %s", imagePath, err.Error())
	}

	return nil
}
