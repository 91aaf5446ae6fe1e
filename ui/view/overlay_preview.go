package view

import (
	"image"

	"github.com/soocke/viewfinder-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OverlayPreview shows the composed preview frame with the viewfinder overlay.
type OverlayPreview interface {
	UpdateOverlay(img image.Image)
	Reset()
}

type overlayPreview struct {
	label     *LabelWidget
	maxW      int
	maxH      int
	prevPhoto *Img // disposed before each replacement
}

// NewOverlayPreview creates the preview label and grids it at row, spanning
// the given number of columns. The label never grows past maxW x maxH.
func NewOverlayPreview(row, columns, maxW, maxH int) OverlayPreview {
	if maxW < 50 {
		maxW = 50
	}
	if maxH < 50 {
		maxH = 50
	}
	photo := NewPhoto(Data(placeholderPNG(maxW, maxH)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(columns), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &overlayPreview{label: label, maxW: maxW, maxH: maxH, prevPhoto: photo}
}

func placeholderPNG(w, h int) []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func (v *overlayPreview) UpdateOverlay(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, v.maxW, v.maxH)
	v.replace(images.EncodePNG(scaled))
}

func (v *overlayPreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.replace(placeholderPNG(v.maxW, v.maxH))
}

func (v *overlayPreview) replace(pngBytes []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}
