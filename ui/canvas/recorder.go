package canvas

import (
	"image"
	"image/color"
	"sync"
)

// OpKind names a recorded drawing operation.
type OpKind int

const (
	OpFillRect OpKind = iota + 1
	OpFillCircle
	OpDrawImage
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpFillCircle:
		return "fill-circle"
	case OpDrawImage:
		return "draw-image"
	default:
		return "unknown"
	}
}

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind    OpKind
	Rect    image.Rectangle // FillRect and DrawImage destination
	Center  image.Point     // FillCircle, truncated to whole pixels
	Radius  float64
	Color   color.NRGBA
	Image   image.Image
	Opacity float64
}

// Recorder is an in-memory surface that keeps every call instead of
// rasterizing. It is used to assert on what a render pass painted.
type Recorder struct {
	mu     sync.Mutex
	width  int
	height int
	ops    []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) FillRect(rect image.Rectangle, c color.NRGBA) {
	r.record(Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	r.record(Op{Kind: OpFillCircle, Center: image.Pt(int(cx), int(cy)), Radius: radius, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, dst image.Rectangle, opacity float64) {
	r.record(Op{Kind: OpDrawImage, Rect: dst, Image: img, Opacity: opacity})
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// Ops returns a copy of the recorded operations.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// OpsOf returns recorded operations of one kind.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets all recorded operations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = r.ops[:0]
	r.mu.Unlock()
}
