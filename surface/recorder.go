package surface

import "image"

// OpKind identifies a recorded draw primitive.
type OpKind uint8

const (
	OpRoundRect OpKind = iota + 1
	OpImage
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpRoundRect:
		return "roundrect"
	case OpImage:
		return "image"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one recorded draw call.
type Op struct {
	Kind OpKind

	Rect   image.Rectangle // OpRoundRect
	Radius int
	Style  Style

	Image image.Image // OpImage
	At    image.Point // OpImage, OpText

	Text      string // OpText
	TextStyle TextStyle
}

// Bounds returns the pixels the op may touch. Text bounds span one line
// advance above the baseline.
func (op Op) Bounds() image.Rectangle {
	switch op.Kind {
	case OpRoundRect:
		return op.Rect.Canon()
	case OpImage:
		if op.Image == nil {
			return image.Rectangle{}
		}
		return image.Rectangle{Min: op.At, Max: op.At.Add(op.Image.Bounds().Size())}
	case OpText:
		h := 0
		if op.TextStyle.Font != nil {
			h = int(op.TextStyle.Font.GetYAdvance())
		}
		w := TextWidth(op.TextStyle.Font, op.Text)
		return image.Rect(op.At.X, op.At.Y-h, op.At.X+w, op.At.Y)
	}
	return image.Rectangle{}
}

// Recorder is a Surface that records draw calls instead of rasterizing them.
type Recorder struct {
	W, H int
	Ops  []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (w, h int) { return r.W, r.H }

func (r *Recorder) RoundRect(rect image.Rectangle, radius int, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpRoundRect, Rect: rect, Radius: radius, Style: st})
}

func (r *Recorder) Image(img image.Image, at image.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Image: img, At: at})
}

func (r *Recorder) Text(s string, at image.Point, ts TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, At: at, TextStyle: ts})
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Texts returns the recorded text runs in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Touching returns the ops whose bounds intersect rect.
func (r *Recorder) Touching(rect image.Rectangle) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Bounds().Overlaps(rect) {
			out = append(out, op)
		}
	}
	return out
}
