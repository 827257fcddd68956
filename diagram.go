package main

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// Arrow is a vector drawn from the origin to Tip.
type Arrow struct {
	Label string
	Color color.RGBA
	Tip   mgl64.Vec2
}

// Diagram is the plot model for one pair of components, independent of
// pixels.
type Diagram struct {
	HalfExtent float64
	Arrows     []Arrow
}

func NewDiagram(h, v float64) Diagram {
	extent := math.Max(math.Max(math.Abs(h), math.Abs(v)), 1)
	return Diagram{
		HalfExtent: extent,
		Arrows: []Arrow{
			{Label: "resultant", Color: colorRed, Tip: mgl64.Vec2{h, v}},
			{Label: "horizontal", Color: colorBlue, Tip: mgl64.Vec2{h, 0}},
			{Label: "vertical", Color: colorGreen, Tip: mgl64.Vec2{0, v}},
		},
	}
}

// Bounds returns the view limits, which are square and centered on the
// origin.
func (d Diagram) Bounds() (xmin, xmax, ymin, ymax float64) {
	return -d.HalfExtent, d.HalfExtent, -d.HalfExtent, d.HalfExtent
}

// Ticks returns the grid positions inside the view.
func (d Diagram) Ticks() []float64 {
	step := niceStep(2 * d.HalfExtent / 8)
	var ticks []float64
	for i := math.Ceil(-d.HalfExtent / step); i*step <= d.HalfExtent*(1+1e-9); i++ {
		t := i * step
		if math.Abs(t) < step*1e-9 {
			t = 0
		}
		ticks = append(ticks, t)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// Renderer rasterizes diagrams at a fixed size. It is not safe for
// concurrent use.
type Renderer struct {
	size      int
	labelFace font.Face
	titleFace font.Face
	live      int
}

func NewRenderer(size int) (*Renderer, error) {
	if size < minDiagramSize || size > maxDiagramSize {
		return nil, errors.Errorf("diagram size %d out of range [%d, %d]", size, minDiagramSize, maxDiagramSize)
	}
	labelFace, err := loadFace(float64(size) / 50)
	if err != nil {
		return nil, err
	}
	titleFace, err := loadFace(float64(size) / 40)
	if err != nil {
		return nil, err
	}
	return &Renderer{size: size, labelFace: labelFace, titleFace: titleFace}, nil
}

func (r *Renderer) Size() int {
	return r.size
}

// Live is the number of drawing surfaces currently held. It is zero
// whenever no Render call is in progress.
func (r *Renderer) Live() int {
	return r.live
}

func (r *Renderer) Render(h, v float64) (*image.RGBA, error) {
	return r.RenderDiagram(NewDiagram(h, v))
}

func (r *Renderer) RenderDiagram(d Diagram) (img *image.RGBA, err error) {
	dc := r.acquire()
	defer r.release(&dc)
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, errors.Errorf("diagram render failed: %v", p)
		}
	}()

	dc.SetColor(colorWhite)
	dc.Clear()
	r.drawGrid(dc, d)
	for _, a := range d.Arrows {
		r.drawArrow(dc, d, a)
	}
	r.drawLabels(dc)

	src := dc.Image()
	out := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out, nil
}

func (r *Renderer) acquire() *gg.Context {
	r.live++
	return gg.NewContext(r.size, r.size)
}

func (r *Renderer) release(dc **gg.Context) {
	*dc = nil
	r.live--
}

// plot area, square, in pixels
func (r *Renderer) plotArea() (left, top, side float64) {
	s := float64(r.size)
	left = math.Round(s * 0.13)
	top = math.Round(s * 0.08)
	side = s - left - math.Round(s*0.05)
	return left, top, side
}

func (r *Renderer) project(d Diagram, p mgl64.Vec2) (float64, float64) {
	left, top, side := r.plotArea()
	e := d.HalfExtent
	x := left + (p.X()+e)/(2*e)*side
	y := top + (e-p.Y())/(2*e)*side
	return x, y
}

func (r *Renderer) drawGrid(dc *gg.Context, d Diagram) {
	left, top, side := r.plotArea()
	dc.SetFontFace(r.labelFace)

	dc.SetLineWidth(1)
	for _, t := range d.Ticks() {
		x, _ := r.project(d, mgl64.Vec2{t, 0})
		_, y := r.project(d, mgl64.Vec2{0, t})

		dc.SetColor(colorGrid)
		dc.DrawLine(x, top, x, top+side)
		dc.Stroke()
		dc.DrawLine(left, y, left+side, y)
		dc.Stroke()

		label := strconv.FormatFloat(t, 'g', 4, 64)
		dc.SetColor(colorBlack)
		dc.DrawStringAnchored(label, x, top+side+6, 0.5, 1)
		dc.DrawStringAnchored(label, left-6, y, 1, 0.35)
	}

	dc.SetColor(colorBlack)
	dc.DrawRectangle(left, top, side, side)
	dc.Stroke()
}

func (r *Renderer) drawArrow(dc *gg.Context, d Diagram, a Arrow) {
	fx, fy := r.project(d, mgl64.Vec2{0, 0})
	tx, ty := r.project(d, a.Tip)
	dx, dy := tx-fx, ty-fy
	length := math.Hypot(dx, dy)
	if length < 0.5 {
		return
	}
	dx /= length
	dy /= length

	_, _, side := r.plotArea()
	headLen := math.Min(side*0.04, length*0.5)
	headHalf := headLen * 0.5
	baseX := tx - headLen*dx
	baseY := ty - headLen*dy

	dc.SetColor(a.Color)
	dc.SetLineWidth(3)
	dc.DrawLine(fx, fy, baseX, baseY)
	dc.Stroke()

	dc.MoveTo(tx, ty)
	dc.LineTo(baseX+headHalf*dy, baseY-headHalf*dx)
	dc.LineTo(baseX-headHalf*dy, baseY+headHalf*dx)
	dc.ClosePath()
	dc.Fill()
}

func (r *Renderer) drawLabels(dc *gg.Context) {
	left, top, side := r.plotArea()
	s := float64(r.size)

	dc.SetColor(colorBlack)
	dc.SetFontFace(r.titleFace)
	dc.DrawStringAnchored(diagramTitle, left+side/2, top/2, 0.5, 0.5)

	dc.SetFontFace(r.labelFace)
	dc.DrawStringAnchored(horizontalAxisLabel, left+side/2, s-(s-top-side)/3, 0.5, 0.5)

	cx, cy := left/4, top+side/2
	dc.Push()
	dc.RotateAbout(-math.Pi/2, cx, cy)
	dc.DrawStringAnchored(verticalAxisLabel, cx, cy, 0.5, 0.5)
	dc.Pop()
}
