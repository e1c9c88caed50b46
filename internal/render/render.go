// Package render draws the coverage map: the floor outline, the
// translucent coverage disks and numbered placement markers.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/geometry"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Output and supersampling sizes in pixels.
const (
	targetWidth = 800
	supersample = 2
)

var (
	floorFill   = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	floorEdge   = color.NRGBA{A: 0xff}
	coverageInk = color.NRGBA{B: 0xff, A: 0x28}
	markerInk   = color.NRGBA{R: 0xd0, A: 0xff}
	labelInk    = color.NRGBA{A: 0xff}
)

// projection maps world coordinates onto image pixels (y axis flipped).
type projection struct {
	minX, maxY float64
	scale      float64
}

func (pr projection) toPixel(p geometry.Point) (float64, float64) {
	return (p.X - pr.minX) * pr.scale, (pr.maxY - p.Y) * pr.scale
}

// Map renders the coverage map for one placement layout and returns it
// webp-encoded. The drawing happens at a supersampled resolution and is
// scaled down with CatmullRom for clean edges.
func Map(floor geometry.Polygon, points []geometry.Point, effectiveRadius float64) ([]byte, error) {
	if err := floor.Validate(); err != nil {
		return nil, err
	}

	minX, minY, maxX, maxY := floor.Bounds()
	margin := effectiveRadius * 1.2
	minX, minY = minX-margin, minY-margin
	maxX, maxY = maxX+margin, maxY+margin

	width := maxX - minX
	height := maxY - minY
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("degenerate drawing extent %vx%v", width, height)
	}

	bigWidth := targetWidth * supersample
	scale := float64(bigWidth) / width
	bigHeight := int(math.Ceil(height * scale))
	pr := projection{minX: minX, maxY: maxY, scale: scale}

	img := image.NewRGBA(image.Rect(0, 0, bigWidth, bigHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	fillFloor(img, floor, pr)
	for _, p := range points {
		drawDisk(img, p, effectiveRadius, pr)
	}
	outlineFloor(img, floor, pr)
	for _, p := range points {
		drawMarker(img, p, pr)
	}

	final := image.NewRGBA(image.Rect(0, 0, targetWidth, bigHeight/supersample))
	xdraw.CatmullRom.Scale(final, final.Bounds(), img, img.Bounds(), draw.Over, nil)

	// Labels go on after the downscale so the glyphs stay crisp.
	finalPr := projection{minX: minX, maxY: maxY, scale: scale / supersample}
	for i, p := range points {
		drawLabel(final, p, finalPr, fmt.Sprintf("%d", i+1))
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, final, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fillFloor paints the polygon interior by horizontal spans.
func fillFloor(img *image.RGBA, floor geometry.Polygon, pr projection) {
	bounds := img.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		worldY := pr.maxY - (float64(py)+0.5)/pr.scale
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			worldX := pr.minX + (float64(px)+0.5)/pr.scale
			if floor.Contains(geometry.Point{X: worldX, Y: worldY}) {
				img.SetRGBA(px, py, rgba(floorFill))
			}
		}
	}
}

// outlineFloor strokes the polygon edges.
func outlineFloor(img *image.RGBA, floor geometry.Polygon, pr projection) {
	n := len(floor)
	for i := 0; i < n; i++ {
		a, b := floor[i], floor[(i+1)%n]
		drawLine(img, a, b, pr)
	}
}

func drawLine(img *image.RGBA, a, b geometry.Point, pr projection) {
	ax, ay := pr.toPixel(a)
	bx, by := pr.toPixel(b)
	steps := int(math.Hypot(bx-ax, by-ay)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(ax + (bx-ax)*t)
		y := int(ay + (by-ay)*t)
		setThick(img, x, y, rgba(floorEdge))
	}
}

func setThick(img *image.RGBA, x, y int, c color.RGBA) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (image.Point{X: x + dx, Y: y + dy}).In(img.Bounds()) {
				img.SetRGBA(x+dx, y+dy, c)
			}
		}
	}
}

// circleMask is an alpha mask for one coverage disk.
type circleMask struct {
	cx, cy, r float64
	bounds    image.Rectangle
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }
func (m *circleMask) Bounds() image.Rectangle { return m.bounds }

func (m *circleMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// drawDisk blends one translucent coverage disk over the image.
func drawDisk(img *image.RGBA, center geometry.Point, radius float64, pr projection) {
	cx, cy := pr.toPixel(center)
	r := radius * pr.scale
	rect := image.Rect(int(cx-r)-1, int(cy-r)-1, int(cx+r)+2, int(cy+r)+2).Intersect(img.Bounds())
	mask := &circleMask{cx: cx, cy: cy, r: r, bounds: rect}
	draw.DrawMask(img, rect, image.NewUniform(coverageInk), image.Point{}, mask, rect.Min, draw.Over)
}

// drawMarker paints a small upward triangle at the placement point.
func drawMarker(img *image.RGBA, p geometry.Point, pr projection) {
	cx, cy := pr.toPixel(p)
	const size = 8.0 * supersample
	for dy := 0.0; dy <= size; dy++ {
		half := dy / 2
		y := int(cy + dy - size/2)
		for dx := -half; dx <= half; dx++ {
			x := int(cx + dx)
			if (image.Point{X: x, Y: y}).In(img.Bounds()) {
				img.SetRGBA(x, y, rgba(markerInk))
			}
		}
	}
}

// drawLabel writes the placement index next to its marker.
func drawLabel(img *image.RGBA, p geometry.Point, pr projection, text string) {
	cx, cy := pr.toPixel(p)
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelInk),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(cx)+6, int(cy)-6),
	}
	d.DrawString(text)
}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
