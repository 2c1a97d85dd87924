package canvas

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// strokeSegment rasterizes the segment a-b as a capsule of the tool width.
// The brush paints over the surface; the eraser removes coverage, leaving
// transparent pixels.
func strokeSegment(dst *image.RGBA, a, b Point, ts ToolState) {
	r := float64(ClampWidth(ts.Width)) / 2

	bounds := image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-r))-1,
		int(math.Floor(math.Min(a.Y, b.Y)-r))-1,
		int(math.Ceil(math.Max(a.X, b.X)+r))+1,
		int(math.Ceil(math.Max(a.Y, b.Y)+r))+1,
	)
	if !bounds.Overlaps(dst.Bounds()) {
		return
	}

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	origin := Point{X: float64(bounds.Min.X), Y: float64(bounds.Min.Y)}
	capsule(z, sub(a, origin), sub(b, origin), r)

	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if ts.Tool == Eraser {
		erase(dst, bounds, mask)
		return
	}
	draw.DrawMask(dst, bounds, image.NewUniform(ts.Color), image.Point{}, mask, image.Point{}, draw.Over)
}

// erase scales every covered pixel of dst down by the mask coverage, the
// destination-out operator. draw.Src would also clear the uncovered part of
// the rectangle.
func erase(dst *image.RGBA, bounds image.Rectangle, mask *image.Alpha) {
	clip := bounds.Intersect(dst.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			m := uint32(mask.AlphaAt(x-bounds.Min.X, y-bounds.Min.Y).A)
			if m == 0 {
				continue
			}
			keep := 0xff - m
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			for j := range px {
				px[j] = uint8(uint32(px[j]) * keep / 0xff)
			}
		}
	}
}

// capsule adds the outline of a segment with round caps of radius r. A
// zero length segment becomes a circle.
func capsule(z *vector.Rasterizer, a, b Point, r float64) {
	u := sub(b, a)
	length := math.Hypot(u.X, u.Y)
	if length == 0 {
		u = Point{X: 1}
	} else {
		u = scale(u, 1/length)
	}
	n := Point{X: -u.Y, Y: u.X}
	k := r * kappa

	ur, nr := scale(u, r), scale(n, r)
	uk, nk := scale(u, k), scale(n, k)

	moveTo(z, add(a, nr))
	lineTo(z, add(b, nr))
	cubeTo(z, add(add(b, nr), uk), add(add(b, ur), nk), add(b, ur))
	cubeTo(z, sub(add(b, ur), nk), add(sub(b, nr), uk), sub(b, nr))
	lineTo(z, sub(a, nr))
	cubeTo(z, sub(sub(a, nr), uk), sub(sub(a, ur), nk), sub(a, ur))
	cubeTo(z, add(sub(a, ur), nk), sub(add(a, nr), uk), add(a, nr))
	z.ClosePath()
}

func moveTo(z *vector.Rasterizer, p Point) {
	z.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(z *vector.Rasterizer, p Point) {
	z.LineTo(float32(p.X), float32(p.Y))
}

func cubeTo(z *vector.Rasterizer, c1, c2, p Point) {
	z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}

func add(p, q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func sub(p, q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func scale(p Point, s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}
