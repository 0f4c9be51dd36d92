package room

import (
	"fmt"
	"image/color"
	"math"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// String renders the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Room is an axis-aligned rectangle of cells, half-open on its Max edge.
type Room struct {
	Min, Max Point
}

// New returns the room spanning [minX,maxX) × [minY,maxY).
func New(minX, minY, maxX, maxY int) Room {
	return Room{Min: Point{minX, minY}, Max: Point{maxX, maxY}}
}

// FromCenterSize places a w×h room around center: Min = center - size/2 and
// Max = Min + size. Odd sizes put the extra cell on the Max side.
func FromCenterSize(center Point, w, h int) Room {
	minP := Point{center.X - w/2, center.Y - h/2}

	return Room{Min: minP, Max: Point{minP.X + w, minP.Y + h}}
}

// Width returns the extent along x.
func (r Room) Width() int { return r.Max.X - r.Min.X }

// Height returns the extent along y.
func (r Room) Height() int { return r.Max.Y - r.Min.Y }

// Size returns (Width, Height) as a point.
func (r Room) Size() Point { return Point{r.Width(), r.Height()} }

// Empty reports whether the room has no positive area.
func (r Room) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Area returns Width*Height, or 0 for an empty room.
func (r Room) Area() int {
	if r.Empty() {
		return 0
	}

	return r.Width() * r.Height()
}

// Intersect returns the overlapping region of r and o. The result is Empty
// when the rooms are disjoint or merely touch.
func (r Room) Intersect(o Room) Room {
	return Room{
		Min: Point{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)},
		Max: Point{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
}

// Overlaps reports a positive-area intersection.
func (r Room) Overlaps(o Room) bool {
	return !r.Intersect(o).Empty()
}

// Inset shrinks the room by d on every side; a negative d grows it.
func (r Room) Inset(d int) Room {
	return Room{
		Min: Point{r.Min.X + d, r.Min.Y + d},
		Max: Point{r.Max.X - d, r.Max.Y - d},
	}
}

// Union returns the smallest room containing both r and o.
func (r Room) Union(o Room) Room {
	return Room{
		Min: Point{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Point{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

// Center returns the integer center (Min+Max)/2, truncated toward zero.
func (r Room) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Center2 returns twice the exact center, Min+Max. It keeps half-cell
// centers exact for integer geometry.
func (r Room) Center2() Point {
	return Point{r.Min.X + r.Max.X, r.Min.Y + r.Max.Y}
}

// CenterF returns the exact center in floating point.
func (r Room) CenterF() (x, y float64) {
	c := r.Center2()
	return float64(c.X) / 2, float64(c.Y) / 2
}

// SpineDistance returns |center.y|, the distance of the center from the spine.
func (r Room) SpineDistance() float64 {
	_, y := r.CenterF()
	return math.Abs(y)
}

// OnSpine reports whether the spine axis bisects the room.
func (r Room) OnSpine() bool {
	return r.Min.Y+r.Max.Y == 0
}

// Mirror reflects the room across the spine (y → -y).
func (r Room) Mirror() Room {
	return Room{
		Min: Point{r.Min.X, -r.Max.Y},
		Max: Point{r.Max.X, -r.Min.Y},
	}
}

// Distance returns the Euclidean distance between the centers of r and o.
func (r Room) Distance(o Room) float64 {
	ax, ay := r.CenterF()
	bx, by := o.CenterF()

	return math.Hypot(ax-bx, ay-by)
}

// Color derives a stable pseudo-color from the room's center. The hash uses
// |center.y| so a room and its mirror share a color.
func (r Room) Color() color.RGBA {
	c := r.Center2()
	y := c.Y
	if y < 0 {
		y = -y
	}
	h := hash2(uint32(c.X), uint32(y))

	return color.RGBA{R: uint8(h), G: uint8(h >> 8), B: uint8(h >> 16), A: 0xa6}
}

// String renders the room as "[min..max)".
func (r Room) String() string {
	return fmt.Sprintf("[%v..%v)", r.Min, r.Max)
}

// hash32 is a murmur-style finalizer with full avalanche.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16

	return x
}

// hash2 combines two coordinates with decorrelating odd constants.
func hash2(x, y uint32) uint32 {
	h := x * 0x9e3779b1
	h ^= y * 0x85ebca6b

	return hash32(h)
}
