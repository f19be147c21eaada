// pkg/physics/collision.go
package physics

import "math"

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides reports whether the circles overlap. Touching circles do not collide.
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// Contains reports whether point lies strictly inside the circle.
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.Distance(point) < c.Radius
}

// Bounds returns the axis-aligned square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{Center: c.Center, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Contains uses a half-open interval on each axis so neighbouring quadrants
// never both claim a point.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// Intersects reports whether the two rectangles overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Center.X-other.Width/2 > r.Center.X+r.Width/2 ||
		other.Center.X+other.Width/2 < r.Center.X-r.Width/2 ||
		other.Center.Y-other.Height/2 > r.Center.Y+r.Height/2 ||
		other.Center.Y+other.Height/2 < r.Center.Y-r.Height/2)
}

// BoundsOf returns the smallest rectangle holding every point, grown by
// padding on each side. An empty slice yields a padding-sized square at the origin.
func BoundsOf(points []Vector2D, padding float64) Rect {
	if len(points) == 0 {
		return Rect{Width: 2 * padding, Height: 2 * padding}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{
		Center: Vector2D{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  maxX - minX + 2*padding,
		Height: maxY - minY + 2*padding,
	}
}

type quadEntry[T any] struct {
	point Vector2D
	value T
}

// QuadTree partitions points in a fixed boundary for broad-phase queries.
type QuadTree[T any] struct {
	Boundary  Rect
	Capacity  int
	entries   []quadEntry[T]
	Divided   bool
	NorthWest *QuadTree[T]
	NorthEast *QuadTree[T]
	SouthWest *QuadTree[T]
	SouthEast *QuadTree[T]
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree[T any](boundary Rect, capacity int) *QuadTree[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree[T]{
		Boundary: boundary,
		Capacity: capacity,
		entries:  make([]quadEntry[T], 0, capacity),
	}
}

// Len returns the number of values stored in the tree and its children.
func (qt *QuadTree[T]) Len() int {
	n := len(qt.entries)
	if qt.Divided {
		n += qt.NorthWest.Len() + qt.NorthEast.Len() + qt.SouthWest.Len() + qt.SouthEast.Len()
	}
	return n
}

// Clear empties the tree and re-targets it at a new boundary so one tree
// can be reused frame after frame.
func (qt *QuadTree[T]) Clear(boundary Rect) {
	qt.Boundary = boundary
	qt.entries = qt.entries[:0]
	qt.Divided = false
	qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast = nil, nil, nil, nil
}

// Insert stores value at point. It returns false when point is outside the boundary.
func (qt *QuadTree[T]) Insert(point Vector2D, value T) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	if len(qt.entries) < qt.Capacity && !qt.Divided {
		qt.entries = append(qt.entries, quadEntry[T]{point: point, value: value})
		return true
	}

	// Degenerate boundaries cannot be split further; keep the overflow here.
	if qt.Boundary.Width < minQuadSize || qt.Boundary.Height < minQuadSize {
		qt.entries = append(qt.entries, quadEntry[T]{point: point, value: value})
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	return qt.NorthWest.Insert(point, value) ||
		qt.NorthEast.Insert(point, value) ||
		qt.SouthWest.Insert(point, value) ||
		qt.SouthEast.Insert(point, value)
}

const minQuadSize = 1.0

// Subdivide splits the quadtree into four quadrants
func (qt *QuadTree[T]) Subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	qt.NorthWest = NewQuadTree[T](Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}, qt.Capacity)
	qt.NorthEast = NewQuadTree[T](Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}, qt.Capacity)
	qt.SouthWest = NewQuadTree[T](Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}, qt.Capacity)
	qt.SouthEast = NewQuadTree[T](Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}, qt.Capacity)
	qt.Divided = true
}

// Query returns all values whose points fall inside area.
func (qt *QuadTree[T]) Query(area Rect) []T {
	return qt.query(area, nil)
}

func (qt *QuadTree[T]) query(area Rect, found []T) []T {
	if !qt.Boundary.Intersects(area) {
		return found
	}

	for _, e := range qt.entries {
		if area.Contains(e.point) {
			found = append(found, e.value)
		}
	}

	if !qt.Divided {
		return found
	}

	found = qt.NorthWest.query(area, found)
	found = qt.NorthEast.query(area, found)
	found = qt.SouthWest.query(area, found)
	found = qt.SouthEast.query(area, found)
	return found
}

// QueryRadius returns the values whose points lie strictly within radius of center.
func (qt *QuadTree[T]) QueryRadius(center Vector2D, radius float64) []T {
	var found []T
	qt.walk(Circle{Center: center, Radius: radius}, func(e quadEntry[T]) {
		found = append(found, e.value)
	})
	return found
}

func (qt *QuadTree[T]) walk(c Circle, visit func(quadEntry[T])) {
	if !qt.Boundary.Intersects(c.Bounds()) {
		return
	}
	for _, e := range qt.entries {
		if c.Contains(e.point) {
			visit(e)
		}
	}
	if qt.Divided {
		qt.NorthWest.walk(c, visit)
		qt.NorthEast.walk(c, visit)
		qt.SouthWest.walk(c, visit)
		qt.SouthEast.walk(c, visit)
	}
}
