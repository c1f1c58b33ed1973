// Package geometry computes intersection-over-union between axis-aligned
// rectangles. It is the sole rectangle primitive used by the rest of the
// repository; no other package reaches into a rectangle's internals.
package geometry

import (
	"errors"
	"fmt"
	"log"
)

// ErrInvalidArgument is returned when a rectangle is constructed with a
// negative width or height.
var ErrInvalidArgument = errors.New("invalid argument")

// Rect is an axis-aligned rectangle with top-left corner (X, Y) and
// non-negative extent (Width, Height).
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect validates and constructs a Rect. Width and height must both be
// greater than or equal to zero.
func NewRect(x, y, width, height float64) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, fmt.Errorf("%w: width (%.2f) and height (%.2f) must be >= 0", ErrInvalidArgument, width, height)
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, nil
}

func (r Rect) area() float64 {
	return r.Width * r.Height
}

// intersectionArea returns the area of the overlap between a and b, and
// whether the two rectangles intersect at all.
func intersectionArea(a, b Rect) (float64, bool) {
	xMin := max(a.X, b.X)
	yMin := max(a.Y, b.Y)
	xMax := min(a.X+a.Width, b.X+b.Width)
	yMax := min(a.Y+a.Height, b.Y+b.Height)

	if xMax <= xMin || yMax <= yMin {
		return 0, false
	}
	return (xMax - xMin) * (yMax - yMin), true
}

// IoU computes the intersection-over-union of two rectangles, in [0, 1].
//
// An empty intersection yields 0 and logs an informational warning. A
// degenerate union (both rectangles zero-area) also yields 0 rather than
// dividing by zero.
func IoU(a, b Rect) float64 {
	intersection, overlaps := intersectionArea(a, b)
	if !overlaps {
		log.Printf("Warning: bounding box intersection is empty")
		return 0
	}

	union := a.area() + b.area() - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}
