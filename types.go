package pymot

import "github.com/jalabort/pymot-go/internal/geometry"

// Rect is an axis-aligned rectangle. See internal/geometry.Rect for the
// invariant (width, height >= 0) and the IoU computation.
type Rect = geometry.Rect

// NewRect constructs a Rect, failing with ErrInvalidArgument on negative
// extent.
func NewRect(x, y, width, height float64) (Rect, error) {
	return geometry.NewRect(x, y, width, height)
}

// ObjectID is an opaque stable identifier. Ground-truth ids and hypothesis
// ids live in separate namespaces and are only ever compared by equality.
type ObjectID string

// Object is a single ground-truth or hypothesis detection within a frame.
type Object struct {
	ID   ObjectID
	Rect Rect
}

// Frame is one timestamped set of objects, either ground truth or
// hypothesis. The ordering of Objects carries no meaning; ids within a
// frame are expected to be unique. When a ground-truth id carried over from
// the persistent mapping occurs more than once, carry-over uses its first
// occurrence and logs a warning; no other duplicate is detected or warned
// about.
type Frame struct {
	Timestamp float64
	Number    *int
	ClassTag  string
	Objects   []Object
}

// GroundTruthFrame is a Frame holding ground-truth objects.
type GroundTruthFrame = Frame

// HypothesisFrame is a Frame holding hypothesis objects.
type HypothesisFrame = Frame

// AnnotationSet is an ordered ground-truth stream plus opaque metadata.
// Ground-truth frames define the evaluation timeline.
type AnnotationSet struct {
	Filename string
	ClassTag string
	Frames   []GroundTruthFrame
}

// HypothesisSet is an ordered hypothesis stream plus opaque metadata.
// Hypothesis frames are looked up by timestamp, never iterated directly.
type HypothesisSet struct {
	Filename string
	ClassTag string
	Frames   []HypothesisFrame
}
