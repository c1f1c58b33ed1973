package pymot

import (
	"fmt"
	"math"
)

// HypothesisIndex looks up the single hypothesis frame whose timestamp lies
// within a configured tolerance of a ground-truth timestamp.
type HypothesisIndex struct {
	frames    []HypothesisFrame
	syncDelta float64
}

// NewHypothesisIndex wraps a hypothesis stream for timestamp lookup.
// syncDelta is the half-width of the matching window; it must be positive.
func NewHypothesisIndex(frames []HypothesisFrame, syncDelta float64) (*HypothesisIndex, error) {
	if syncDelta <= 0 {
		return nil, fmt.Errorf("%w: sync_delta must be > 0, got %v", ErrInvalidArgument, syncDelta)
	}
	return &HypothesisIndex{frames: frames, syncDelta: syncDelta}, nil
}

// At returns the unique hypothesis frame within syncDelta of t.
//
// Zero matches logs a warning and returns an empty frame (evaluation
// proceeds, the whole ground-truth frame counts as misses). Two or more
// matches fails with ErrTemporalAmbiguity.
func (idx *HypothesisIndex) At(t float64) (HypothesisFrame, error) {
	var found []HypothesisFrame
	for _, f := range idx.frames {
		if math.Abs(f.Timestamp-t) < idx.syncDelta {
			found = append(found, f)
		}
	}

	switch len(found) {
	case 0:
		WarnOnce(fmt.Sprintf("no hypothesis frame found for timestamp %v with sync_delta %v", t, idx.syncDelta))
		return HypothesisFrame{Timestamp: t}, nil
	case 1:
		return found[0], nil
	default:
		return HypothesisFrame{}, fmt.Errorf("%w: %d hypothesis frames found for timestamp %v with sync_delta %v",
			ErrTemporalAmbiguity, len(found), t, idx.syncDelta)
	}
}
