// Package stats accumulates the running counters and coverage sets a single
// evaluation pass produces, and derives MOTA/MOTP and the related rates and
// track-coverage counts from them.
package stats

import (
	"errors"
	"fmt"
)

// ErrEmptyGroundTruth is returned by MOTA when no ground-truth objects have
// been counted yet.
var ErrEmptyGroundTruth = errors.New("empty ground truth")

// ErrNoCorrespondences is returned by MOTP when no correspondence has ever
// been recorded.
var ErrNoCorrespondences = errors.New("no correspondences")

// State holds the counters, coverage sets and seen sets spec.md assigns to
// aggregate statistics (C5). It is owned exclusively by one evaluation pass;
// see State.Reset for the idempotent-reset requirement.
type State[ID comparable] struct {
	// Counters.
	FN    int // false negatives (misses)
	FP    int // false positives
	IDSW  int // identity switches
	NGt   int // total annotated objects
	NCorr int // total successful correspondences

	SOverlap float64 // sum of IoU over successful correspondences

	// Coverage sets: ids ever correspondent.
	AStar map[ID]ID // gt id -> hyp id
	HStar map[ID]ID // hyp id -> gt id

	// Seen sets: every id that has ever appeared, regardless of outcome.
	ASeen map[ID]struct{}
	HSeen map[ID]struct{}
}

// NewState constructs a State with all counters at zero.
func NewState[ID comparable]() *State[ID] {
	s := &State[ID]{}
	s.Reset()
	return s
}

// Reset restores the state to its initial, just-constructed values.
func (s *State[ID]) Reset() {
	s.FN = 0
	s.FP = 0
	s.IDSW = 0
	s.NGt = 0
	s.NCorr = 0
	s.SOverlap = 0
	s.AStar = make(map[ID]ID)
	s.HStar = make(map[ID]ID)
	s.ASeen = make(map[ID]struct{})
	s.HSeen = make(map[ID]struct{})
}

// MOTA computes the Multi-Object Tracking Accuracy: 1 - (FN+FP+IDSW)/NGt.
// Returns ErrEmptyGroundTruth when NGt <= 0.
func (s *State[ID]) MOTA() (float64, error) {
	if s.NGt <= 0 {
		return 0, fmt.Errorf("%w: total ground truth objects must be > 0 to compute MOTA", ErrEmptyGroundTruth)
	}
	return 1.0 - float64(s.FN+s.FP+s.IDSW)/float64(s.NGt), nil
}

// MOTP computes the Multi-Object Tracking Precision: mean IoU over accepted
// correspondences. Returns ErrNoCorrespondences when NCorr <= 0.
func (s *State[ID]) MOTP() (float64, error) {
	if s.NCorr <= 0 {
		return 0, fmt.Errorf("%w: total correspondences must be > 0 to compute MOTP", ErrNoCorrespondences)
	}
	return s.SOverlap / float64(s.NCorr), nil
}

// FNRate is FN / NGt, 0 if NGt == 0.
func (s *State[ID]) FNRate() float64 { return s.rate(s.FN) }

// FPRate is FP / NGt, 0 if NGt == 0.
func (s *State[ID]) FPRate() float64 { return s.rate(s.FP) }

// IDSWRate is IDSW / NGt, 0 if NGt == 0.
func (s *State[ID]) IDSWRate() float64 { return s.rate(s.IDSW) }

func (s *State[ID]) rate(numerator int) float64 {
	if s.NGt == 0 {
		return 0
	}
	return float64(numerator) / float64(s.NGt)
}

// TrackingPrecision is |AStar| / |HSeen|, 0 if HSeen is empty.
func (s *State[ID]) TrackingPrecision() float64 {
	if len(s.HSeen) == 0 {
		return 0
	}
	return float64(len(s.AStar)) / float64(len(s.HSeen))
}

// TrackingRecall is |AStar| / |ASeen|, 0 if ASeen is empty.
func (s *State[ID]) TrackingRecall() float64 {
	if len(s.ASeen) == 0 {
		return 0
	}
	return float64(len(s.AStar)) / float64(len(s.ASeen))
}

// LonelyGT is the set of ground-truth ids seen but never correspondent.
func (s *State[ID]) LonelyGT() map[ID]struct{} {
	return difference(s.ASeen, s.AStar)
}

// CoveredGT is the set of ground-truth ids seen and ever correspondent.
func (s *State[ID]) CoveredGT() map[ID]struct{} {
	return intersect(s.ASeen, s.AStar)
}

// LonelyHyp is the set of hypothesis ids seen but never correspondent.
func (s *State[ID]) LonelyHyp() map[ID]struct{} {
	return difference(s.HSeen, s.HStar)
}

// CoveredHyp is the set of hypothesis ids seen and ever correspondent.
func (s *State[ID]) CoveredHyp() map[ID]struct{} {
	return intersect(s.HSeen, s.HStar)
}

func difference[ID comparable](seen map[ID]struct{}, covered map[ID]ID) map[ID]struct{} {
	out := make(map[ID]struct{})
	for id := range seen {
		if _, ok := covered[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}

func intersect[ID comparable](seen map[ID]struct{}, covered map[ID]ID) map[ID]struct{} {
	out := make(map[ID]struct{})
	for id := range seen {
		if _, ok := covered[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}
