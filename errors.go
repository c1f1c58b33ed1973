package pymot

import (
	"errors"

	"github.com/jalabort/pymot-go/internal/geometry"
	"github.com/jalabort/pymot-go/internal/stats"
)

// ErrInvalidArgument is returned for a rectangle constructed with negative
// extent; see geometry.NewRect.
var ErrInvalidArgument = geometry.ErrInvalidArgument

// ErrEmptyGroundTruth is returned by Evaluator.MOTA when no ground-truth
// object has ever been counted.
var ErrEmptyGroundTruth = stats.ErrEmptyGroundTruth

// ErrNoCorrespondences is returned by Evaluator.MOTP when no correspondence
// has ever been recorded.
var ErrNoCorrespondences = stats.ErrNoCorrespondences

// ErrTemporalAmbiguity is returned by the frame index when two or more
// hypothesis frames fall within sync_delta of the requested timestamp.
var ErrTemporalAmbiguity = errors.New("temporal ambiguity")
