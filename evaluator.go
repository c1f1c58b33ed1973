package pymot

import (
	"fmt"

	"github.com/jalabort/pymot-go/internal/stats"
)

// Evaluator computes CLEAR MOT metrics by walking an AnnotationSet in
// order, looking up the corresponding hypothesis frame via a
// HypothesisIndex, and driving the correspondence engine for each pair.
//
// Evaluator owns all of its mutable state exclusively for the duration of
// one Evaluate() call; independent Evaluator instances may run
// concurrently on separate goroutines, but a single instance's Evaluate()
// is not safe to call from multiple goroutines, and frame k's outcome
// depends on the mapping produced by frame k-1 so evaluation within one
// instance cannot be parallelized.
type Evaluator struct {
	Config Config

	annotations AnnotationSet
	hypotheses  HypothesisSet
	hypIndex    *HypothesisIndex

	mapping   map[ObjectID]ObjectID
	state     *stats.State[ObjectID]
	debug     []FrameRecord
	keepDebug bool

	evaluated bool
}

// NewEvaluator constructs an Evaluator for the given annotation and
// hypothesis streams. keepDebug controls whether per-frame debug records
// are retained; disabling it does not alter any reported metric.
func NewEvaluator(annotations AnnotationSet, hypotheses HypothesisSet, config Config, keepDebug bool) (*Evaluator, error) {
	hypIndex, err := NewHypothesisIndex(hypotheses.Frames, config.SyncDelta)
	if err != nil {
		return nil, err
	}

	e := &Evaluator{
		Config:      config,
		annotations: annotations,
		hypotheses:  hypotheses,
		hypIndex:    hypIndex,
		keepDebug:   keepDebug,
	}
	e.resetState()
	return e, nil
}

func (e *Evaluator) resetState() {
	e.mapping = make(map[ObjectID]ObjectID)
	e.state = stats.NewState[ObjectID]()
	e.debug = nil
	e.evaluated = false
}

// Reset restores the Evaluator to its just-constructed state, discarding
// all accumulated counters and mappings.
func (e *Evaluator) Reset() {
	e.resetState()
}

// Evaluated reports whether Evaluate has already run to completion.
func (e *Evaluator) Evaluated() bool {
	return e.evaluated
}

// Evaluate walks the annotation frames in order, feeding each
// ground-truth/hypothesis frame pair through the correspondence engine.
// Once a call has succeeded, later calls without an intervening Reset are
// no-ops; a call that returned an error does not set this guard.
func (e *Evaluator) Evaluate() error {
	if e.evaluated {
		return nil
	}

	for _, gtFrame := range e.annotations.Frames {
		hypFrame, err := e.hypIndex.At(gtFrame.Timestamp)
		if err != nil {
			return fmt.Errorf("evaluating frame at timestamp %v: %w", gtFrame.Timestamp, err)
		}

		record := e.evaluateFrame(gtFrame, hypFrame)
		if e.keepDebug {
			e.debug = append(e.debug, record)
		}
	}

	e.evaluated = true
	return nil
}

// Debug returns the accumulated per-frame debug records, or nil if
// keepDebug was false at construction.
func (e *Evaluator) Debug() []FrameRecord {
	return e.debug
}

// MOTA returns the Multi-Object Tracking Accuracy.
func (e *Evaluator) MOTA() (float64, error) {
	return e.state.MOTA()
}

// MOTP returns the Multi-Object Tracking Precision.
func (e *Evaluator) MOTP() (float64, error) {
	return e.state.MOTP()
}

// FalseNegatives returns the total miss count.
func (e *Evaluator) FalseNegatives() int { return e.state.FN }

// FalsePositives returns the total false-positive count.
func (e *Evaluator) FalsePositives() int { return e.state.FP }

// IdentitySwitches returns the total identity-switch count.
func (e *Evaluator) IdentitySwitches() int { return e.state.IDSW }

// TotalAnnotations returns the cumulative ground-truth object count (N_gt).
func (e *Evaluator) TotalAnnotations() int { return e.state.NGt }

// Correspondences returns the cumulative successful correspondence count
// (N_corr).
func (e *Evaluator) Correspondences() int { return e.state.NCorr }

// Overlap returns the cumulative IoU sum over accepted correspondences
// (S_overlap).
func (e *Evaluator) Overlap() float64 { return e.state.SOverlap }

// FalseNegativeRate returns FN / N_gt, or 0 if N_gt is 0.
func (e *Evaluator) FalseNegativeRate() float64 { return e.state.FNRate() }

// FalsePositiveRate returns FP / N_gt, or 0 if N_gt is 0.
func (e *Evaluator) FalsePositiveRate() float64 { return e.state.FPRate() }

// IdentitySwitchRate returns IDSW / N_gt, or 0 if N_gt is 0.
func (e *Evaluator) IdentitySwitchRate() float64 { return e.state.IDSWRate() }

// TrackingPrecision returns |A*| / |H_seen|, or 0 if H_seen is empty.
func (e *Evaluator) TrackingPrecision() float64 { return e.state.TrackingPrecision() }

// TrackingRecall returns |A*| / |A_seen|, or 0 if A_seen is empty.
func (e *Evaluator) TrackingRecall() float64 { return e.state.TrackingRecall() }

// AnnotationTracks returns the number of distinct ground-truth ids ever
// seen (|A_seen|).
func (e *Evaluator) AnnotationTracks() int { return len(e.state.ASeen) }

// LonelyAnnotationTracks returns the number of ground-truth ids seen but
// never correspondent.
func (e *Evaluator) LonelyAnnotationTracks() int { return len(e.state.LonelyGT()) }

// CoveredAnnotationTracks returns the number of ground-truth ids seen and
// ever correspondent.
func (e *Evaluator) CoveredAnnotationTracks() int { return len(e.state.CoveredGT()) }

// HypothesisTracks returns the number of distinct hypothesis ids ever seen
// (|H_seen|).
func (e *Evaluator) HypothesisTracks() int { return len(e.state.HSeen) }

// LonelyHypothesisTracks returns the number of hypothesis ids seen but
// never correspondent.
func (e *Evaluator) LonelyHypothesisTracks() int { return len(e.state.LonelyHyp()) }

// CoveredHypothesisTracks returns the number of hypothesis ids seen and
// ever correspondent.
func (e *Evaluator) CoveredHypothesisTracks() int { return len(e.state.CoveredHyp()) }
