/*
Package pymot computes CLEAR MOT tracking evaluation metrics (MOTA, MOTP)
plus per-track coverage counts by comparing a ground-truth annotation
stream against a tracker's hypothesis stream.

For every ground-truth frame, the Evaluator looks up the chronologically
matching hypothesis frame and runs a two-phase correspondence engine: prior
identities are carried over while they still meet an overlap threshold,
then the remaining objects are optimally re-matched via a minimum-cost
bipartite assignment over inverse-IoU cost.

# Basic Usage

	evaluator, err := pymot.NewEvaluator(annotations, hypotheses, pymot.DefaultConfig(), true)
	if err != nil {
		log.Fatal(err)
	}
	if err := evaluator.Evaluate(); err != nil {
		log.Fatal(err)
	}

	mota, err := evaluator.MOTA()
	motp, err := evaluator.MOTP()

# Core Types

Rect, Object and Frame make up the data model; AnnotationSet and
HypothesisSet hold ordered per-sequence frame streams.

Evaluator drives one full pass over an AnnotationSet, maintaining a
persistent ground-truth-to-hypothesis identity mapping and the running
counters (FN, FP, IDSW, N_gt, N_corr, S_overlap) that back MOTA and MOTP.

# Configuration

  - OverlapThreshold: minimum IoU for a correspondence (default 0.2)
  - SyncDelta: timestamp matching tolerance (default 1e-3)
  - ForbiddenCost: cost-matrix sentinel for a forbidden pairing

# Debug records

When enabled, Evaluator.Debug returns one FrameRecord per evaluated frame,
classifying every object into a correspondence, miss, false positive, or
identity switch outcome.
*/
package pymot
