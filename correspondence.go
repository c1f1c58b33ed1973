package pymot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jalabort/pymot-go/internal/assignment"
	"github.com/jalabort/pymot-go/internal/geometry"
)

// evaluateFrame runs the two-phase correspondence algorithm for one
// ground-truth/hypothesis frame pair, mutating e.mapping and e.state and
// returning the frame's debug record.
func (e *Evaluator) evaluateFrame(a GroundTruthFrame, h HypothesisFrame) FrameRecord {
	for _, obj := range a.Objects {
		e.state.ASeen[obj.ID] = struct{}{}
	}
	for _, obj := range h.Objects {
		e.state.HSeen[obj.ID] = struct{}{}
	}

	if len(a.Objects) == 0 && len(h.Objects) == 0 {
		return FrameRecord{Timestamp: a.Timestamp, Number: a.Number, ClassTag: a.ClassTag}
	}

	correspondence := make(map[ObjectID]ObjectID) // gt id -> hyp id, this frame
	switchedGT := make(map[ObjectID]bool)
	switchedHyp := make(map[ObjectID]bool)

	// Phase 1 — carry-over.
	for aID, hID := range e.mapping {
		aIdx, aCount := findByID(a.Objects, aID)
		if aCount > 1 {
			WarnOnce(fmt.Sprintf("found %d > 1 ground truth tracks for id %q", aCount, aID))
		}
		if aIdx < 0 {
			continue
		}
		hIdx, _ := findByID(h.Objects, hID)
		if hIdx < 0 {
			continue
		}

		ov := geometry.IoU(a.Objects[aIdx].Rect, h.Objects[hIdx].Rect)
		if ov >= e.Config.OverlapThreshold {
			correspondence[aID] = hID
			e.state.SOverlap += ov
		}
		// Dropped carry-overs are not yet a switch; the object may be
		// rematched in Phase 2.
	}

	// Phase 2 — optimal assignment of the remainder.
	// With either side empty there is nothing to pair: the matrix stays nil
	// (gonum rejects zero dimensions), the loops below never touch it, and
	// assignment.Solve returns no matches for a nil matrix.
	numA, numH := len(a.Objects), len(h.Objects)
	var cost *mat.Dense
	if numA > 0 && numH > 0 {
		cost = mat.NewDense(numH, numA, nil)
	}
	for j := 0; j < numH; j++ {
		for i := 0; i < numA; i++ {
			cost.Set(j, i, e.Config.ForbiddenCost)
		}
	}

	for i, obj := range a.Objects {
		if _, paired := correspondence[obj.ID]; paired {
			continue
		}
		for j, hyp := range h.Objects {
			if containsValue(correspondence, hyp.ID) {
				continue
			}
			ov := geometry.IoU(obj.Rect, hyp.Rect)
			if ov >= e.Config.OverlapThreshold {
				cost.Set(j, i, 1.0/ov)
			}
		}
	}

	matched, _, _ := assignment.Solve(cost, e.Config.ForbiddenCost)

	for _, m := range matched {
		j, i := m.RowIdx, m.ColIdx
		aID, hID := a.Objects[i].ID, h.Objects[j].ID
		ov := 1.0 / cost.At(j, i)

		// Contract: if aID is already in e.mapping, Phase 1 must have
		// already handled equal pairings; reaching here means it maps
		// elsewhere (or is new).
		correspondence[aID] = hID
		e.state.SOverlap += ov
		e.state.AStar[aID] = hID
		e.state.HStar[hID] = aID

		var conflicting []ObjectID
		for mA, mH := range e.mapping {
			if (mA == aID && mH != hID) || (mA != aID && mH == hID) {
				conflicting = append(conflicting, mA)
			}
		}
		if len(conflicting) > 0 {
			e.state.IDSW += len(conflicting)
			switchedGT[aID] = true
			switchedHyp[hID] = true
			for _, mA := range conflicting {
				delete(e.mapping, mA)
			}
		}
		e.mapping[aID] = hID
	}

	// Phase 3 — outcome classification and counting.
	objects := make([]ClassifiedObject, 0, len(a.Objects)+len(h.Objects))

	for _, obj := range a.Objects {
		_, paired := correspondence[obj.ID]
		switch {
		case switchedGT[obj.ID]:
			objects = append(objects, ClassifiedObject{ID: obj.ID, Rect: obj.Rect, Outcome: OutcomeIdentitySwitch})
		case paired:
			objects = append(objects, ClassifiedObject{ID: obj.ID, Rect: obj.Rect, Outcome: OutcomeCorrespondence})
		default:
			e.state.FN++
			objects = append(objects, ClassifiedObject{ID: obj.ID, Rect: obj.Rect, Outcome: OutcomeMiss})
		}
	}

	for _, obj := range h.Objects {
		paired := containsValue(correspondence, obj.ID)
		switch {
		case switchedHyp[obj.ID]:
			objects = append(objects, ClassifiedObject{ID: obj.ID, Rect: obj.Rect, Outcome: OutcomeIdentitySwitch})
		case paired:
			objects = append(objects, ClassifiedObject{ID: obj.ID, Rect: obj.Rect, Outcome: OutcomeCorrespondence})
		default:
			e.state.FP++
			objects = append(objects, ClassifiedObject{ID: obj.ID, Rect: obj.Rect, Outcome: OutcomeFalsePositive})
		}
	}

	e.state.NCorr += len(correspondence)
	e.state.NGt += len(a.Objects)

	return FrameRecord{Timestamp: a.Timestamp, Number: a.Number, ClassTag: a.ClassTag, Objects: objects}
}

func findByID(objects []Object, id ObjectID) (index int, count int) {
	index = -1
	for i, obj := range objects {
		if obj.ID == id {
			if count == 0 {
				index = i
			}
			count++
		}
	}
	return index, count
}

func containsValue(m map[ObjectID]ObjectID, v ObjectID) bool {
	for _, mv := range m {
		if mv == v {
			return true
		}
	}
	return false
}
