package main

import "log"

// validate checks a single parsed document (ground truth or hypotheses)
// for format violations: a missing or empty object id, a duplicate id
// within a frame, or a missing x/y/width/height key. Violations are
// advisory, never fatal. label names the document in warning text
// ("ground truth" or "hypotheses").
func validate(doc *rawDocument, label string, objectsOf func(rawFrame) []rawObject) bool {
	ok := true

	for _, frame := range doc.Frames {
		seen := make(map[string]bool)
		for _, obj := range objectsOf(frame) {
			num := -1
			if frame.Num != nil {
				num = *frame.Num
			}

			if obj.ID.s == "" {
				log.Printf("Warning: %s without id found, timestamp %v, frame %d", label, frame.Timestamp, num)
				ok = false
				continue
			}
			if seen[obj.ID.s] {
				log.Printf("Warning: %s with ambiguous id (%s) found, timestamp %v, frame %d", label, obj.ID.s, frame.Timestamp, num)
				ok = false
				continue
			}
			seen[obj.ID.s] = true

			for key, v := range map[string]*float64{"x": obj.X, "y": obj.Y, "width": obj.Width, "height": obj.Height} {
				if v == nil {
					log.Printf("Warning: %s without key %s found, timestamp %v, frame %d", label, key, frame.Timestamp, num)
					ok = false
				}
			}
		}
	}

	return ok
}

// validateDocuments runs validate over the ground-truth and hypotheses
// documents and returns the (gtOK, hypOK) pair.
func validateDocuments(gt, hyp *rawDocument) (gtOK, hypOK bool) {
	gtOK = validate(gt, "ground truth", func(f rawFrame) []rawObject { return f.Annotations })
	hypOK = validate(hyp, "hypotheses", func(f rawFrame) []rawObject { return f.Hypotheses })
	return gtOK, hypOK
}
