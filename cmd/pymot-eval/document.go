package main

import (
	"encoding/json"
	"fmt"

	"github.com/jalabort/pymot-go"
)

// rawID accepts either a JSON string or a JSON number and coerces it to a
// stable string, so ids compare consistently regardless of source encoding.
type rawID struct {
	s string
}

func (r *rawID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.s = s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	r.s = n.String()
	return nil
}

type rawObject struct {
	ID     rawID    `json:"id"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type rawFrame struct {
	Timestamp   float64     `json:"timestamp"`
	Num         *int        `json:"num,omitempty"`
	Class       string      `json:"class"`
	Annotations []rawObject `json:"annotations,omitempty"`
	Hypotheses  []rawObject `json:"hypotheses,omitempty"`
}

type rawDocument struct {
	Class    string     `json:"class"`
	Filename string     `json:"filename"`
	Frames   []rawFrame `json:"frames"`
}

// toAnnotationSet converts a parsed ground-truth document into the core
// package's AnnotationSet.
func (d *rawDocument) toAnnotationSet() pymot.AnnotationSet {
	frames := make([]pymot.GroundTruthFrame, len(d.Frames))
	for i, f := range d.Frames {
		frames[i] = pymot.Frame{
			Timestamp: f.Timestamp,
			Number:    f.Num,
			ClassTag:  f.Class,
			Objects:   toObjects(f.Annotations),
		}
	}
	return pymot.AnnotationSet{Filename: d.Filename, ClassTag: d.Class, Frames: frames}
}

// toHypothesisSet converts a parsed hypothesis document into the core
// package's HypothesisSet.
func (d *rawDocument) toHypothesisSet() pymot.HypothesisSet {
	frames := make([]pymot.HypothesisFrame, len(d.Frames))
	for i, f := range d.Frames {
		frames[i] = pymot.Frame{
			Timestamp: f.Timestamp,
			Number:    f.Num,
			ClassTag:  f.Class,
			Objects:   toObjects(f.Hypotheses),
		}
	}
	return pymot.HypothesisSet{Filename: d.Filename, ClassTag: d.Class, Frames: frames}
}

func toObjects(raw []rawObject) []pymot.Object {
	objects := make([]pymot.Object, len(raw))
	for i, o := range raw {
		rect, err := pymot.NewRect(floatOrZero(o.X), floatOrZero(o.Y), floatOrZero(o.Width), floatOrZero(o.Height))
		if err != nil {
			// Format validation is advisory (validate); a malformed rect
			// here degrades to a zero-area rectangle rather than aborting
			// the whole document.
			rect = pymot.Rect{}
		}
		objects[i] = pymot.Object{ID: pymot.ObjectID(o.ID.s), Rect: rect}
	}
	return objects
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
