package main

import "testing"

func makeFrame(objs ...rawObject) rawFrame {
	return rawFrame{Timestamp: 0, Annotations: objs, Hypotheses: objs}
}

func floatPtr(v float64) *float64 { return &v }

func TestValidate_Valid(t *testing.T) {
	doc := &rawDocument{Frames: []rawFrame{
		{Timestamp: 0, Annotations: []rawObject{
			{ID: rawID{"A"}, X: floatPtr(0), Y: floatPtr(0), Width: floatPtr(1), Height: floatPtr(1)},
		}},
	}}

	if !validate(doc, "ground truth", func(f rawFrame) []rawObject { return f.Annotations }) {
		t.Errorf("expected valid document to pass validation")
	}
}

func TestValidate_EmptyID(t *testing.T) {
	doc := &rawDocument{Frames: []rawFrame{
		{Timestamp: 0, Annotations: []rawObject{
			{ID: rawID{""}, X: floatPtr(0), Y: floatPtr(0), Width: floatPtr(1), Height: floatPtr(1)},
		}},
	}}

	if validate(doc, "ground truth", func(f rawFrame) []rawObject { return f.Annotations }) {
		t.Errorf("expected empty id to fail validation")
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	doc := &rawDocument{Frames: []rawFrame{
		{Timestamp: 0, Annotations: []rawObject{
			{ID: rawID{"A"}, X: floatPtr(0), Y: floatPtr(0), Width: floatPtr(1), Height: floatPtr(1)},
			{ID: rawID{"A"}, X: floatPtr(1), Y: floatPtr(1), Width: floatPtr(1), Height: floatPtr(1)},
		}},
	}}

	if validate(doc, "ground truth", func(f rawFrame) []rawObject { return f.Annotations }) {
		t.Errorf("expected duplicate id to fail validation")
	}
}

func TestValidate_MissingKey(t *testing.T) {
	doc := &rawDocument{Frames: []rawFrame{
		{Timestamp: 0, Annotations: []rawObject{
			{ID: rawID{"A"}, X: floatPtr(0), Y: floatPtr(0), Width: nil, Height: floatPtr(1)},
		}},
	}}

	if validate(doc, "ground truth", func(f rawFrame) []rawObject { return f.Annotations }) {
		t.Errorf("expected missing width key to fail validation")
	}
}

func TestValidateDocuments(t *testing.T) {
	good := &rawDocument{Frames: []rawFrame{
		{Timestamp: 0, Annotations: []rawObject{
			{ID: rawID{"A"}, X: floatPtr(0), Y: floatPtr(0), Width: floatPtr(1), Height: floatPtr(1)},
		}},
	}}
	bad := &rawDocument{Frames: []rawFrame{
		{Timestamp: 0, Hypotheses: []rawObject{
			{ID: rawID{""}, X: floatPtr(0), Y: floatPtr(0), Width: floatPtr(1), Height: floatPtr(1)},
		}},
	}}

	gtOK, hypOK := validateDocuments(good, bad)
	if !gtOK {
		t.Errorf("expected gtOK=true")
	}
	if hypOK {
		t.Errorf("expected hypOK=false")
	}
}
