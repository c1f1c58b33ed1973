package pymot

// Outcome classifies a single object's fate within one evaluated frame.
type Outcome int

const (
	// OutcomeCorrespondence marks an object paired successfully this frame.
	OutcomeCorrespondence Outcome = iota
	// OutcomeMiss marks a ground-truth object with no paired hypothesis.
	OutcomeMiss
	// OutcomeFalsePositive marks a hypothesis object with no paired ground truth.
	OutcomeFalsePositive
	// OutcomeIdentitySwitch marks an object whose pairing contradicted the
	// persistent mapping.
	OutcomeIdentitySwitch
)

// String renders the outcome in the lowercase, underscore-free form used
// by external reporting.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrespondence:
		return "correspondence"
	case OutcomeMiss:
		return "miss"
	case OutcomeFalsePositive:
		return "false positive"
	case OutcomeIdentitySwitch:
		return "identity switch"
	default:
		return "unknown"
	}
}

// ClassifiedObject pairs an input object with the outcome the engine
// assigned it in a given frame.
type ClassifiedObject struct {
	ID      ObjectID
	Rect    Rect
	Outcome Outcome
}

// FrameRecord is the per-frame debug record the engine appends to the
// evaluator's debug stream. It never aliases the input frame's objects.
type FrameRecord struct {
	Timestamp float64
	Number    *int
	ClassTag  string
	Objects   []ClassifiedObject
}
