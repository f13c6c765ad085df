package bench

import (
	align "github.com/jamesainslie/go-align"
)

// Report holds alignment evaluation results: the raw integer sums the
// metrics are built from plus the derived ratios.
type Report struct {
	PrecisionNum int
	PrecisionDen int
	RecallNum    int
	RecallDen    int

	Precision float64
	Recall    float64
	AER       float64

	// AERDefined is false when no predicted or sure alignments exist, in
	// which case AER carries no information and is left zero.
	AERDefined bool
}

// Evaluate scores predicted alignments against the reference annotations.
func Evaluate(reference []align.LabeledAlignment, predicted [][]align.Pair) Report {
	var r Report
	r.PrecisionNum, r.PrecisionDen = align.Precision(reference, predicted)
	r.RecallNum, r.RecallDen = align.Recall(reference, predicted)

	if r.PrecisionDen > 0 {
		r.Precision = float64(r.PrecisionNum) / float64(r.PrecisionDen)
	}
	if r.RecallDen > 0 {
		r.Recall = float64(r.RecallNum) / float64(r.RecallDen)
	}
	if aer, err := align.AER(reference, predicted); err == nil {
		r.AER = aer
		r.AERDefined = true
	}
	return r
}
