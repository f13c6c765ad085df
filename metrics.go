package align

import "fmt"

// Precision returns the numerator and denominator of alignment precision:
// the number of predicted pairs found in the possible sets, and the total
// number of predicted pairs. Predicted duplicates count once per occurrence.
// Only the zipped overlap of reference and predicted contributes to the
// numerator; the denominator counts every predicted pair regardless.
//
// Precision scores against a repaired view of the reference (see Repair)
// and never mutates its inputs.
func Precision(reference []LabeledAlignment, predicted [][]Pair) (numerator, denominator int) {
	repaired := Repair(reference)

	for i := 0; i < len(repaired) && i < len(predicted); i++ {
		possible := pairSet(repaired[i].Possible)
		for _, p := range predicted[i] {
			if _, ok := possible[p]; ok {
				numerator++
			}
		}
	}
	for _, sent := range predicted {
		denominator += len(sent)
	}
	return numerator, denominator
}

// Recall returns the numerator and denominator of alignment recall: the
// number of predicted pairs found in the sure sets, and the total number of
// sure pairs. Only the zipped overlap of reference and predicted contributes
// to the numerator; the denominator counts every sure pair regardless.
// Recall reads only the sure sets and is therefore unaffected by Repair.
func Recall(reference []LabeledAlignment, predicted [][]Pair) (numerator, denominator int) {
	for i := 0; i < len(reference) && i < len(predicted); i++ {
		sure := pairSet(reference[i].Sure)
		for _, p := range predicted[i] {
			if _, ok := sure[p]; ok {
				numerator++
			}
		}
	}
	for _, sent := range reference {
		denominator += len(sent.Sure)
	}
	return numerator, denominator
}

// AER computes the alignment error rate,
//
//	1 - (|predicted ∩ possible| + |predicted ∩ sure|) / (|predicted| + |sure|)
//
// from the integer sums of Precision and Recall, weighting sentences by
// alignment count rather than averaging per-sentence ratios. It returns
// ErrUndefinedMetric when both the predicted and sure sets are empty across
// the whole corpus.
func AER(reference []LabeledAlignment, predicted [][]Pair) (float64, error) {
	pNum, pDen := Precision(reference, predicted)
	rNum, rDen := Recall(reference, predicted)

	if pDen+rDen == 0 {
		return 0, fmt.Errorf("%w: no predicted or sure alignments", ErrUndefinedMetric)
	}
	return 1 - float64(pNum+rNum)/float64(pDen+rDen), nil
}

func pairSet(pairs []Pair) map[Pair]struct{} {
	set := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}
	return set
}
