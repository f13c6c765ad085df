package align

// Pair is a single word-alignment edge between a source and a target token.
// Positions are 1-indexed into the sentence token sequences.
type Pair struct {
	Source int
	Target int
}

// SentencePair holds the token sequences of one parallel sentence.
// It is never modified after loading.
type SentencePair struct {
	Source []string
	Target []string
}

// TokenizedSentencePair holds vocabulary indices for one parallel sentence.
// Both sides are non-empty by construction: pairs that would tokenize to an
// empty side are filtered out, not materialized with empty values.
type TokenizedSentencePair struct {
	SourceTokens []int32
	TargetTokens []int32
}

// LabeledAlignment holds the reference annotations for one sentence: the
// sure alignments (annotated with certainty) and the possible alignments
// (annotated as plausible). Possible is intended to be a superset of Sure,
// but raw annotation data may violate that; see Repair.
type LabeledAlignment struct {
	Sure     []Pair
	Possible []Pair
}

// Repair returns a copy of reference in which every sure pair also appears
// in the sentence's possible list, appending missing pairs in sure order.
// Sure lists are shared with the input and never modified; possible lists
// are copied before anything is appended. Repair is idempotent.
func Repair(reference []LabeledAlignment) []LabeledAlignment {
	repaired := make([]LabeledAlignment, len(reference))
	for i, sent := range reference {
		possible := make([]Pair, len(sent.Possible), len(sent.Possible)+len(sent.Sure))
		copy(possible, sent.Possible)

		seen := make(map[Pair]struct{}, len(possible))
		for _, p := range possible {
			seen[p] = struct{}{}
		}
		for _, p := range sent.Sure {
			if _, ok := seen[p]; !ok {
				possible = append(possible, p)
				seen[p] = struct{}{}
			}
		}

		repaired[i] = LabeledAlignment{Sure: sent.Sure, Possible: possible}
	}
	return repaired
}
