package bench

import (
	align "github.com/jamesainslie/go-align"
	"github.com/jamesainslie/go-align/tokenizer"
)

// CoverageResult holds corpus-preparation statistics for one vocabulary
// frequency cutoff.
type CoverageResult struct {
	Cutoff        int // <= 0 means unbounded
	SourceVocab   int
	TargetVocab   int
	RetainedPairs int

	// Fraction of token occurrences per side that survive tokenization,
	// including losses from excluded sentence pairs.
	SourceTokenKept float64
	TargetTokenKept float64
}

// Sweep builds vocabularies and tokenizes the corpus once per cutoff,
// reporting vocabulary sizes, retained sentence pairs, and token coverage.
func Sweep(pairs []align.SentencePair, cutoffs []int) []CoverageResult {
	var srcTotal, tgtTotal int
	for _, pair := range pairs {
		srcTotal += len(pair.Source)
		tgtTotal += len(pair.Target)
	}

	results := make([]CoverageResult, 0, len(cutoffs))
	for _, cutoff := range cutoffs {
		source, target := tokenizer.Build(pairs, cutoff)
		tokenized := tokenizer.Tokenize(pairs, source, target)

		var srcKept, tgtKept int
		for _, sent := range tokenized {
			srcKept += len(sent.SourceTokens)
			tgtKept += len(sent.TargetTokens)
		}

		res := CoverageResult{
			Cutoff:        cutoff,
			SourceVocab:   len(source),
			TargetVocab:   len(target),
			RetainedPairs: len(tokenized),
		}
		if srcTotal > 0 {
			res.SourceTokenKept = float64(srcKept) / float64(srcTotal)
		}
		if tgtTotal > 0 {
			res.TargetTokenKept = float64(tgtKept) / float64(tgtTotal)
		}
		results = append(results, res)
	}
	return results
}
