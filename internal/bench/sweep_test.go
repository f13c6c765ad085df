package bench

import (
	"math"
	"testing"

	align "github.com/jamesainslie/go-align"
)

func TestSweep(t *testing.T) {
	pairs := []align.SentencePair{
		{Source: []string{"the", "cat", "the"}, Target: []string{"kocka"}},
		{Source: []string{"dog"}, Target: []string{"pes"}},
	}

	results := Sweep(pairs, []int{0, 1})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	full := results[0]
	if full.Cutoff != 0 {
		t.Errorf("Cutoff = %d, want 0", full.Cutoff)
	}
	if full.SourceVocab != 3 || full.TargetVocab != 2 {
		t.Errorf("vocab sizes = %d/%d, want 3/2", full.SourceVocab, full.TargetVocab)
	}
	if full.RetainedPairs != 2 {
		t.Errorf("RetainedPairs = %d, want 2", full.RetainedPairs)
	}
	if full.SourceTokenKept != 1 || full.TargetTokenKept != 1 {
		t.Errorf("full coverage = %v/%v, want 1/1", full.SourceTokenKept, full.TargetTokenKept)
	}

	// cutoff 1 keeps only "the" and "kocka"; sentence 2 drops entirely.
	bounded := results[1]
	if bounded.SourceVocab != 1 || bounded.TargetVocab != 1 {
		t.Errorf("bounded vocab sizes = %d/%d, want 1/1", bounded.SourceVocab, bounded.TargetVocab)
	}
	if bounded.RetainedPairs != 1 {
		t.Errorf("bounded RetainedPairs = %d, want 1", bounded.RetainedPairs)
	}
	if math.Abs(bounded.SourceTokenKept-0.5) > 1e-12 {
		t.Errorf("bounded SourceTokenKept = %v, want 0.5", bounded.SourceTokenKept)
	}
	if math.Abs(bounded.TargetTokenKept-0.5) > 1e-12 {
		t.Errorf("bounded TargetTokenKept = %v, want 0.5", bounded.TargetTokenKept)
	}
}

func TestSweep_EmptyCorpus(t *testing.T) {
	results := Sweep(nil, []int{0})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].SourceTokenKept != 0 || results[0].TargetTokenKept != 0 {
		t.Errorf("expected zero coverage on empty corpus, got %+v", results[0])
	}
}
