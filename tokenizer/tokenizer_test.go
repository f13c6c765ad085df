package tokenizer

import (
	"reflect"
	"testing"

	align "github.com/jamesainslie/go-align"
)

func TestTokenize_DropsUnknownTokens(t *testing.T) {
	source := Vocabulary{"a": 0}
	target := Vocabulary{"b": 1}

	pairs := []align.SentencePair{
		{Source: []string{"a", "x"}, Target: []string{"b"}},
	}

	got := Tokenize(pairs, source, target)

	if len(got) != 1 {
		t.Fatalf("got %d pairs, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].SourceTokens, []int32{0}) {
		t.Errorf("SourceTokens = %v, want [0]", got[0].SourceTokens)
	}
	if !reflect.DeepEqual(got[0].TargetTokens, []int32{1}) {
		t.Errorf("TargetTokens = %v, want [1]", got[0].TargetTokens)
	}
}

func TestTokenize_ExcludesEmptySides(t *testing.T) {
	source := Vocabulary{"a": 0}
	target := Vocabulary{"b": 0}

	pairs := []align.SentencePair{
		{Source: []string{"x"}, Target: []string{"b"}}, // source side empties out
		{Source: []string{"a"}, Target: []string{"y"}}, // target side empties out
		{Source: []string{"a"}, Target: []string{"b"}},
	}

	got := Tokenize(pairs, source, target)

	if len(got) != 1 {
		t.Fatalf("got %d pairs, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].SourceTokens, []int32{0}) || !reflect.DeepEqual(got[0].TargetTokens, []int32{0}) {
		t.Errorf("surviving pair = %v, want ([0], [0])", got[0])
	}
}

func TestTokenize_PreservesOrder(t *testing.T) {
	source := Vocabulary{"a": 0, "b": 1, "c": 2}
	target := Vocabulary{"x": 0}

	pairs := []align.SentencePair{
		{Source: []string{"c", "a"}, Target: []string{"x"}},
		{Source: []string{"q"}, Target: []string{"x"}},
		{Source: []string{"b"}, Target: []string{"x"}},
	}

	got := Tokenize(pairs, source, target)

	if len(got) != 2 {
		t.Fatalf("got %d pairs, want 2", len(got))
	}
	if !reflect.DeepEqual(got[0].SourceTokens, []int32{2, 0}) {
		t.Errorf("first pair = %v, want [2 0]", got[0].SourceTokens)
	}
	if !reflect.DeepEqual(got[1].SourceTokens, []int32{1}) {
		t.Errorf("second pair = %v, want [1]", got[1].SourceTokens)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	got := Tokenize(nil, Vocabulary{}, Vocabulary{})
	if len(got) != 0 {
		t.Errorf("got %d pairs, want 0", len(got))
	}
}

func TestTokenize_RoundTripWithBuild(t *testing.T) {
	pairs := []align.SentencePair{
		{Source: []string{"the", "cat"}, Target: []string{"kocka"}},
		{Source: []string{"the", "dog"}, Target: []string{"pes"}},
	}

	source, target := Build(pairs, 0)
	got := Tokenize(pairs, source, target)

	if len(got) != len(pairs) {
		t.Fatalf("got %d pairs, want %d", len(got), len(pairs))
	}
	for i, tok := range got {
		if len(tok.SourceTokens) != len(pairs[i].Source) || len(tok.TargetTokens) != len(pairs[i].Target) {
			t.Errorf("pair %d: lengths %d/%d, want %d/%d", i,
				len(tok.SourceTokens), len(tok.TargetTokens), len(pairs[i].Source), len(pairs[i].Target))
		}
	}
}
