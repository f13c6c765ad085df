// Package tokenizer builds per-language vocabularies from a parallel corpus
// and converts sentence pairs into vocabulary-index sequences for an
// alignment model to consume.
package tokenizer

import (
	"sort"

	align "github.com/jamesainslie/go-align"
)

// Vocabulary maps a token to its dense index in [0, len(vocabulary)).
// A vocabulary is built once from a corpus snapshot and read-only afterward.
type Vocabulary map[string]int32

// counter tracks token frequencies across one language side. First-seen
// order is recorded explicitly because it determines index assignment.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(token string) {
	if _, ok := c.counts[token]; !ok {
		c.order = append(c.order, token)
	}
	c.counts[token]++
}

// vocabulary assigns indices to the counted tokens. With cutoff <= 0 the
// full vocabulary is kept in first-seen order; with a positive cutoff the
// cutoff most frequent tokens are kept, ranked by descending frequency with
// first-seen order breaking ties.
func (c *counter) vocabulary(cutoff int) Vocabulary {
	tokens := c.order
	if cutoff > 0 {
		ranked := make([]string, len(c.order))
		copy(ranked, c.order)
		sort.SliceStable(ranked, func(i, j int) bool {
			return c.counts[ranked[i]] > c.counts[ranked[j]]
		})
		if cutoff < len(ranked) {
			ranked = ranked[:cutoff]
		}
		tokens = ranked
	}

	vocab := make(Vocabulary, len(tokens))
	for i, tok := range tokens {
		vocab[tok] = int32(i)
	}
	return vocab
}

// Build scans sentence pairs and returns one vocabulary per language side.
// cutoff bounds each vocabulary's size; zero or negative means unbounded.
//
// Note the two branches order indices differently: an unbounded vocabulary
// follows first-seen order over the corpus and ignores frequency entirely,
// while a bounded one ranks by descending frequency (first-seen order breaks
// ties). Downstream consumers depend on this exact assignment, so it is kept
// as documented rather than unified.
func Build(pairs []align.SentencePair, cutoff int) (source, target Vocabulary) {
	src := newCounter()
	tgt := newCounter()

	for _, pair := range pairs {
		for _, tok := range pair.Source {
			src.add(tok)
		}
		for _, tok := range pair.Target {
			tgt.add(tok)
		}
	}

	return src.vocabulary(cutoff), tgt.vocabulary(cutoff)
}
