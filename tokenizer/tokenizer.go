package tokenizer

import (
	align "github.com/jamesainslie/go-align"
)

// Tokenize converts sentence pairs into vocabulary-index sequences. Tokens
// absent from their side's vocabulary are dropped, and a pair whose source
// or target side ends up empty is excluded from the result entirely. Output
// order matches input order minus exclusions, so the result is not
// index-aligned with the input once any pair has been excluded.
func Tokenize(pairs []align.SentencePair, source, target Vocabulary) []align.TokenizedSentencePair {
	tokenized := make([]align.TokenizedSentencePair, 0, len(pairs))
	for _, pair := range pairs {
		src := indices(pair.Source, source)
		tgt := indices(pair.Target, target)
		if len(src) == 0 || len(tgt) == 0 {
			continue
		}
		tokenized = append(tokenized, align.TokenizedSentencePair{
			SourceTokens: src,
			TargetTokens: tgt,
		})
	}
	return tokenized
}

func indices(tokens []string, vocab Vocabulary) []int32 {
	var ids []int32
	for _, tok := range tokens {
		if id, ok := vocab[tok]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
