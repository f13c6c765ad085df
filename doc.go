// Package align prepares bilingual, sentence-aligned parallel corpora for
// word-alignment models and evaluates alignment predictions against
// sure/possible reference annotations.
//
// # Quick Start
//
//	pairs, reference, err := align.ReadCorpus("testdata/corpus.wa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	source, target := tokenizer.Build(pairs, 10000)
//	tokenized := tokenizer.Tokenize(pairs, source, target)
//
//	// ... run an aligner over tokenized to obtain predictions ...
//
//	aer, err := align.AER(reference, predicted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("AER: %.4f\n", aer)
//
// # Reference Repair
//
// Annotated corpora do not always keep every sure alignment inside the
// possible set, even though the metrics assume it. The metric functions
// score against a repaired view and never mutate their inputs; Repair is
// exported for callers that want the repaired reference directly.
//
// # Corpus Format
//
// The corpus is an XML document of sentence records, each holding an
// <english> source sentence, a target-language sentence, and <sure> and
// <possible> alignment annotations as whitespace-separated "i-j" position
// pairs (1-indexed). Real corpora contain bare ampersands; ReadCorpus
// escapes them in memory before parsing and never rewrites the source file.
package align
