package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	align "github.com/jamesainslie/go-align"
	"github.com/jamesainslie/go-align/internal/bench"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML benchmark config (optional)")
	flag.Parse()

	// An optional .env supplies ALIGN_* overrides for the config file.
	_ = godotenv.Load()

	cfg, err := bench.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	pairs, reference, err := align.ReadCorpus(cfg.CorpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d sentence pairs from %s\n\n", len(pairs), cfg.CorpusPath)

	runSweep(pairs, cfg.Cutoffs)

	if cfg.PredictionsPath != "" {
		predicted, err := bench.ReadPredictions(cfg.PredictionsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading predictions: %v\n", err)
			os.Exit(1)
		}
		printReport(bench.Evaluate(reference, predicted))
	}
}

func runSweep(pairs []align.SentencePair, cutoffs []int) {
	results := bench.Sweep(pairs, cutoffs)

	fmt.Println("Vocabulary Coverage Sweep")
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("%-10s %-10s %-10s %-10s %-9s %-9s\n",
		"Cutoff", "SrcVocab", "TgtVocab", "Pairs", "SrcKept", "TgtKept")

	for _, r := range results {
		cutoff := "full"
		if r.Cutoff > 0 {
			cutoff = fmt.Sprintf("%d", r.Cutoff)
		}
		fmt.Printf("%-10s %-10d %-10d %-10d %-9.3f %-9.3f\n",
			cutoff, r.SourceVocab, r.TargetVocab, r.RetainedPairs,
			r.SourceTokenKept, r.TargetTokenKept)
	}
	fmt.Println(strings.Repeat("-", 64))
}

func printReport(r bench.Report) {
	fmt.Println("\nAlignment Evaluation")
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("Precision: %d/%d = %.4f\n", r.PrecisionNum, r.PrecisionDen, r.Precision)
	fmt.Printf("Recall:    %d/%d = %.4f\n", r.RecallNum, r.RecallDen, r.Recall)
	if r.AERDefined {
		fmt.Printf("AER:       %.4f\n", r.AER)
	} else {
		fmt.Println("AER:       undefined (no predicted or sure alignments)")
	}
}
