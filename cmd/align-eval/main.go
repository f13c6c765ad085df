package main

import (
	"flag"
	"fmt"
	"os"

	align "github.com/jamesainslie/go-align"
	"github.com/jamesainslie/go-align/internal/bench"
)

func main() {
	corpusPath := flag.String("corpus", "", "Path to the reference corpus file")
	predictionsPath := flag.String("predictions", "", "Path to the predicted alignments file")

	flag.Parse()

	if *corpusPath == "" || *predictionsPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: align-eval -corpus CORPUS -predictions PREDICTIONS")
		flag.PrintDefaults()
		os.Exit(1)
	}

	_, reference, err := align.ReadCorpus(*corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}

	predicted, err := bench.ReadPredictions(*predictionsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading predictions: %v\n", err)
		os.Exit(1)
	}

	report := bench.Evaluate(reference, predicted)

	fmt.Printf("Sentences: %d reference, %d predicted\n", len(reference), len(predicted))
	fmt.Printf("Precision: %d/%d = %.4f\n", report.PrecisionNum, report.PrecisionDen, report.Precision)
	fmt.Printf("Recall:    %d/%d = %.4f\n", report.RecallNum, report.RecallDen, report.Recall)
	if report.AERDefined {
		fmt.Printf("AER:       %.4f\n", report.AER)
	} else {
		fmt.Println("AER:       undefined (no predicted or sure alignments)")
	}
}
