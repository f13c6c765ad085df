// Package bench provides the evaluation and corpus-coverage harness behind
// the align-eval and align-bench commands.
package bench

import (
	"bufio"
	"fmt"
	"os"

	align "github.com/jamesainslie/go-align"
)

// ReadPredictions loads predicted alignments from a text file: one sentence
// per line of whitespace-separated "i-j" tokens, index-aligned with the
// reference corpus. A blank line is a sentence with no predictions.
func ReadPredictions(path string) ([][]align.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening predictions: %w", err)
	}
	defer func() { _ = f.Close() }()

	var predicted [][]align.Pair
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		pairs, err := align.ParsePairs(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		predicted = append(predicted, pairs)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading predictions: %w", err)
	}
	return predicted, nil
}
