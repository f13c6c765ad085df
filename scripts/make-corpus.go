//go:build ignore

// Build a labeled alignment corpus XML file from plain parallel text.
// Inputs are one tokenized sentence per line for each language side, plus
// optional sure/possible annotation files with one line of "i-j" pairs per
// sentence (blank lines allowed).
// Usage: go run ./scripts/make-corpus.go -source en.txt -target cs.txt -out corpus.wa
package main

import (
	"bufio"
	"encoding/xml"
	"flag"
	"fmt"
	"os"
)

func main() {
	sourcePath := flag.String("source", "", "Source-language sentences, one per line (required)")
	targetPath := flag.String("target", "", "Target-language sentences, one per line (required)")
	targetTag := flag.String("target-tag", "czech", "Element name for the target sentence")
	surePath := flag.String("sure", "", "Sure alignments, one line of i-j pairs per sentence")
	possiblePath := flag.String("possible", "", "Possible alignments, one line of i-j pairs per sentence")
	outPath := flag.String("out", "corpus.wa", "Output corpus file")

	flag.Parse()

	if *sourcePath == "" || *targetPath == "" {
		fmt.Fprintln(os.Stderr, "error: -source and -target are required")
		flag.Usage()
		os.Exit(1)
	}

	source := mustReadLines(*sourcePath)
	target := mustReadLines(*targetPath)
	if len(source) != len(target) {
		fmt.Fprintf(os.Stderr, "error: %d source sentences vs %d target sentences\n", len(source), len(target))
		os.Exit(1)
	}

	sure := readOptionalLines(*surePath, len(source))
	possible := readOptionalLines(*possiblePath, len(source))

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "<corpus>")
	for i := range source {
		fmt.Fprintln(w, "  <s>")
		writeElement(w, "english", source[i])
		writeElement(w, *targetTag, target[i])
		writeElement(w, "sure", sure[i])
		writeElement(w, "possible", possible[i])
		fmt.Fprintln(w, "  </s>")
	}
	fmt.Fprintln(w, "</corpus>")

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d sentence records to %s\n", len(source), *outPath)
}

func writeElement(w *bufio.Writer, tag, text string) {
	fmt.Fprintf(w, "    <%s>", tag)
	_ = xml.EscapeText(w, []byte(text))
	fmt.Fprintf(w, "</%s>\n", tag)
}

func mustReadLines(path string) []string {
	lines, err := readLines(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	return lines
}

// readOptionalLines returns n empty lines when path is empty, and insists on
// exactly n lines otherwise.
func readOptionalLines(path string, n int) []string {
	if path == "" {
		return make([]string, n)
	}
	lines := mustReadLines(path)
	if len(lines) != n {
		fmt.Fprintf(os.Stderr, "error: %s has %d lines, want %d\n", path, len(lines), n)
		os.Exit(1)
	}
	return lines
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
