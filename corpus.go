package align

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCorpus parses a corpus file into sentence pairs and their reference
// alignments. The two slices are index-aligned: sentence i corresponds to
// alignment i. Sentences are whitespace-tokenized with no further
// normalization; missing or empty sure/possible annotations yield empty
// alignment lists.
//
// Bare ampersands in the document, which are malformed markup, are escaped
// in memory before parsing. The source file is never written back.
func ReadCorpus(path string, opts ...Option) ([]SentencePair, []LabeledAlignment, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading corpus file: %w", err)
	}

	pairs, alignments, err := parseCorpus(bytes.NewReader(escapeBareAmpersands(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.logger.Debug("corpus loaded", "path", path, "sentences", len(pairs))
	return pairs, alignments, nil
}

// ParsePairs parses a whitespace-separated sequence of "i-j" alignment
// tokens into 1-indexed position pairs. An empty or all-whitespace string
// yields an empty list. It returns ErrMalformedAlignment for any token that
// does not split into exactly two integers.
func ParsePairs(text string) ([]Pair, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, nil
	}

	pairs := make([]Pair, 0, len(fields))
	for _, field := range fields {
		s, t, ok := strings.Cut(field, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedAlignment, field)
		}
		src, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedAlignment, field)
		}
		tgt, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedAlignment, field)
		}
		pairs = append(pairs, Pair{Source: src, Target: tgt})
	}
	return pairs, nil
}

func parseCorpus(r io.Reader) ([]SentencePair, []LabeledAlignment, error) {
	dec := xml.NewDecoder(r)

	var (
		pairs      []SentencePair
		alignments []LabeledAlignment
		depth      int
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 {
				pair, alignment, err := parseRecord(dec, t)
				if err != nil {
					return nil, nil, fmt.Errorf("sentence %d: %w", len(pairs)+1, err)
				}
				pairs = append(pairs, pair)
				alignments = append(alignments, alignment)
				depth-- // parseRecord consumed the record's end element
			}
		case xml.EndElement:
			depth--
		}
	}
	return pairs, alignments, nil
}

// parseRecord reads one sentence record. The <english> element is the
// source sentence; <sure> and <possible> carry the alignment annotations;
// the first remaining child element is the target sentence regardless of
// its language tag.
func parseRecord(dec *xml.Decoder, start xml.StartElement) (SentencePair, LabeledAlignment, error) {
	var (
		pair       SentencePair
		alignment  LabeledAlignment
		seenSource bool
		seenTarget bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			return SentencePair{}, LabeledAlignment{}, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var text string
			if err := dec.DecodeElement(&text, &t); err != nil {
				return SentencePair{}, LabeledAlignment{}, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
			}

			switch {
			case t.Name.Local == "english":
				pair.Source = strings.Fields(text)
				seenSource = true
			case t.Name.Local == "sure":
				if alignment.Sure, err = ParsePairs(text); err != nil {
					return SentencePair{}, LabeledAlignment{}, err
				}
			case t.Name.Local == "possible":
				if alignment.Possible, err = ParsePairs(text); err != nil {
					return SentencePair{}, LabeledAlignment{}, err
				}
			case !seenTarget:
				pair.Target = strings.Fields(text)
				seenTarget = true
			}

		case xml.EndElement:
			if t.Name == start.Name {
				if !seenSource || !seenTarget {
					return SentencePair{}, LabeledAlignment{},
						fmt.Errorf("%w: sentence record missing source or target text", ErrMalformedCorpus)
				}
				return pair, alignment, nil
			}
		}
	}
}

// escapeBareAmpersands rewrites every & that does not begin a valid entity
// or character reference into &amp;, leaving already-escaped text intact.
// Token content is unchanged: the escaped form decodes back to the same
// characters.
func escapeBareAmpersands(data []byte) []byte {
	if !bytes.ContainsRune(data, '&') {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + 64)
	for i := 0; i < len(data); i++ {
		if data[i] == '&' && !isReference(data[i:]) {
			buf.WriteString("&amp;")
			continue
		}
		buf.WriteByte(data[i])
	}
	return buf.Bytes()
}

// isReference reports whether data, which starts with '&', begins a valid
// XML entity or character reference.
func isReference(data []byte) bool {
	end := bytes.IndexByte(data, ';')
	if end < 2 {
		return false
	}

	ref := data[1:end]
	switch string(ref) {
	case "amp", "lt", "gt", "quot", "apos":
		return true
	}
	if ref[0] != '#' {
		return false
	}

	digits := ref[1:]
	hex := false
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		hex = true
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return false
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
		case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		default:
			return false
		}
	}
	return true
}
