package nlp

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/usama6513/convert-api/internal/domain"
)

// Extraction is the best-effort result of scanning input text for a
// conversion request. Value is nil when no parseable number was found;
// FromUnit and ToUnit are empty when fewer than one or two units were
// detected. Callers surface a distinct error per missing field.
type Extraction struct {
	Value    *float64
	FromUnit string
	ToUnit   string
}

// detection pairs a token start index with a canonical unit name (or
// an uppercased currency-code guess). Ordering by index preserves the
// left-to-right appearance order in the source text.
type detection struct {
	index int
	unit  string
}

// Extractor turns free-form text into (value, from-unit, to-unit)
// triples using the unit vocabulary and the phrase matcher.
type Extractor struct {
	vocab  *domain.Vocabulary
	logger *slog.Logger
}

// NewExtractor creates an Extractor backed by the given vocabulary.
func NewExtractor(vocab *domain.Vocabulary, logger *slog.Logger) *Extractor {
	return &Extractor{
		vocab:  vocab,
		logger: logger,
	}
}

// Extract tokenizes text, claims multi-word unit expressions, and then
// scans the remaining tokens for a numeric value, unit aliases, and
// 3-letter currency-code guesses. When multiple number tokens appear,
// the last one wins; the first two detected units become from-unit and
// to-unit. Malformed text never produces an error: absent fields are
// reported as zero values in the Extraction.
func (e *Extractor) Extract(text string) Extraction {
	tokens := Tokenize(text)
	spans := findPhrases(tokens)

	claimed := make([]bool, len(tokens))
	var detections []detection

	// Multi-word expressions first. A span that does not resolve in
	// the vocabulary still keeps its tokens claimed, so its pieces are
	// not re-detected as single-token units.
	for _, span := range spans {
		for i := span.Start; i < span.End; i++ {
			claimed[i] = true
		}
		phrase := spanText(tokens, span)
		if unit, ok := e.vocab.ResolveAlias(phrase); ok {
			detections = append(detections, detection{index: span.Start, unit: unit})
		}
	}

	var value *float64
	for i, tok := range tokens {
		if claimed[i] {
			continue
		}
		if tok.Kind == TokenNumber {
			if v, err := strconv.ParseFloat(tok.Text, 64); err == nil {
				value = &v
			}
			continue
		}
		if n, ok := parseNumberWord(tok.Text); ok {
			v := n
			value = &v
		}
		if unit, ok := e.vocab.ResolveAlias(tok.Text); ok {
			detections = append(detections, detection{index: i, unit: unit})
		} else if isCurrencyGuess(tok.Text) {
			detections = append(detections, detection{index: i, unit: strings.ToUpper(tok.Text)})
		}
	}

	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].index < detections[j].index
	})

	result := Extraction{Value: value}
	if len(detections) > 0 {
		result.FromUnit = detections[0].unit
	}
	if len(detections) > 1 {
		result.ToUnit = detections[1].unit
	}

	e.logger.Debug("extraction finished",
		"text", text,
		"token_count", len(tokens),
		"phrase_spans", len(spans),
		"detections", len(detections),
		"from_unit", result.FromUnit,
		"to_unit", result.ToUnit,
		"has_value", value != nil)

	return result
}

// spanText joins a span's token texts with single spaces, lowercased,
// which is the normalized form the multi-word alias keys use.
func spanText(tokens []Token, span Span) string {
	parts := make([]string, 0, span.Len())
	for i := span.Start; i < span.End; i++ {
		parts = append(parts, tokens[i].Text)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// isCurrencyGuess reports whether a token looks like a 3-letter
// currency code: exactly three alphabetic characters that are neither
// a known alias (checked by the caller first) nor a spelled-out number
// word. The alias table always wins; this is a deliberate fallback
// that can false-positive on unlisted 3-letter unit abbreviations.
func isCurrencyGuess(token string) bool {
	if utf8.RuneCountInString(token) != 3 {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return !isNumberWord(token)
}
