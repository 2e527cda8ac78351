package nlp

import (
	"sort"
	"strings"
)

// patternElement is one ordered constraint of a phrase pattern: either
// a literal lowercase text match or a punctuation match, optionally
// skippable.
type patternElement struct {
	literal  string
	punct    bool
	optional bool
}

func lit(text string) patternElement { return patternElement{literal: text} }

func optPunct() patternElement { return patternElement{punct: true, optional: true} }

// phrasePatterns lists the known multi-word unit expressions. Order
// does not matter: overlaps are resolved afterwards by preferring
// earlier, longer spans.
var phrasePatterns = [][]patternElement{
	// Fuel economy
	{lit("miles"), lit("per"), lit("gallon")},
	{lit("us"), lit("mpg")},
	{lit("mpg")},
	{lit("mpg"), optPunct(), lit("uk")},
	{lit("uk"), lit("mpg")},
	{lit("miles"), lit("per"), lit("gallon"), optPunct(), lit("uk")},
	{lit("km/l")},
	{lit("kilometers"), lit("per"), lit("liter")},
	{lit("kilometres"), lit("per"), lit("litre")},
	{lit("l/100km")},
	{lit("l/100"), lit("km")},
	{lit("liters"), lit("per"), lit("100"), lit("kilometers")},
	{lit("litres"), lit("per"), lit("100"), lit("kilometres")},
	{lit("liters"), lit("per"), lit("100"), lit("km")},
	{lit("litres"), lit("per"), lit("100"), lit("km")},
	// Energy (watt-hours)
	{lit("watt"), lit("hour")},
	{lit("watt"), lit("hours")},
	// Frequency (revolutions per minute)
	{lit("revolutions"), lit("per"), lit("minute")},
	{lit("revs"), lit("per"), lit("minute")},
	{lit("rpm")},
}

// Span is a contiguous half-open token range [Start, End) claimed by a
// phrase pattern.
type Span struct {
	Start int
	End   int
}

// Len returns the number of tokens the span covers.
func (s Span) Len() int { return s.End - s.Start }

// findPhrases locates all multi-word unit expressions in the token
// sequence and resolves overlaps. Raw matches from every pattern and
// every starting position are sorted by (start ascending, length
// descending) and then accepted greedily, skipping any match that
// touches an already claimed position. The result is a set of
// non-overlapping spans in which earlier and longer expressions win.
func findPhrases(tokens []Token) []Span {
	var raw []Span
	for _, pattern := range phrasePatterns {
		for start := range tokens {
			if end, ok := matchAt(tokens, start, pattern); ok {
				raw = append(raw, Span{Start: start, End: end})
			}
		}
	}

	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].Start != raw[j].Start {
			return raw[i].Start < raw[j].Start
		}
		return raw[i].Len() > raw[j].Len()
	})

	claimed := make([]bool, len(tokens))
	var accepted []Span
	for _, m := range raw {
		overlaps := false
		for i := m.Start; i < m.End; i++ {
			if claimed[i] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for i := m.Start; i < m.End; i++ {
			claimed[i] = true
		}
		accepted = append(accepted, m)
	}
	return accepted
}

// matchAt tries a pattern against tokens starting at start. Optional
// elements consume a matching token when present and are satisfied
// vacuously otherwise. Returns the end index past the matched span.
func matchAt(tokens []Token, start int, pattern []patternElement) (int, bool) {
	pos := start
	for _, elem := range pattern {
		if elem.optional {
			if pos < len(tokens) && elemMatches(tokens[pos], elem) {
				pos++
			}
			continue
		}
		if pos >= len(tokens) || !elemMatches(tokens[pos], elem) {
			return 0, false
		}
		pos++
	}
	return pos, true
}

func elemMatches(tok Token, elem patternElement) bool {
	if elem.punct {
		return tok.Kind == TokenPunct
	}
	return strings.ToLower(tok.Text) == elem.literal
}
