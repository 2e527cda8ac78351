package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// TokenKind classifies a token for matching purposes.
type TokenKind int

const (
	// TokenWord covers words, abbreviations, and symbol forms such as
	// "km/h" or "µm".
	TokenWord TokenKind = iota

	// TokenNumber covers numeric literals, optionally with a decimal
	// point ("5", "3.14").
	TokenNumber

	// TokenPunct covers single punctuation runes split off from the
	// surrounding words.
	TokenPunct
)

// Token is one unit of tokenized input text. Position is implicit in
// the token's index within the returned slice.
type Token struct {
	Text string
	Kind TokenKind
}

var numberPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Tokenize splits text into word, number, and punctuation tokens.
// Whitespace separates tokens; leading and trailing punctuation runes
// are peeled off into their own tokens so that "mpg, uk" yields three
// tokens. Interior punctuation is kept, preserving forms like
// "l/100km", "r.p.m" and decimals.
func Tokenize(text string) []Token {
	var tokens []Token
	for _, field := range strings.Fields(text) {
		var leading, trailing []Token
		chunk := field

		for chunk != "" {
			r := firstRune(chunk)
			if !isEdgePunct(r) {
				break
			}
			leading = append(leading, Token{Text: string(r), Kind: TokenPunct})
			chunk = chunk[len(string(r)):]
		}
		for chunk != "" {
			r := lastRune(chunk)
			if !isEdgePunct(r) {
				break
			}
			// Prepend so trailing punctuation stays in source order.
			trailing = append([]Token{{Text: string(r), Kind: TokenPunct}}, trailing...)
			chunk = chunk[:len(chunk)-len(string(r))]
		}

		tokens = append(tokens, leading...)
		if chunk != "" {
			tokens = append(tokens, Token{Text: chunk, Kind: classify(chunk)})
		}
		tokens = append(tokens, trailing...)
	}
	return tokens
}

func classify(text string) TokenKind {
	if numberPattern.MatchString(text) {
		return TokenNumber
	}
	return TokenWord
}

// isEdgePunct reports whether a rune should be split off a token edge.
// Slashes never split: they join compound symbols like "km/h" and
// "l/100km". Dots only occur at token edges as sentence punctuation.
func isEdgePunct(r rune) bool {
	if r == '/' {
		return false
	}
	return unicode.IsPunct(r)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
