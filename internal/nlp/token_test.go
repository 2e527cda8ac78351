package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected []Token
	}{
		{
			name: "simple phrase",
			text: "convert 5 meters to feet",
			expected: []Token{
				{Text: "convert", Kind: TokenWord},
				{Text: "5", Kind: TokenNumber},
				{Text: "meters", Kind: TokenWord},
				{Text: "to", Kind: TokenWord},
				{Text: "feet", Kind: TokenWord},
			},
		},
		{
			name: "decimal number",
			text: "3.5 kg",
			expected: []Token{
				{Text: "3.5", Kind: TokenNumber},
				{Text: "kg", Kind: TokenWord},
			},
		},
		{
			name: "trailing comma peels off",
			text: "mpg, uk",
			expected: []Token{
				{Text: "mpg", Kind: TokenWord},
				{Text: ",", Kind: TokenPunct},
				{Text: "uk", Kind: TokenWord},
			},
		},
		{
			name: "parenthesized word",
			text: "(uk)",
			expected: []Token{
				{Text: "(", Kind: TokenPunct},
				{Text: "uk", Kind: TokenWord},
				{Text: ")", Kind: TokenPunct},
			},
		},
		{
			name: "slash compounds stay whole",
			text: "l/100km to km/l",
			expected: []Token{
				{Text: "l/100km", Kind: TokenWord},
				{Text: "to", Kind: TokenWord},
				{Text: "km/l", Kind: TokenWord},
			},
		},
		{
			name: "interior dots survive",
			text: "1000 r.p.m.",
			expected: []Token{
				{Text: "1000", Kind: TokenNumber},
				{Text: "r.p.m", Kind: TokenWord},
				{Text: ".", Kind: TokenPunct},
			},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			text:     "   \t\n",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Tokenize(tc.text))
		})
	}
}
