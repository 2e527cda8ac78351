package nlp

import "strings"

// numberWords maps spelled-out number words to their values. Only
// single-token words are supported; compounds like "twenty one" are
// two tokens and each sets the value independently (last one wins,
// like any other number token).
var numberWords = map[string]float64{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
	"hundred":   100,
	"thousand":  1000,
}

// parseNumberWord converts a spelled-out number word to its value.
func parseNumberWord(token string) (float64, bool) {
	n, ok := numberWords[strings.ToLower(token)]
	return n, ok
}

// isNumberWord guards the currency-code heuristic: three-letter number
// words like "one", "two", "six", "ten" must never be mistaken for
// currency codes.
func isNumberWord(token string) bool {
	_, ok := numberWords[strings.ToLower(token)]
	return ok
}
