// Package nlp implements best-effort extraction of a single
// (value, from-unit, to-unit) triple from short English phrases such
// as "convert 5 meters to feet". It is not a general language
// understanding layer: a minimal tokenizer feeds a multi-word phrase
// matcher and a per-token scan for numbers, unit aliases, and
// currency-code guesses.
package nlp
