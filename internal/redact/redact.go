// Package redact provides utilities for redacting sensitive information
// from strings before they are logged or returned in error responses.
// The main hazard in this service is the exchange-rate API key, which is
// embedded as a URL path segment and therefore surfaces in transport
// errors produced by the HTTP client.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder   = "[REDACTED]"
	RedactedKeyPlaceholder = "[REDACTED_KEY]"
)

// Precompiled regex patterns
var (
	// ExchangeRate-API style URLs carry the key as the path segment
	// between the version prefix and "latest".
	rateURLKeyRegex = regexp.MustCompile(`(/v\d+)/[^/\s]+(/latest)`)

	// Generic key/value credential fragments
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Hostnames with optional ports, as emitted by net/http transport errors
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	patterns = []*regexp.Regexp{
		rateURLKeyRegex, apiKeyRegex, hostPortRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		rateURLKeyRegex: "$1/" + RedactedKeyPlaceholder + "$2",
		apiKeyRegex:     RedactedKeyPlaceholder,
		hostPortRegex:   "[REDACTED_HOST]",
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
