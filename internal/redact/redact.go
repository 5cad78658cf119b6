// Package redact provides utilities for scrubbing sensitive information from
// strings before they are logged. Error messages flowing through the request
// boundary can carry connection strings, credentials, and signed tokens;
// everything logged at that boundary passes through here first.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedSecretPlaceholder     = "[REDACTED_SECRET]"
)

// Precompiled patterns for the sensitive material this service handles:
// database DSNs, password fields, signing secrets, and the three-part
// base64url form of signed session/transfer tokens.
var (
	dbConnRegex   = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)
	secretRegex   = regexp.MustCompile(`(?i)(secret|signing[_-]?key|jwt[_-]?secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{dbConnRegex, RedactedCredentialPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{secretRegex, RedactedSecretPlaceholder},
		{jwtTokenRegex, RedactedTokenPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pp := range patternPlaceholders {
		result = pp.pattern.ReplaceAllString(result, pp.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
