// Package redact strips sensitive values from strings before they reach
// logs or error responses. The API handles credentials, JWTs, refresh
// tokens, password hashes and email addresses; none of those may appear
// verbatim in log output.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredential = "[REDACTED_CREDENTIAL]"
	RedactedToken      = "[REDACTED_TOKEN]"
	RedactedEmail      = "[REDACTED_EMAIL]"
	RedactedPath       = "[REDACTED_PATH]"
	RedactedSQL        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order: credentials and tokens first, then broader
// patterns like paths that could otherwise swallow parts of them.
var rules = []rule{
	// Connection strings with inline credentials.
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), RedactedCredential},

	// password=..., pwd: "...", etc.
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`), RedactedCredential},

	// bcrypt hashes ($2a$, $2b$, $2y$ prefixes).
	{regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`), RedactedCredential},

	// Three-part base64url JWTs.
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), RedactedToken},

	// Opaque refresh tokens: long unbroken base64url runs.
	{regexp.MustCompile(`\b[A-Za-z0-9_-]{40,}\b`), RedactedToken},

	// secret=..., token: ... style key material.
	{regexp.MustCompile(`(?i)(secret|token|api[_-]?key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedToken},

	// Email addresses.
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmail},

	// SQL fragments leaking through driver errors.
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()$]+(?:FROM|INTO|SET)\b`), RedactedSQL},

	// Filesystem paths.
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPath},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
// A nil error yields the empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
