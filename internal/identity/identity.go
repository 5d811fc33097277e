// Package identity canonicalizes user-supplied identifiers. An identifier is
// either an email address or a registration number (e.g. ET-0001); the
// normalized form is the only equality rule joining marks and sessions to
// accounts, so every lookup path must go through Normalize.
package identity

import (
	"regexp"
	"strings"
)

// EmailPattern is the portal's email shape check, applied verbatim to every
// email form field.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims the identifier and canonicalizes it: identifiers containing
// '@' are treated as emails and lowercased, everything else is treated as a
// registration number and uppercased. Normalize is idempotent and maps empty
// input to the empty string.
func Normalize(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if strings.Contains(id, "@") {
		return strings.ToLower(id)
	}
	return strings.ToUpper(id)
}

// IsEmail reports whether the raw value passes the portal email check.
func IsEmail(raw string) bool {
	return EmailPattern.MatchString(raw)
}
