package publication

const (
	// UsernamePlaceholder is substituted when a generic registry username is unset.
	UsernamePlaceholder = "<username>"
	// PasswordPlaceholder is substituted when a generic registry password is unset.
	PasswordPlaceholder = "<password>"

	// AbsentMarker renders a credential that was not supplied at all.
	AbsentMarker = "<absent>"

	maskMarker = "******"
)

// IsPlaceholder reports whether value is one of the fallback placeholders.
func IsPlaceholder(value string) bool {
	return value == UsernamePlaceholder || value == PasswordPlaceholder
}

// RedactUsername renders a username for logs. Usernames are not secret,
// absence is made explicit.
func RedactUsername(value *string) string {
	if value == nil {
		return AbsentMarker
	}

	return *value
}

// RedactPassword renders a password for logs without revealing it.
// Placeholders are shown verbatim because they carry no secret.
func RedactPassword(value *string) string {
	switch {
	case value == nil:
		return AbsentMarker
	case IsPlaceholder(*value):
		return *value
	default:
		return maskMarker
	}
}

// Redacted returns a copy of the target with the password masked.
func (t Target) Redacted() Target {
	out := t.Clone()

	if out.Credentials.Password != nil {
		masked := RedactPassword(out.Credentials.Password)
		out.Credentials.Password = &masked
	}

	return out
}
