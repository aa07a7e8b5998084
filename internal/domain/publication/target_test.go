package publication

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

// TestTargetClone ensures credentials are deep-copied.
func TestTargetClone(t *testing.T) {
	t.Parallel()

	target := Target{
		URL: "https://repo.example.com",
		Credentials: Credentials{
			Username: strPtr("ci"),
			Password: nil,
		},
	}

	c := target.Clone()
	require.Equal(t, target, c)
	require.NotSame(t, target.Credentials.Username, c.Credentials.Username)
	require.Nil(t, c.Credentials.Password)
}

// TestRedactPassword verifies masking, placeholders and absence.
func TestRedactPassword(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<absent>", RedactPassword(nil))
	require.Equal(t, "<password>", RedactPassword(strPtr(PasswordPlaceholder)))
	require.Equal(t, "******", RedactPassword(strPtr("hunter2")))
	require.Equal(t, "<absent>", RedactUsername(nil))
	require.Equal(t, "bot", RedactUsername(strPtr("bot")))
}

// TestTargetRedacted checks that the original target keeps its secret.
func TestTargetRedacted(t *testing.T) {
	t.Parallel()

	target := Target{
		URL:         "https://repo.example.com",
		Credentials: Credentials{Username: strPtr("ci"), Password: strPtr("secret")},
	}

	redacted := target.Redacted()

	require.Equal(t, "******", *redacted.Credentials.Password)
	require.Equal(t, "secret", *target.Credentials.Password)
	require.Equal(t, "ci", *redacted.Credentials.Username)

	absent := Target{}.Redacted()
	require.Nil(t, absent.Credentials.Password)
}
