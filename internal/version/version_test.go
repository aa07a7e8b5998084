package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return non-empty consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), "commit: ")
	require.NotContains(t, Full(), "commit: ,")
}

// TestFirstNonEmpty picks the first set value.
func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "b", firstNonEmpty("", "b", "c"))
	require.Empty(t, firstNonEmpty("", ""))
}
