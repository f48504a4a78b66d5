package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractHashtags(t *testing.T) {
	t.Parallel()

	require.Nil(t, ExtractHashtags("no tags here"))
	require.Equal(t, []string{"adoption"}, ExtractHashtags("looking for a home #adoption"))
	require.Equal(t, []string{"lost", "dog"}, ExtractHashtags("#Lost near the park #dog #lost"))
	require.Equal(t, []string{"gato_sp"}, ExtractHashtags("achei um #gato_SP hoje"))
}
