package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("Secret@123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.NotEqual(t, "Secret@123", digest)

	require.True(t, Verify("Secret@123", digest))
	require.False(t, Verify("Secret@124", digest))
	require.False(t, Verify("", digest))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("Secret@123")
	require.NoError(t, err)
	second, err := Hash("Secret@123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, Verify("Secret@123", first))
	require.True(t, Verify("Secret@123", second))
}

func TestVerifyMalformedDigest(t *testing.T) {
	require.False(t, Verify("Secret@123", "not-a-bcrypt-digest"))
	require.False(t, Verify("Secret@123", ""))
}
