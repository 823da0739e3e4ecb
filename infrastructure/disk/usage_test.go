package disk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsageProbe_Free(t *testing.T) {
	req := require.New(t)

	free, err := NewUsageProbe().Free(t.TempDir())
	req.NoError(err)
	req.Greater(free, uint64(0))
}

func TestUsageProbe_Free_Missing_Path(t *testing.T) {
	_, err := NewUsageProbe().Free("/definitely/not/here")
	require.Error(t, err)
}
