package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferenceID(t *testing.T) {
	seen := make(map[string]struct{}, 200)
	for i := 0; i < 200; i++ {
		ref, err := newReferenceID()
		require.NoError(t, err)
		assert.Regexp(t, `^BK[A-Z0-9]{8}$`, ref)
		seen[ref] = struct{}{}
	}
	assert.Greater(t, len(seen), 190)
}
