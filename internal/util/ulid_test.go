package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	prev := NewULID()
	for i := 0; i < 1000; i++ {
		next := NewULID()
		_, err := ulid.ParseStrict(next)
		require.NoError(t, err)
		assert.Less(t, prev, next)
		prev = next
	}
}
