package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/scalekit/internal/store"
)

var _ store.IDGenerator = (*FixedRunIDGenerator)(nil)

func TestFixedRunIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedRunIDGenerator("run-123")
	assert.Equal(t, "run-123", gen.Generate())
	assert.Equal(t, "run-123", gen.Generate())
}

func TestFixedRunIDGenerator_EmptyIDDefault(t *testing.T) {
	assert.Equal(t, "test-run-default", NewFixedRunIDGenerator("").Generate())
}
