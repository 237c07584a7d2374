package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_NextID(t *testing.T) {
	g := New("BK")

	assert.Equal(t, "BK-0001", g.NextID())
	assert.Equal(t, "BK-0002", g.NextID())

	other := New("X")
	assert.Equal(t, "X-0001", other.NextID())
}
