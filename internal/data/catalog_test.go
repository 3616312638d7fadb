package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	d, ok := c.Dragon("Emberwing")
	require.True(t, ok)
	assert.Equal(t, "Emberwing", d.Name())
	assert.Equal(t, d.Stats().MaxHP, d.HP(), "catalog dragons start at full health")

	m, ok := c.Move("ember")
	require.True(t, ok)
	assert.Positive(t, m.Power)
}

func TestCatalog_UnknownNames(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, ok := c.Dragon("NotADragon")
	assert.False(t, ok)
	_, ok = c.Move("not a move")
	assert.False(t, ok)
}

func TestCatalog_DragonInstancesAreIndependent(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	first, ok := c.Dragon("Galeclaw")
	require.True(t, ok)
	second, ok := c.Dragon("Galeclaw")
	require.True(t, ok)
	assert.NotSame(t, first, second, "each lookup builds a fresh battle dragon")
}
