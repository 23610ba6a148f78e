package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRequests(t *testing.T) {
	samples := seedRequests(0)
	require.Len(t, samples, 2)
	assert.Equal(t, "The Essence of Design", samples[0].Title)
	assert.Equal(t, "Simplicity", samples[1].Title)

	numbered := seedRequests(3)
	require.Len(t, numbered, 3)
	assert.Equal(t, "Entry 1", numbered[0].Title)
	assert.Equal(t, "Seeded entry number 3.", numbered[2].Content)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
