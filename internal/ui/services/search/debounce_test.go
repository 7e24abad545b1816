package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerKeepsLastValue(t *testing.T) {
	var d Debouncer
	g1 := d.Push("r")
	g2 := d.Push("re")
	g3 := d.Push("red")

	_, ok := d.Elapsed(g1)
	assert.False(t, ok)
	_, ok = d.Elapsed(g2)
	assert.False(t, ok)
	assert.True(t, d.Pending())

	v, ok := d.Elapsed(g3)
	assert.True(t, ok)
	assert.Equal(t, "red", v)
	assert.False(t, d.Pending())

	// a timer only commits once
	_, ok = d.Elapsed(g3)
	assert.False(t, ok)
}

func TestDebouncerCancelMakesTimersStale(t *testing.T) {
	var d Debouncer
	g := d.Push("shirt")
	d.Cancel()

	_, ok := d.Elapsed(g)
	assert.False(t, ok)
	assert.False(t, d.Pending())
	assert.Greater(t, d.Gen(), g)
}
