package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarousel_Clamps(t *testing.T) {
	c := NewCarousel(3, 0)
	assert.False(t, c.HasPrev())
	assert.True(t, c.HasNext())
	assert.Equal(t, 0, c.Prev().Index)

	c = c.Next().Next()
	assert.Equal(t, 2, c.Index)
	assert.False(t, c.HasNext())
	assert.Equal(t, 2, c.Next().Index)
	assert.Equal(t, 1, c.Prev().Index)
}

func TestNewCarousel_OutOfRange(t *testing.T) {
	assert.Equal(t, 0, NewCarousel(3, -4).Index)
	assert.Equal(t, 2, NewCarousel(3, 42).Index)

	empty := NewCarousel(0, 5)
	assert.Equal(t, 0, empty.Index)
	assert.False(t, empty.HasPrev())
	assert.False(t, empty.HasNext())
}
