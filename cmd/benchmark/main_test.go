package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	minimum, median, maximum := summarize([]int64{300, 100, 200})
	assert.Equal(t, int64(100), minimum)
	assert.Equal(t, int64(200), median)
	assert.Equal(t, int64(300), maximum)

	minimum, median, maximum = summarize([]int64{400, 100, 300, 200})
	assert.Equal(t, int64(100), minimum)
	assert.Equal(t, int64(300), median)
	assert.Equal(t, int64(400), maximum)

	minimum, median, maximum = summarize([]int64{42})
	assert.Equal(t, int64(42), minimum)
	assert.Equal(t, int64(42), median)
	assert.Equal(t, int64(42), maximum)

	minimum, median, maximum = summarize(nil)
	assert.Equal(t, int64(0), minimum)
	assert.Equal(t, int64(0), median)
	assert.Equal(t, int64(0), maximum)
}

func TestAddsPerSecond(t *testing.T) {
	assert.Equal(t, float64(2000), addsPerSecond(1000, 500_000))
	assert.Equal(t, float64(100), addsPerSecond(100, 1_000_000))
	assert.Equal(t, float64(0), addsPerSecond(100, 0))
}

func TestMillisString(t *testing.T) {
	assert.Equal(t, "1.500", millisString(1500))
	assert.Equal(t, "0.001", millisString(1))
	assert.Equal(t, "1000.000", millisString(1_000_000))
}
