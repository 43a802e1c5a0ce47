package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 1.5, Clamp(1.5, 1.0, 2.0))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0.0, 10.0, 0.0))
	assert.Equal(t, 10.0, Lerp(0.0, 10.0, 1.0))
	assert.Equal(t, 5.0, Lerp(0.0, 10.0, 0.5))
	// t outside [0,1] clamps.
	assert.Equal(t, 10.0, Lerp(0.0, 10.0, 2.0))
}
