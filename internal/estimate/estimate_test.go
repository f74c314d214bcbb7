package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidNumberError(t *testing.T) {
	err := &InvalidNumberError{Field: "length", Reason: "must be greater than zero"}
	assert.Equal(t, "invalid value for length: must be greater than zero", err.Error())
}

func TestRequirePositive(t *testing.T) {
	assert.NoError(t, requirePositive("x", 0.001))
	assert.Error(t, requirePositive("x", 0))
	assert.Error(t, requirePositive("x", -1))
	assert.Error(t, requirePositive("x", math.NaN()))
	assert.Error(t, requirePositive("x", math.Inf(1)))
}

func TestRequireNonNegative(t *testing.T) {
	assert.NoError(t, requireNonNegative("x", 0))
	assert.NoError(t, requireNonNegative("x", 5))
	assert.Error(t, requireNonNegative("x", -0.001))
	assert.Error(t, requireNonNegative("x", math.NaN()))
}

func TestWithWastage(t *testing.T) {
	assert.InDelta(t, 110, withWastage(100, 10), 0.0001)
	assert.InDelta(t, 100, withWastage(100, 0), 0.0001)
}
