package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 833.33, RoundWithTwoDecimalPlace(10.0/0.012))
	assert.Equal(t, 1.01, RoundWithTwoDecimalPlace(1.005))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.NaN()))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.Inf(1)))
}

func TestParseAmount(t *testing.T) {
	amount, ok := ParseAmount("100.00")
	assert.True(t, ok)
	assert.Equal(t, 100.0, amount)

	amount, ok = ParseAmount(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, amount)

	_, ok = ParseAmount("")
	assert.False(t, ok)

	_, ok = ParseAmount("abc")
	assert.False(t, ok)

	assert.Equal(t, 0.0, AmountOrZero("N/A"))
	assert.Equal(t, -3.0, AmountOrZero("-3"))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 10)
}
