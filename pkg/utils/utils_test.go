package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	assert.Equal(t, 3.14, RoundDecimal(3.14159, 2))
	assert.Equal(t, 66.67, RoundDecimal(200.0/3, 2))
	assert.Equal(t, 100.0, RoundDecimal(100, 2))
}

func TestSplitTrim(t *testing.T) {
	assert.Nil(t, SplitTrim("", ","))
	assert.Equal(t, []string{"a", "b", ""}, SplitTrim(" a , b ,", ","))
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings(SplitTrim(" a , b ,", ",")))
}
