package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "LIQUIDACION", Fold("Liquidación"))
	assert.Equal(t, "PEREZ", Fold("Pérez"))
	assert.Equal(t, "NUNEZ", Fold("Núñez"))
	assert.Equal(t, "ABC 123", Fold("abc 123"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "PEREZ JUAN", NormalizeName("  pérez   juan "))
	assert.Equal(t, "GOMEZ MARIA", NormalizeName("GÓMEZ\tMARÍA"))
	assert.Equal(t, "", NormalizeName("   "))
}
