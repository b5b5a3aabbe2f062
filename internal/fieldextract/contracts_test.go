package fieldextract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidepp-ar/docingest/constants"
)

func TestRegistry_For(t *testing.T) {
	r := DefaultRegistry()

	assert.IsType(t, &PayrollExtractor{}, r.For(constants.DocTypePayroll))
	assert.IsType(t, &TransferExtractor{}, r.For(constants.DocTypeTransfer))
	assert.Nil(t, r.For(constants.DocTypeUnknown))
}
