package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidepp-ar/docingest/constants"
)

func TestClassify(t *testing.T) {
	t.Run("payroll keywords", func(t *testing.T) {
		text := "LIQUIDACION DE HABERES\nListado de personas\nApellido y Nombre"
		assert.Equal(t, constants.DocTypePayroll, Classify(text))
	})

	t.Run("transfer keywords", func(t *testing.T) {
		text := "Comprobante de Transferencia\nCBU Origen: 0070999020000038221395"
		assert.Equal(t, constants.DocTypeTransfer, Classify(text))
	})

	t.Run("transfer wins when both sets match", func(t *testing.T) {
		text := "Liquidacion de transferencia bancaria con CBU y legajo"
		assert.Equal(t, constants.DocTypeTransfer, Classify(text))
	})

	t.Run("diacritics are folded before matching", func(t *testing.T) {
		assert.Equal(t, constants.DocTypePayroll, Classify("LIQUIDACIÓN MENSUAL SIDEPP"))
	})

	t.Run("lowercase input matches", func(t *testing.T) {
		assert.Equal(t, constants.DocTypeTransfer, Classify("importe transferido a la cuenta"))
	})

	t.Run("no indicators is unknown", func(t *testing.T) {
		assert.Equal(t, constants.DocTypeUnknown, Classify("factura de servicios electricos"))
	})

	t.Run("empty text is unknown", func(t *testing.T) {
		assert.Equal(t, constants.DocTypeUnknown, Classify(""))
	})
}
