package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("crlf to lf", func(t *testing.T) {
		assert.Equal(t, "a\nb", Normalize("a\r\nb"))
	})

	t.Run("tabs become column gaps", func(t *testing.T) {
		assert.Equal(t, "PEREZ  1.500,00", Normalize("PEREZ\t\t1.500,00"))
	})

	t.Run("long space runs collapse to two", func(t *testing.T) {
		assert.Equal(t, "PEREZ  1.500,00", Normalize("PEREZ        1.500,00"))
	})

	t.Run("double spaces survive", func(t *testing.T) {
		// Reference trimming depends on 2-space column gaps.
		assert.Equal(t, "Referencia: Pago  Hoja 1", Normalize("Referencia: Pago  Hoja 1"))
	})

	t.Run("blank line runs collapse", func(t *testing.T) {
		assert.Equal(t, "a\n\nb", Normalize("a\n\n\n\n\nb"))
	})

	t.Run("separator noise lines dropped", func(t *testing.T) {
		got := Normalize("encabezado\n----------\ndetalle")
		assert.NotContains(t, got, "---")
		assert.Contains(t, got, "encabezado")
		assert.Contains(t, got, "detalle")
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		assert.Equal(t, "x", Normalize("\n\n  x  \n"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
	})
}
