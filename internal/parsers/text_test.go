package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	t.Run("PlainTextPassesThrough", func(t *testing.T) {
		assert.Equal(t, "hola mundo", ExtractText("hola mundo"))
	})

	t.Run("StripsTags", func(t *testing.T) {
		assert.Equal(t, "la ventana", ExtractText("<b>la</b> <i>ventana</i>"))
		assert.Equal(t, "desayuno", ExtractText(`<div class="front"><span>desayuno</span></div>`))
	})

	t.Run("ResolvesEntities", func(t *testing.T) {
		assert.Equal(t, "uno & dos", ExtractText("uno &amp; dos"))
		assert.Equal(t, "más", ExtractText("m&aacute;s"))
	})

	t.Run("CollapsesWhitespace", func(t *testing.T) {
		assert.Equal(t, "dos palabras", ExtractText("dos\n\n   palabras"))
		assert.Equal(t, "linea uno linea dos", ExtractText("linea uno<br>linea dos"))
	})

	t.Run("SkipsNonRenderedContent", func(t *testing.T) {
		assert.Equal(t, "visible", ExtractText("<style>.card{color:red}</style>visible<script>var x=1</script>"))
	})

	t.Run("EmptyAndMalformedInput", func(t *testing.T) {
		assert.Equal(t, "", ExtractText(""))
		assert.Equal(t, "", ExtractText("   "))
		assert.Equal(t, "", ExtractText("<div><span></div>"))
	})
}
