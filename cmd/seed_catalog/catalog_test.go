package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<catalogo>
  <restaurante id="1" nombre="Café O'Brien" cocina="Irish" valoracion="4" imagen="img1">
    <descripcion>Pub food</descripcion>
    <plato id="2" precio="14.99" categoria="Main Course" imagen="img2">
      <nombre>Stew</nombre>
      <descripcion>Beef stew</descripcion>
    </plato>
    <plato id="3" precio="7" categoria="Sides">
      <nombre>Chips</nombre>
    </plato>
  </restaurante>
</catalogo>`

func TestParseCatalog(t *testing.T) {
	rs, items, err := parseCatalog(strings.NewReader(sampleXML))
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Len(t, items, 2)

	assert.Equal(t, "Café O'Brien", rs[0].Name)
	assert.Equal(t, "Pub food", rs[0].Description)
	assert.Equal(t, int64(1499), items[0].Price)
	assert.Equal(t, int64(700), items[1].Price)
	assert.Equal(t, int64(1), items[1].RestaurantID)
}

func TestParseCatalog_Latin1(t *testing.T) {
	// "Caf\xe9" es "Café" en ISO-8859-1.
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<catalogo><restaurante id=\"1\" nombre=\"Caf\xe9\"></restaurante></catalogo>"
	rs, _, err := parseCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Café", rs[0].Name)
}

func TestParseCatalog_IDRepetido(t *testing.T) {
	src := `<catalogo><restaurante id="1"><plato id="2" precio="1"/></restaurante>` +
		`<restaurante id="3"><plato id="2" precio="1"/></restaurante></catalogo>`
	_, _, err := parseCatalog(strings.NewReader(src))
	assert.Error(t, err)

	// Mismo número en tipos distintos es válido.
	src = `<catalogo><restaurante id="1"><plato id="1" precio="1"/></restaurante></catalogo>`
	_, _, err = parseCatalog(strings.NewReader(src))
	assert.NoError(t, err)
}

func TestParseCatalog_PrecioInvalido(t *testing.T) {
	src := `<catalogo><restaurante id="1"><plato id="2" precio="abc"/></restaurante></catalogo>`
	_, _, err := parseCatalog(strings.NewReader(src))
	assert.Error(t, err)
}

func TestWriteSQL_CatalogoPorDefecto(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, "test", memory.DefaultRestaurants(), memory.DefaultMenuItems()))
	out := buf.String()

	assert.Contains(t, out, "INSERT INTO restaurants")
	assert.Contains(t, out, "(4, 1, 'Classic Burger'")
	assert.Contains(t, out, "GREATEST(8,")
}

func TestWriteSQL_EscapaComillas(t *testing.T) {
	rs, items, err := parseCatalog(strings.NewReader(sampleXML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, "test", rs, items))
	assert.Contains(t, buf.String(), "'Café O''Brien'")
}
