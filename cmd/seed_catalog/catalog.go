package main

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

// catalogo formato del XML de entrada:
//
//	<catalogo>
//	  <restaurante id="1" nombre="Urban Kitchen" cocina="Fusion" valoracion="4" imagen="...">
//	    <descripcion>...</descripcion>
//	    <plato id="4" precio="14.99" categoria="Main Course" imagen="...">
//	      <nombre>Classic Burger</nombre>
//	      <descripcion>...</descripcion>
//	    </plato>
//	  </restaurante>
//	</catalogo>
type catalogo struct {
	Restaurantes []restaurante `xml:"restaurante"`
}

type restaurante struct {
	ID          int64   `xml:"id,attr"`
	Nombre      string  `xml:"nombre,attr"`
	Cocina      string  `xml:"cocina,attr"`
	Valoracion  int     `xml:"valoracion,attr"`
	Imagen      string  `xml:"imagen,attr"`
	Descripcion string  `xml:"descripcion"`
	Platos      []plato `xml:"plato"`
}

type plato struct {
	ID          int64  `xml:"id,attr"`
	Precio      string `xml:"precio,attr"`
	Categoria   string `xml:"categoria,attr"`
	Imagen      string `xml:"imagen,attr"`
	Nombre      string `xml:"nombre"`
	Descripcion string `xml:"descripcion"`
}

// parseCatalog decodifica el XML (UTF-8 o ISO-8859-1). Los precios vienen en unidades
// con decimales ("14.99") y se guardan en centavos.
func parseCatalog(r io.Reader) ([]entity.Restaurant, []entity.MenuItem, error) {
	var c catalogo
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&c); err != nil {
		return nil, nil, err
	}

	seenR := make(map[int64]struct{})
	seenM := make(map[int64]struct{})
	claim := func(seen map[int64]struct{}, id int64) error {
		if id <= 0 {
			return fmt.Errorf("id %d no positivo", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("id %d repetido", id)
		}
		seen[id] = struct{}{}
		return nil
	}

	var (
		restaurants []entity.Restaurant
		items       []entity.MenuItem
	)
	for _, r := range c.Restaurantes {
		if err := claim(seenR, r.ID); err != nil {
			return nil, nil, err
		}
		restaurants = append(restaurants, entity.Restaurant{
			ID:          r.ID,
			Name:        strings.TrimSpace(r.Nombre),
			Description: strings.TrimSpace(r.Descripcion),
			Image:       strings.TrimSpace(r.Imagen),
			Cuisine:     strings.TrimSpace(r.Cocina),
			Rating:      r.Valoracion,
		})
		for _, p := range r.Platos {
			if err := claim(seenM, p.ID); err != nil {
				return nil, nil, err
			}
			price, err := decimal.NewFromString(strings.TrimSpace(p.Precio))
			if err != nil {
				return nil, nil, fmt.Errorf("plato %d: precio %q: %w", p.ID, p.Precio, err)
			}
			if price.IsNegative() {
				return nil, nil, fmt.Errorf("plato %d: precio negativo", p.ID)
			}
			items = append(items, entity.MenuItem{
				ID:           p.ID,
				RestaurantID: r.ID,
				Name:         strings.TrimSpace(p.Nombre),
				Description:  strings.TrimSpace(p.Descripcion),
				Price:        price.Shift(2).Round(0).IntPart(),
				Image:        strings.TrimSpace(p.Imagen),
				Category:     strings.TrimSpace(p.Categoria),
			})
		}
	}
	return restaurants, items, nil
}

// writeSQL escribe los INSERT idempotentes y adelanta entity_id_seq al mayor ID cargado.
func writeSQL(w io.Writer, source string, restaurants []entity.Restaurant, items []entity.MenuItem) error {
	bw := bufio.NewWriter(w)
	maxID := int64(0)

	fmt.Fprintf(bw, "-- Catálogo de restaurantes y platos\n-- Generado desde %s\n\n", source)

	if len(restaurants) > 0 {
		bw.WriteString("-- 1. Restaurantes\n")
		bw.WriteString("INSERT INTO restaurants (id, name, description, image, cuisine, rating) VALUES\n")
		for i, r := range restaurants {
			maxID = max(maxID, r.ID)
			fmt.Fprintf(bw, "  (%d, '%s', '%s', '%s', '%s', %d)%s\n",
				r.ID, escapeSQL(r.Name), escapeSQL(r.Description), escapeSQL(r.Image),
				escapeSQL(r.Cuisine), r.Rating, sep(i, len(restaurants)))
		}
		bw.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	}

	if len(items) > 0 {
		bw.WriteString("-- 2. Platos (precio en centavos)\n")
		bw.WriteString("INSERT INTO menu_items (id, restaurant_id, name, description, price, image, category) VALUES\n")
		for i, m := range items {
			maxID = max(maxID, m.ID)
			fmt.Fprintf(bw, "  (%d, %d, '%s', '%s', %d, '%s', '%s')%s\n",
				m.ID, m.RestaurantID, escapeSQL(m.Name), escapeSQL(m.Description), m.Price,
				escapeSQL(m.Image), escapeSQL(m.Category), sep(i, len(items)))
		}
		bw.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	}

	if maxID > 0 {
		bw.WriteString("-- 3. El contador compartido continúa tras el catálogo\n")
		fmt.Fprintf(bw, "SELECT setval('entity_id_seq', GREATEST(%d, (SELECT last_value FROM entity_id_seq)));\n", maxID)
	}
	return bw.Flush()
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
