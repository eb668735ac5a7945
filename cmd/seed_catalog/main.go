// seed_catalog genera el script SQL que carga restaurantes y platos en PostgreSQL.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.xml]
// Sin argumento usa el catálogo por defecto del almacenamiento en memoria, así ambos
// backends arrancan con los mismos IDs.
// Escribe: db/seed_catalog.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
)

func main() {
	var (
		restaurants []entity.Restaurant
		items       []entity.MenuItem
		source      = "catálogo por defecto"
	)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
			os.Exit(1)
		}
		restaurants, items, err = parseCatalog(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
			os.Exit(1)
		}
		source = os.Args[1]
	} else {
		restaurants, items = memory.DefaultRestaurants(), memory.DefaultMenuItems()
	}

	outPath := filepath.Join(findModuleRoot(), "db", "seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, source, restaurants, items); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d restaurantes, %d platos\n", outPath, len(restaurants), len(items))
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
