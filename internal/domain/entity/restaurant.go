package entity

// Restaurant representa un restaurante del catálogo (solo lectura tras la carga inicial).
type Restaurant struct {
	ID          int64
	Name        string
	Description string
	Image       string
	Cuisine     string
	Rating      int // 1..5
}
