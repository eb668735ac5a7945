package repository

// Storage es el contrato completo que cualquier backend debe cumplir.
// Todas las entidades devueltas son copias: modificarlas no altera el estado almacenado.
type Storage interface {
	UserRepository
	RestaurantRepository
	MenuRepository
	OrderRepository

	// SessionStore devuelve siempre la misma instancia durante la vida del proceso.
	SessionStore() SessionStore
	Close() error
}
