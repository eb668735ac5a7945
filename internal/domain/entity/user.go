package entity

// User representa un cliente registrado. Username es único en todo el sistema.
type User struct {
	ID       int64
	Username string
	Password string // hash bcrypt, nunca texto plano después del registro
	IsAdmin  bool
}

// NewUser datos de entrada para registrar un usuario. El store asigna ID e IsAdmin.
type NewUser struct {
	Username string
	Password string
}
