package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User representa un usuario del sistema.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          string // admin, operator
	FavoriteColor string
	Birthday      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
