package repository

import "github.com/tu-usuario/stocktrack-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos Get*/Find* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
