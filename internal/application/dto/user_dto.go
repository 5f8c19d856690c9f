package dto

import "time"

// RegisterRequest entrada para registro de usuario.
type RegisterRequest struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	Role          string     `json:"role"`
	FavoriteColor string     `json:"favorite_color"`
	Birthday      *time.Time `json:"birthday"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	FavoriteColor string     `json:"favorite_color,omitempty"`
	Birthday      *time.Time `json:"birthday,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
