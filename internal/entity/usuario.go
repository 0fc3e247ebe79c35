package entity

import (
	"context"
	"errors"
	"time"
)

var ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")

// Cargos (enum cargo_usuario no banco)
const (
	CargoAdmin      = "admin"
	CargoVendedor   = "vendedor"
	CargoSupervisor = "supervisor"
	CargoAtendente  = "atendente"
)

type Usuario struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`

	// Hash bcrypt — nunca serializa pro front
	SenhaHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UsuarioRepositoryInterface interface {
	FindByLogin(ctx context.Context, login string) (*Usuario, error)
	FindByID(ctx context.Context, id string) (*Usuario, error)
}
