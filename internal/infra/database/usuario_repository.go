package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/super-crm/internal/entity"
)

type UsuarioRepository struct {
	DB *sql.DB
}

func NewUsuarioRepository(db *sql.DB) *UsuarioRepository {
	return &UsuarioRepository{DB: db}
}

func (r *UsuarioRepository) FindByLogin(ctx context.Context, login string) (*entity.Usuario, error) {
	query := `
		SELECT id, login, nome, email, cargo, senha_hash, created_at, updated_at
		FROM usuarios
		WHERE login = $1
	`
	return r.scanUsuario(r.DB.QueryRowContext(ctx, query, login))
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `
		SELECT id, login, nome, email, cargo, senha_hash, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`
	return r.scanUsuario(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UsuarioRepository) scanUsuario(row *sql.Row) (*entity.Usuario, error) {
	var u entity.Usuario

	err := row.Scan(
		&u.ID,
		&u.Login,
		&u.Nome,
		&u.Email,
		&u.Cargo,
		&u.SenhaHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUsuarioNaoEncontrado
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
