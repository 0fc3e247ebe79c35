package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/xavierca1/super-crm/internal/entity"
)

type ClienteRepository struct {
	DB *sql.DB
}

func NewClienteRepository(db *sql.DB) *ClienteRepository {
	return &ClienteRepository{DB: db}
}

func (r *ClienteRepository) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nome, telefone, email, cpf, status, tags, origem, data_cadastro, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, data_cadastro, created_at, updated_at
	`

	// RETURNING devolve o que o banco efetivamente gravou (defaults inclusos)
	err := r.DB.QueryRowContext(
		ctx,
		query,
		c.ID,
		c.Nome,
		nullString(c.Telefone),
		nullString(c.Email),
		nullString(c.CPF),
		c.Status,
		pq.Array(c.Tags),
		nullString(c.Origem),
		c.DataCadastro,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(
		&c.ID,
		&c.DataCadastro,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	return err
}

func (r *ClienteRepository) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nome, telefone, email, cpf, status, tags, origem, data_cadastro, created_at, updated_at
		FROM clientes
		ORDER BY data_cadastro DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clientes []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		clientes = append(clientes, c)
	}

	return clientes, rows.Err()
}

func (r *ClienteRepository) FindByID(ctx context.Context, id string) (*entity.Cliente, error) {
	query := `
		SELECT id, nome, telefone, email, cpf, status, tags, origem, data_cadastro, created_at, updated_at
		FROM clientes
		WHERE id = $1
	`

	c, err := scanCliente(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrClienteNaoEncontrado
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *ClienteRepository) CountCadastradosDesde(ctx context.Context, desde time.Time) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clientes WHERE data_cadastro >= $1`, desde,
	).Scan(&total)
	return total, err
}

func (r *ClienteRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&total)
	return total, err
}

func (r *ClienteRepository) CountFechadosDesde(ctx context.Context, desde time.Time) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clientes WHERE status = $1 AND updated_at >= $2`,
		entity.StatusFechado, desde,
	).Scan(&total)
	return total, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCliente(row rowScanner) (*entity.Cliente, error) {
	var c entity.Cliente
	var telefone, email, cpf, origem sql.NullString
	var tags pq.StringArray

	err := row.Scan(
		&c.ID,
		&c.Nome,
		&telefone,
		&email,
		&cpf,
		&c.Status,
		&tags,
		&origem,
		&c.DataCadastro,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Telefone = telefone.String
	c.Email = email.String
	c.CPF = cpf.String
	c.Origem = origem.String
	c.Tags = tags

	return &c, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
