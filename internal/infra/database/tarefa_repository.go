package database

import (
	"context"
	"database/sql"
)

type TarefaRepository struct {
	DB *sql.DB
}

func NewTarefaRepository(db *sql.DB) *TarefaRepository {
	return &TarefaRepository{DB: db}
}

func (r *TarefaRepository) CountPorStatus(ctx context.Context, status string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tarefas WHERE status = $1`, status,
	).Scan(&total)
	return total, err
}
