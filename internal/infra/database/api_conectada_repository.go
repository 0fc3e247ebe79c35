package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/super-crm/internal/entity"
)

type APIConectadaRepository struct {
	DB *sql.DB
}

func NewAPIConectadaRepository(db *sql.DB) *APIConectadaRepository {
	return &APIConectadaRepository{DB: db}
}

func (r *APIConectadaRepository) FindAll(ctx context.Context) ([]*entity.APIConectada, error) {
	query := `
		SELECT id, nome_api, url_base, chave_token, tipo_autenticacao, ativo, descricao, created_at, updated_at
		FROM apis_conectadas
		ORDER BY nome_api
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apis []*entity.APIConectada
	for rows.Next() {
		var a entity.APIConectada
		var descricao sql.NullString

		err := rows.Scan(
			&a.ID,
			&a.NomeAPI,
			&a.URLBase,
			&a.ChaveToken,
			&a.TipoAutenticacao,
			&a.Ativo,
			&descricao,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		a.Descricao = descricao.String
		apis = append(apis, &a)
	}

	return apis, rows.Err()
}
