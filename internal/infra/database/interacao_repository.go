package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/super-crm/internal/entity"
)

type InteracaoRepository struct {
	DB *sql.DB
}

func NewInteracaoRepository(db *sql.DB) *InteracaoRepository {
	return &InteracaoRepository{DB: db}
}

// FindByClienteID devolve o histórico do lead, mais recente primeiro.
func (r *InteracaoRepository) FindByClienteID(ctx context.Context, clienteID string) ([]*entity.Interacao, error) {
	query := `
		SELECT id, cliente_id, usuario_id, canal, mensagem, resposta, data, created_at
		FROM interacoes
		WHERE cliente_id = $1
		ORDER BY data DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, clienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interacoes []*entity.Interacao
	for rows.Next() {
		var i entity.Interacao
		var usuarioID, resposta sql.NullString

		err := rows.Scan(
			&i.ID,
			&i.ClienteID,
			&usuarioID,
			&i.Canal,
			&i.Mensagem,
			&resposta,
			&i.Data,
			&i.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if usuarioID.Valid {
			i.UsuarioID = &usuarioID.String
		}
		// resposta NULL fica nil mesmo — é o sinal de "aguardando"
		if resposta.Valid {
			i.Resposta = &resposta.String
		}

		interacoes = append(interacoes, &i)
	}

	return interacoes, rows.Err()
}

func (r *InteracaoRepository) CountSemResposta(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM interacoes WHERE resposta IS NULL`,
	).Scan(&total)
	return total, err
}
