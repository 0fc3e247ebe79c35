package entity

import (
	"context"
	"time"
)

// Status possíveis de uma tarefa (enum tarefa_status no banco)
const (
	TarefaPendente    = "pendente"
	TarefaEmAndamento = "em_andamento"
	TarefaConcluida   = "concluida"
	TarefaCancelada   = "cancelada"
)

type Tarefa struct {
	ID          string     `json:"id"`
	ClienteID   string     `json:"cliente_id"`
	UsuarioID   *string    `json:"usuario_id,omitempty"`
	Descricao   string     `json:"descricao"`
	Responsavel string     `json:"responsavel"`
	Status      string     `json:"status"`
	DataLimite  *time.Time `json:"data_limite,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type TarefaRepositoryInterface interface {
	CountPorStatus(ctx context.Context, status string) (int, error)
}
