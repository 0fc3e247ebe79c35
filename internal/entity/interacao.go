package entity

import (
	"context"
	"time"
)

// Canais de contato (enum interacao_canal no banco)
const (
	CanalWhatsApp   = "whatsapp"
	CanalEmail      = "email"
	CanalTelefone   = "telefone"
	CanalChat       = "chat"
	CanalPresencial = "presencial"
)

type Interacao struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	UsuarioID *string   `json:"usuario_id,omitempty"`
	Canal     string    `json:"canal"`
	Mensagem  string    `json:"mensagem"`
	Resposta  *string   `json:"resposta,omitempty"`
	Data      time.Time `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// AguardandoResposta: resposta NULL é o ÚNICO sinal de "pendente".
// Não existe flag booleana separada no banco — não invente uma.
func (i *Interacao) AguardandoResposta() bool {
	return i.Resposta == nil
}

type InteracaoRepositoryInterface interface {
	FindByClienteID(ctx context.Context, clienteID string) ([]*Interacao, error)
	CountSemResposta(ctx context.Context) (int, error)
}
